package hfstol

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"syscall"

	"github.com/golang/glog"
)

// mappedFile is a read-only memory-mapped file, used only transiently while
// decoding — see Load.
type mappedFile struct {
	file *os.File
	data []byte
}

func openMappedFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.Size() == 0 {
		f.Close()
		return nil, malformed("file is empty")
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(stat.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &mappedFile{file: f, data: data}, nil
}

func (m *mappedFile) Close() error {
	err1 := syscall.Munmap(m.data)
	err2 := m.file.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// Load reads and parses the optimized-lookup transducer file at path.
//
// The file is memory-mapped for the duration of the parse, then unmapped
// before Load returns: unlike a zero-copy reinterpretation of the mapped
// bytes, the returned Transducer holds only ordinary owned Go memory, so it
// has no file descriptor or mapping to outlive and is safe to keep and share
// across goroutines indefinitely.
func Load(path string) (*Transducer, error) {
	mf, err := openMappedFile(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer mf.Close()
	glog.V(1).Infof("mapped %s (%d bytes)", path, len(mf.data))
	t, err := LoadReader(bytes.NewReader(mf.data))
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("%s: %d symbols, %d states, %d transitions", path,
		t.header.NumberOfSymbols, t.header.NumberOfStates, t.header.NumberOfTransitions)
	return t, nil
}

// LoadReader parses an optimized-lookup transducer from any byte stream,
// for callers holding an in-memory buffer or a non-file source.
func LoadReader(r io.Reader) (*Transducer, error) {
	br := bufio.NewReader(r)
	header, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if header.Weighted {
		return nil, unsupportedWeighted()
	}
	alphabet, err := readAlphabet(br, int(header.NumberOfSymbols))
	if err != nil {
		return nil, err
	}
	indexTable, err := readIndexTable(br, int(header.SizeOfTransitionIndexTable))
	if err != nil {
		return nil, err
	}
	if err := validateIndexTable(indexTable); err != nil {
		return nil, err
	}
	transitionTable, err := readTransitionTable(br, int(header.SizeOfTransitionTargetTable))
	if err != nil {
		return nil, err
	}
	trie := newLetterTrie()
	for i, s := range alphabet.KeyTable {
		if s != "" {
			trie.add(s, SymbolNumber(i))
		}
	}
	return &Transducer{
		header:          header,
		alphabet:        alphabet,
		indexTable:      indexTable,
		transitionTable: transitionTable,
		trie:            trie,
	}, nil
}
