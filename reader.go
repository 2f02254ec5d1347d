package hfstol

import (
	"bufio"
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/golang/glog"
)

// readHeader consumes the optional HFST3 preamble (if present) followed by
// the fixed 56-byte header.
func readHeader(r *bufio.Reader) (Header, error) {
	var h Header
	prefix, err := r.Peek(len(hfst3Magic))
	if err == nil && string(prefix) == hfst3Magic {
		if _, err := r.Discard(len(hfst3Magic)); err != nil {
			return h, ioError(err)
		}
		var remaining uint16
		if err := binary.Read(r, binary.LittleEndian, &remaining); err != nil {
			return h, ioError(err)
		}
		if _, err := io.CopyN(io.Discard, r, int64(remaining)); err != nil {
			return h, ioError(err)
		}
	}
	buf := make([]byte, headerSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return h, ioError(err)
	}
	h.NumberOfInputSymbols = binary.LittleEndian.Uint16(buf[0:2])
	h.NumberOfSymbols = binary.LittleEndian.Uint16(buf[2:4])
	h.SizeOfTransitionIndexTable = binary.LittleEndian.Uint32(buf[4:8])
	h.SizeOfTransitionTargetTable = binary.LittleEndian.Uint32(buf[8:12])
	h.NumberOfStates = binary.LittleEndian.Uint32(buf[12:16])
	h.NumberOfTransitions = binary.LittleEndian.Uint32(buf[16:20])
	h.Weighted = binary.LittleEndian.Uint32(buf[20:24]) != 0
	h.Deterministic = binary.LittleEndian.Uint32(buf[24:28]) != 0
	h.InputDeterministic = binary.LittleEndian.Uint32(buf[28:32]) != 0
	h.Minimized = binary.LittleEndian.Uint32(buf[32:36]) != 0
	h.Cyclic = binary.LittleEndian.Uint32(buf[36:40]) != 0
	h.HasEpsilonEpsilonTransitions = binary.LittleEndian.Uint32(buf[40:44]) != 0
	h.HasInputEpsilonTransitions = binary.LittleEndian.Uint32(buf[44:48]) != 0
	h.HasInputEpsilonCycles = binary.LittleEndian.Uint32(buf[48:52]) != 0
	h.HasUnweightedInputEpsilonCycles = binary.LittleEndian.Uint32(buf[52:56]) != 0
	return h, nil
}

// readAlphabet consumes numSymbols NUL-terminated UTF-8 strings and splits
// out flag-diacritic operations.
func readAlphabet(r *bufio.Reader, numSymbols int) (*Alphabet, error) {
	a := &Alphabet{
		KeyTable: make([]string, numSymbols),
		FlagOps:  make(map[SymbolNumber]FlagDiacriticOp),
	}
	for i := 0; i < numSymbols; i++ {
		raw, err := r.ReadBytes(0)
		if err != nil {
			return nil, ioError(err)
		}
		raw = raw[:len(raw)-1] // drop the NUL
		if !utf8.Valid(raw) {
			return nil, malformed("alphabet symbol %d is not valid UTF-8", i)
		}
		s := string(raw)
		if op, ok := parseFlagDiacritic(s); ok {
			a.FlagOps[SymbolNumber(i)] = op
			glog.V(2).Infof("symbol %d is flag diacritic %c.%s.%s", i, op.Op, op.Feature, op.Value)
			s = ""
		}
		a.KeyTable[i] = s
	}
	if numSymbols > 0 {
		a.KeyTable[0] = ""
	}
	return a, nil
}

// readIndexTable consumes n 6-byte TransitionIndex records.
func readIndexTable(r *bufio.Reader, n int) ([]TransitionIndex, error) {
	buf := make([]byte, n*6)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, ioError(err)
	}
	out := make([]TransitionIndex, n)
	for i := 0; i < n; i++ {
		off := i * 6
		out[i] = TransitionIndex{
			Input:  SymbolNumber(binary.LittleEndian.Uint16(buf[off : off+2])),
			Target: TableIndex(binary.LittleEndian.Uint32(buf[off+2 : off+6])),
		}
	}
	return out, nil
}

// readTransitionTable consumes n 8-byte Transition records.
func readTransitionTable(r *bufio.Reader, n int) ([]Transition, error) {
	buf := make([]byte, n*8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, ioError(err)
	}
	out := make([]Transition, n)
	for i := 0; i < n; i++ {
		off := i * 8
		out[i] = Transition{
			Input:  SymbolNumber(binary.LittleEndian.Uint16(buf[off : off+2])),
			Output: SymbolNumber(binary.LittleEndian.Uint16(buf[off+2 : off+4])),
			Target: TableIndex(binary.LittleEndian.Uint32(buf[off+4 : off+8])),
		}
	}
	return out, nil
}

// validateIndexTable checks that every epsilon-input index record points
// into the transition table, as getAnalyses always dereferences it as such.
func validateIndexTable(idx []TransitionIndex) error {
	for i, e := range idx {
		if e.Input == Epsilon && e.Target < TransitionTableStart {
			return malformed("index table entry %d has epsilon input but target %d does not reach the transition table", i, e.Target)
		}
	}
	return nil
}
