package hfstol

// Basic types and related constants of the optimized-lookup binary format.

// SymbolNumber indexes into a Transducer's alphabet.
type SymbolNumber uint16

// TableIndex addresses a record in either the transition index table or the
// transition table, biased by TransitionTableStart.
type TableIndex uint32

const (
	// Epsilon is the symbol number of the empty symbol. Always slot 0 of
	// the alphabet.
	Epsilon SymbolNumber = 0
	// NoSymbol marks "no symbol here" — an all-ones sentinel, same idiom
	// as an invalid-id constant.
	NoSymbol SymbolNumber = 0xFFFF
	// NoTableIndex marks an absent table reference.
	NoTableIndex TableIndex = 0xFFFFFFFF
	// TransitionTableStart biases a TableIndex: values at or above this
	// refer to the transition table (subtract the bias for the offset);
	// values below it refer to the transition index table directly.
	TransitionTableStart TableIndex = 0x80000000
)

// TransitionIndex is one 6-byte record of the transition index table: a
// perfect-hash-like first level keyed by input symbol.
type TransitionIndex struct {
	Input  SymbolNumber
	Target TableIndex
}

// IsFinal reports whether this index record marks an accepting state.
func (ti TransitionIndex) IsFinal() bool {
	return ti.Input == NoSymbol && ti.Target != NoTableIndex
}

// Transition is one 8-byte record of the transition table.
type Transition struct {
	Input, Output SymbolNumber
	Target        TableIndex
}

// IsFinal reports whether this transition marks an accepting state.
func (t Transition) IsFinal() bool {
	return t.Input == NoSymbol && t.Output == NoSymbol && t.Target == 1
}

// Header carries the fixed attributes of an optimized-lookup transducer
// file, in the order they appear on disk.
type Header struct {
	NumberOfInputSymbols            uint16
	NumberOfSymbols                 uint16
	SizeOfTransitionIndexTable      uint32
	SizeOfTransitionTargetTable     uint32
	NumberOfStates                  uint32
	NumberOfTransitions             uint32
	Weighted                        bool
	Deterministic                   bool
	InputDeterministic              bool
	Minimized                       bool
	Cyclic                          bool
	HasEpsilonEpsilonTransitions    bool
	HasInputEpsilonTransitions      bool
	HasInputEpsilonCycles           bool
	HasUnweightedInputEpsilonCycles bool
}

// headerSize is the fixed byte length of Header on disk: 2 uint16 + 4 uint32
// sizes + 9 uint32 flag words.
const headerSize = 2 + 2 + 4*4 + 9*4

// hfst3Magic is the optional HFST3 preamble written ahead of the fixed
// header by some compilers; its content is ignored once its length is
// known.
const hfst3Magic = "HFST\x00"
