package hfstol

import "encoding/binary"

// newNiTransducer builds, directly in memory, a tiny hand-constructed
// transducer recognizing the input "ni" with two ambiguous analyses:
// ["n","i","+X"] and ["n","i","+Y"]. It exercises the index table, the
// transition table, and an epsilon-transition fork, without going through
// the byte-level reader.
func newNiTransducer() *Transducer {
	alphabet := &Alphabet{
		KeyTable: []string{"", "n", "i", "+X", "+Y"},
		FlagOps:  map[SymbolNumber]FlagDiacriticOp{},
	}
	indexTable := []TransitionIndex{
		{Input: NoSymbol, Target: NoTableIndex},                  // state0: not final
		{Input: NoSymbol, Target: NoTableIndex},                  // state0: no epsilon arc
		{Input: 1, Target: TransitionTableStart + 0},              // state0: arc "n" -> transition offset 0
	}
	transitionTable := []Transition{
		{Input: 1, Output: 1, Target: TransitionTableStart + 1}, // 0: "n" -> state "after n"
		{Input: NoSymbol, Output: NoSymbol, Target: NoTableIndex}, // 1: "after n" final-check / scan terminator
		{Input: 2, Output: 2, Target: TransitionTableStart + 3}, // 2: "i" -> state "after ni"
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 3: "after ni" final-check (not final) / scan terminator
		{Input: Epsilon, Output: 3, Target: TransitionTableStart + 6}, // 4: epsilon emitting "+X"
		{Input: Epsilon, Output: 4, Target: TransitionTableStart + 7}, // 5: epsilon emitting "+Y"
		{Input: NoSymbol, Output: NoSymbol, Target: 1},           // 6: "+X" terminal, final
		{Input: NoSymbol, Output: NoSymbol, Target: 1},           // 7: "+Y" terminal, final
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 8: scan terminator for state 7
	}
	trie := newLetterTrie()
	for i, s := range alphabet.KeyTable {
		if s != "" {
			trie.add(s, SymbolNumber(i))
		}
	}
	return &Transducer{
		header: Header{
			NumberOfInputSymbols:        2,
			NumberOfSymbols:             uint16(len(alphabet.KeyTable)),
			SizeOfTransitionIndexTable:  uint32(len(indexTable)),
			SizeOfTransitionTargetTable: uint32(len(transitionTable)),
			NumberOfStates:              4,
			NumberOfTransitions:         9,
		},
		alphabet:        alphabet,
		indexTable:      indexTable,
		transitionTable: transitionTable,
		trie:            trie,
	}
}

// newFlagGatedTransducer builds a transducer recognizing "ni" whose single
// analysis is only reachable by successfully pushing and later consulting
// flag-diacritic state along the same search path, while a sibling branch
// gated by a flag that can never hold is explored and rejected:
//
//   - offset4 pushes @P.MOOD.IND@ (always succeeds) and recurses into a
//     nested state;
//   - offset8, reached only from within that nested state, pushes
//     @R.MOOD.IND@ — which succeeds only because the enclosing P push is
//     still in effect on this path — and reaches the final state emitting
//     "+NESTED";
//   - offset5, a sibling of offset4 starting from the same frame the loop
//     began with (MOOD unset), pushes @R.MOOD.SBJV@, which fails and must
//     be skipped without recursing, without emitting output, and without
//     corrupting the flag stack seen by later entries in the loop.
func newFlagGatedTransducer() *Transducer {
	alphabet := &Alphabet{
		KeyTable: []string{"", "n", "i", "", "", "", "+NESTED"},
		FlagOps: map[SymbolNumber]FlagDiacriticOp{
			3: {Op: 'P', Feature: "MOOD", Value: "IND"},
			4: {Op: 'R', Feature: "MOOD", Value: "SBJV"},
			5: {Op: 'R', Feature: "MOOD", Value: "IND"},
		},
	}
	indexTable := []TransitionIndex{
		{Input: NoSymbol, Target: NoTableIndex},
		{Input: NoSymbol, Target: NoTableIndex},
		{Input: 1, Target: TransitionTableStart + 0},
	}
	transitionTable := []Transition{
		{Input: 1, Output: 1, Target: TransitionTableStart + 1}, // 0: "n" -> after n
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 1: after n: not final
		{Input: 2, Output: 2, Target: TransitionTableStart + 3}, // 2: "i" -> after ni
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 3: after ni: not final
		{Input: 3, Output: 3, Target: TransitionTableStart + 7}, // 4: push P.MOOD.IND -> nested state
		{Input: 4, Output: 4, Target: TransitionTableStart + 9}, // 5: push R.MOOD.SBJV (fails, unreachable target)
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 6: scan terminator for after-ni's flag loop
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 7: nested state: not final
		{Input: 5, Output: 6, Target: TransitionTableStart + 10}, // 8: push R.MOOD.IND -> final, emit "+NESTED"
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 9: scan terminator for nested state's flag loop
		{Input: NoSymbol, Output: NoSymbol, Target: 1},           // 10: final
		{Input: NoSymbol, Output: NoSymbol, Target: 0},           // 11: scan terminator for final state's flag loop
	}
	trie := newLetterTrie()
	trie.add("n", 1)
	trie.add("i", 2)
	return &Transducer{
		header: Header{
			NumberOfInputSymbols:        2,
			NumberOfSymbols:             uint16(len(alphabet.KeyTable)),
			SizeOfTransitionIndexTable:  uint32(len(indexTable)),
			SizeOfTransitionTargetTable: uint32(len(transitionTable)),
			NumberOfStates:              5,
			NumberOfTransitions:         uint32(len(transitionTable)),
		},
		alphabet:        alphabet,
		indexTable:      indexTable,
		transitionTable: transitionTable,
		trie:            trie,
	}
}

// encodeHfstol serializes header/symbols/tables into the on-disk
// optimized-lookup byte layout, for exercising the reader/loader path
// end-to-end against the same fixture shapes used for the in-memory tests.
func encodeHfstol(h Header, symbols []string, idx []TransitionIndex, trans []Transition) []byte {
	var buf []byte
	put16 := func(v uint16) {
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, v)
		buf = append(buf, b...)
	}
	put32 := func(v uint32) {
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, v)
		buf = append(buf, b...)
	}
	boolU32 := func(b bool) uint32 {
		if b {
			return 1
		}
		return 0
	}

	put16(h.NumberOfInputSymbols)
	put16(h.NumberOfSymbols)
	put32(h.SizeOfTransitionIndexTable)
	put32(h.SizeOfTransitionTargetTable)
	put32(h.NumberOfStates)
	put32(h.NumberOfTransitions)
	put32(boolU32(h.Weighted))
	put32(boolU32(h.Deterministic))
	put32(boolU32(h.InputDeterministic))
	put32(boolU32(h.Minimized))
	put32(boolU32(h.Cyclic))
	put32(boolU32(h.HasEpsilonEpsilonTransitions))
	put32(boolU32(h.HasInputEpsilonTransitions))
	put32(boolU32(h.HasInputEpsilonCycles))
	put32(boolU32(h.HasUnweightedInputEpsilonCycles))

	for _, s := range symbols {
		buf = append(buf, []byte(s)...)
		buf = append(buf, 0)
	}
	for _, e := range idx {
		put16(uint16(e.Input))
		put32(uint32(e.Target))
	}
	for _, e := range trans {
		put16(uint16(e.Input))
		put16(uint16(e.Output))
		put32(uint32(e.Target))
	}
	return buf
}
