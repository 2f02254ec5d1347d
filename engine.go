package hfstol

// searchState holds everything mutated during one Apply call. It is never
// shared across calls, which is what makes concurrent use of a single
// Transducer safe.
type searchState struct {
	t *Transducer

	input []SymbolNumber // tokenized input, terminated by NoSymbol
	pos   int            // read cursor into input

	output []SymbolNumber // output buffer; only output[:outPos] is meaningful
	outPos int

	flags *flagStack

	results [][]string
}

func (s *searchState) putOutput(v SymbolNumber) {
	if s.outPos < len(s.output) {
		s.output[s.outPos] = v
	} else {
		s.output = append(s.output, v)
	}
}

// tryEpsilonIndices follows a single epsilon-input index-table record into
// the transition table, if there is one at i.
func (s *searchState) tryEpsilonIndices(i TableIndex) {
	e := s.t.indexTable[i]
	if e.Input == Epsilon {
		s.tryEpsilonTransitions(e.Target - TransitionTableStart)
	}
}

// tryEpsilonTransitions walks every epsilon and flag-diacritic transition
// starting at i, recursing into each before trying the next.
func (s *searchState) tryEpsilonTransitions(i TableIndex) {
	for {
		tr := s.t.transitionTable[i]
		switch {
		case tr.Input == Epsilon:
			s.putOutput(tr.Output)
			s.outPos++
			s.getAnalyses(tr.Target)
			s.outPos--
			i++
		case s.isFlagDiacritic(tr.Input):
			op := s.t.alphabet.FlagOps[tr.Input]
			if !s.flags.push(op) {
				i++
				continue
			}
			s.putOutput(tr.Output)
			s.outPos++
			s.getAnalyses(tr.Target)
			s.outPos--
			i++
			s.flags.pop()
		default:
			return
		}
	}
}

func (s *searchState) isFlagDiacritic(sym SymbolNumber) bool {
	_, ok := s.t.alphabet.FlagOps[sym]
	return ok
}

// findIndex consults the index table's perfect-hash-like first level for
// the current input symbol.
func (s *searchState) findIndex(i TableIndex) {
	c := s.input[s.pos-1]
	e := s.t.indexTable[int(i)+int(c)]
	if e.Input == c {
		s.findTransitions(e.Target - TransitionTableStart)
	}
}

// findTransitions scans the contiguous run of transitions for the current
// input symbol starting at i.
func (s *searchState) findTransitions(i TableIndex) {
	c := s.input[s.pos-1]
	for {
		tr := s.t.transitionTable[i]
		if tr.Input == NoSymbol || tr.Input != c {
			return
		}
		s.putOutput(tr.Output)
		s.outPos++
		s.getAnalyses(tr.Target)
		s.outPos--
		i++
	}
}

// getAnalyses is the main recursive descent, dispatching on whether index
// addresses the index table or — biased by TransitionTableStart — the
// transition table.
func (s *searchState) getAnalyses(index TableIndex) {
	if index >= TransitionTableStart {
		idx := index - TransitionTableStart
		s.tryEpsilonTransitions(idx + 1)
		if s.input[s.pos] == NoSymbol {
			if s.t.transitionTable[idx].IsFinal() {
				s.noteAnalysis()
			}
			s.putOutput(NoSymbol)
			return
		}
		s.pos++
		s.findTransitions(idx + 1)
	} else {
		s.tryEpsilonIndices(index + 1)
		if s.input[s.pos] == NoSymbol {
			if s.t.indexTable[index].IsFinal() {
				s.noteAnalysis()
			}
			s.putOutput(NoSymbol)
			return
		}
		s.pos++
		s.findIndex(index + 1)
	}
	s.pos--
	s.putOutput(NoSymbol)
}

// noteAnalysis records the currently accumulated output (output[:outPos]) as
// one accepted analysis, translating symbol numbers to strings and dropping
// flag-diacritic slots (which are always the empty string).
func (s *searchState) noteAnalysis() {
	var syms []string
	for _, x := range s.output[:s.outPos] {
		key := s.t.alphabet.KeyTable[x]
		if key != "" {
			syms = append(syms, key)
		}
	}
	s.results = append(s.results, syms)
}

// tokenize converts input into a sequence of symbol numbers terminated by
// NoSymbol, using the transducer's letter trie with longest-match
// backtracking. It reports false if some prefix of input matched nothing.
func (t *Transducer) tokenize(input string) ([]SymbolNumber, bool) {
	cur := newCursor(input)
	var syms []SymbolNumber
	for cur.pos < len(cur.runes) {
		n := t.trie.find(cur)
		syms = append(syms, n)
		if n == NoSymbol {
			break
		}
	}
	if len(syms) == 0 || syms[len(syms)-1] == NoSymbol {
		return nil, false
	}
	syms = append(syms, NoSymbol)
	return syms, true
}

// analyze tokenizes and searches input, returning every accepting path's
// output symbol sequence. matched is false only when tokenization failed;
// it does not imply analyses is non-empty.
func (t *Transducer) analyze(input string) (matched bool, analyses [][]string) {
	syms, ok := t.tokenize(input)
	if !ok {
		return false, nil
	}
	s := &searchState{
		t:      t,
		input:  syms,
		output: []SymbolNumber{NoSymbol},
		flags:  newFlagStack(),
	}
	s.getAnalyses(0)
	return true, s.results
}
