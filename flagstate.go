package hfstol

// flagValue is the value and polarity recorded for one feature: polarity
// true means the feature was positively set (required), false means it was
// negatively set.
type flagValue struct {
	Value    string
	Positive bool
}

type flagFrame map[string]flagValue

// flagStack is the combined state for all flag diacritics encountered along
// one search path. It is local to a single search call, never shared.
type flagStack struct {
	frames []flagFrame
}

func newFlagStack() *flagStack {
	return &flagStack{frames: []flagFrame{make(flagFrame)}}
}

func (s *flagStack) top() flagFrame {
	return s.frames[len(s.frames)-1]
}

func (s *flagStack) duplicate() {
	top := s.top()
	next := make(flagFrame, len(top))
	for k, v := range top {
		next[k] = v
	}
	s.frames = append(s.frames, next)
}

func (s *flagStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// push attempts to apply op to the current state. On success it duplicates
// the top frame (possibly modified) and pushes it, returning true; the
// caller must pop() once the branch explored under the new frame is done.
// On failure the stack is left untouched and false is returned.
func (s *flagStack) push(op FlagDiacriticOp) bool {
	top := s.top()
	switch op.Op {
	case 'P': // positive set
		s.duplicate()
		s.top()[op.Feature] = flagValue{op.Value, true}
		return true
	case 'N': // negative set
		s.duplicate()
		s.top()[op.Feature] = flagValue{op.Value, false}
		return true
	case 'R': // require
		if op.Value == "" {
			if _, ok := top[op.Feature]; !ok {
				return false
			}
			s.duplicate()
			return true
		}
		if v, ok := top[op.Feature]; ok && v == (flagValue{op.Value, true}) {
			s.duplicate()
			return true
		}
		return false
	case 'D': // disallow
		if op.Value == "" {
			if _, ok := top[op.Feature]; ok {
				return false
			}
			s.duplicate()
			return true
		}
		if v, ok := top[op.Feature]; ok && v == (flagValue{op.Value, true}) {
			return false
		}
		s.duplicate()
		return true
	case 'C': // clear
		s.duplicate()
		delete(s.top(), op.Feature)
		return true
	case 'U': // unify
		v, ok := top[op.Feature]
		if !ok || v == (flagValue{op.Value, true}) || (!v.Positive && v.Value != op.Value) {
			s.duplicate()
			s.top()[op.Feature] = flagValue{op.Value, true}
			return true
		}
		return false
	default:
		return false
	}
}
