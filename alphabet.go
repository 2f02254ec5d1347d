package hfstol

import "strings"

// FlagDiacriticOp is one recognized flag-diacritic operation, parsed from an
// alphabet entry of the form "@X.FEAT@" or "@X.FEAT.VAL@".
type FlagDiacriticOp struct {
	Op      byte // one of 'P', 'N', 'R', 'D', 'C', 'U'
	Feature string
	Value   string // may be empty
}

// Alphabet is the ordered symbol table of a Transducer plus the
// flag-diacritic operations recognized within it.
type Alphabet struct {
	// KeyTable maps a symbol number to its string. Flag-diacritic slots
	// and slot 0 (epsilon) are always the empty string.
	KeyTable []string
	// FlagOps maps a symbol number to its flag-diacritic operation. A
	// symbol number present here always has KeyTable[n] == "".
	FlagOps map[SymbolNumber]FlagDiacriticOp
}

// parseFlagDiacritic recognizes s as a flag-diacritic symbol. It returns
// false for any ordinary symbol, including one that happens to start and
// end with '@' but does not otherwise match the shape.
func parseFlagDiacritic(s string) (FlagDiacriticOp, bool) {
	r := []rune(s)
	if len(r) <= 4 {
		return FlagDiacriticOp{}, false
	}
	if r[0] != '@' || r[len(r)-1] != '@' || r[2] != '.' {
		return FlagDiacriticOp{}, false
	}
	if !strings.ContainsRune("PNRDCU", r[1]) {
		return FlagDiacriticOp{}, false
	}
	inner := string(r[1 : len(r)-1])
	parts := strings.Split(inner, ".")
	switch len(parts) {
	case 2:
		return FlagDiacriticOp{Op: byte(parts[0][0]), Feature: parts[1]}, true
	case 3:
		return FlagDiacriticOp{Op: byte(parts[0][0]), Feature: parts[1], Value: parts[2]}, true
	default:
		return FlagDiacriticOp{}, false
	}
}
