package hfstol

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Analysis is one accepted output symbol sequence.
type Analysis = []string

const analysisSeparator = "\x1f"

// Apply runs input through the transducer and returns the deduplicated set
// of accepted analyses, sorted for deterministic comparison. The empty
// string always yields nil without consulting the engine. If concat is
// true, adjacent single-character symbols in each analysis are fused into
// one string (see concatenate for the exact rule); tag symbols such as
// "+N" are left as-is either way.
func (t *Transducer) Apply(input string, concat bool) []Analysis {
	if input == "" {
		return nil
	}
	matched, raw := t.analyze(input)
	if !matched {
		return nil
	}
	seen := make(map[string]bool, len(raw))
	out := make([]Analysis, 0, len(raw))
	for _, syms := range raw {
		a := Analysis(syms)
		if concat {
			a = concatenate(syms)
		}
		key := strings.Join(a, analysisSeparator)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Join(out[i], analysisSeparator) < strings.Join(out[j], analysisSeparator)
	})
	return out
}

// ApplyBulk runs Apply over a batch of inputs. Duplicate inputs collapse to
// one key in the result.
func (t *Transducer) ApplyBulk(inputs []string, concat bool) map[string][]Analysis {
	result := make(map[string][]Analysis, len(inputs))
	for _, in := range inputs {
		if _, ok := result[in]; ok {
			continue
		}
		result[in] = t.Apply(in, concat)
	}
	return result
}

// concatenate fuses adjacent single-rune symbols into one string, leaving
// multi-character tag symbols (e.g. "+N") as separate elements.
func concatenate(syms []string) []string {
	var out []string
	var buf strings.Builder
	inRun := false
	for _, s := range syms {
		if utf8.RuneCountInString(s) == 1 {
			inRun = true
			buf.WriteString(s)
			continue
		}
		if inRun {
			out = append(out, buf.String())
			buf.Reset()
			inRun = false
		}
		out = append(out, s)
	}
	if inRun {
		out = append(out, buf.String())
	}
	return out
}
