// Command dump prints header flags and alphabet statistics for a .hfstol
// file, for inspecting a transducer without writing a Go program against
// the library.
package main

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/kho/easy"

	"github.com/Madoshakalaka/hfstol"
)

func main() {
	var args struct {
		Model string `name:"model" usage:".hfstol transducer file"`
	}
	easy.ParseFlagsAndArgs(&args)

	t, err := hfstol.Load(args.Model)
	if err != nil {
		glog.Fatal("error loading transducer: ", err)
	}

	h := t.Header()
	a := t.Alphabet()
	fmt.Printf("input symbols:        %d\n", h.NumberOfInputSymbols)
	fmt.Printf("total symbols:        %d\n", h.NumberOfSymbols)
	fmt.Printf("states:               %d\n", h.NumberOfStates)
	fmt.Printf("transitions:          %d\n", h.NumberOfTransitions)
	fmt.Printf("index table size:     %d\n", h.SizeOfTransitionIndexTable)
	fmt.Printf("transition table size: %d\n", h.SizeOfTransitionTargetTable)
	fmt.Printf("deterministic:        %v\n", h.Deterministic)
	fmt.Printf("input deterministic:  %v\n", h.InputDeterministic)
	fmt.Printf("minimized:            %v\n", h.Minimized)
	fmt.Printf("cyclic:               %v\n", h.Cyclic)
	fmt.Printf("has epsilon-epsilon:  %v\n", h.HasEpsilonEpsilonTransitions)
	fmt.Printf("has input epsilon:    %v\n", h.HasInputEpsilonTransitions)
	fmt.Printf("flag diacritics:      %d\n", len(a.FlagOps))
}
