// Command lookup applies a single .hfstol transducer to lines of stdin and
// prints tab-separated input/analysis pairs, the direct-library analogue of
// shelling out to hfst-optimized-lookup for one process's lifetime.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/kho/easy"

	"github.com/Madoshakalaka/hfstol"
)

func main() {
	var args struct {
		Model string `name:"model" usage:".hfstol transducer file"`
	}
	concat := flag.Bool("concat", true, "fuse adjacent single-character symbols in each analysis")
	input := flag.String("input", "", "file of newline-separated inputs (default: stdin)")
	easy.ParseFlagsAndArgs(&args)

	var elapsed = easy.Timed(func() {
		t, err := hfstol.Load(args.Model)
		if err != nil {
			glog.Fatal("error loading transducer: ", err)
		}
		run(t, *input, *concat)
	})
	glog.Infof("lookup finished in %v", elapsed)
}

func run(t *hfstol.Transducer, inputPath string, concat bool) {
	in := os.Stdin
	if inputPath != "" {
		f, err := easy.Open(inputPath)
		if err != nil {
			glog.Fatal("error opening input: ", err)
		}
		defer f.Close()
		in = f
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		analyses := t.Apply(line, concat)
		if len(analyses) == 0 {
			fmt.Fprintf(out, "%s\t+?\n", line)
			continue
		}
		for _, a := range analyses {
			fmt.Fprintf(out, "%s\t%s\n", line, strings.Join(a, ""))
		}
	}
	if err := scanner.Err(); err != nil {
		glog.Fatal("error reading input: ", err)
	}
}
