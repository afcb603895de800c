// Ternset is a batch query tool over newline separated word lists.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	ternset "github.com/sarthakjha889/go-ternary-search-set"
)

func main() {
	os.Exit(Main())
}

func Main() int {
	hasFlag := flag.String("has", "", "check membership of `word`")
	prefix := flag.String("prefix", "", "list members completing `prefix`")
	suffix := flag.String("suffix", "", "list members ending in `suffix`")
	pattern := flag.String("pattern", "", "list members matching wildcard `pattern`")
	wildcard := flag.String("wildcard", ".", "wildcard `rune` used by -pattern")
	edit := flag.String("edit", "", "list members within -dist edits of `word`")
	hamming := flag.String("hamming", "", "list members within -dist mismatches of `word`")
	dist := flag.Int("dist", 1, "maximum `distance` for -edit and -hamming")
	arrange := flag.String("arrange", "", "list members spellable from the code points of `word`")
	compact := flag.Bool("compact", false, "compact the set before querying")
	balance := flag.Bool("balance", false, "rebalance the set before querying")
	stats := flag.Bool("stats", false, "print tree statistics")
	fold := flag.Bool("fold", false, "case insensitive matching with accents removed")
	cli.ArgsHelp = "word-list files (newline separated words), or - for stdin"
	cli.MinArgs = 1
	cli.MaxArgs = -1
	cli.Main()

	set := ternset.New()
	if *fold {
		set.CaseInsensitive().WithNormalisation()
	}
	for _, fname := range flag.Args() {
		if err := load(set, fname); err != nil {
			return log.FErrf("Error loading %s: %v", fname, err)
		}
	}
	log.Infof("Loaded %v", set)
	if *balance {
		set.Balance()
	}
	if *compact {
		set.Compact()
	}

	switch {
	case *hasFlag != "":
		fmt.Println(set.Has(*hasFlag))
	case *prefix != "":
		printAll(set.CompletionsOf(*prefix))
	case *suffix != "":
		printAll(set.CompletedBy(*suffix))
	case *pattern != "":
		wc := []rune(*wildcard)
		if len(wc) != 1 {
			return log.FErrf("-wildcard must be a single rune, got %q", *wildcard)
		}
		printAll(set.PartialMatchesOf(*pattern, wc[0]))
	case *edit != "":
		hits, err := set.WithinEditDistanceOf(*edit, *dist)
		if err != nil {
			return log.FErrf("Error: %v", err)
		}
		printAll(hits)
	case *hamming != "":
		hits, err := set.WithinHammingDistanceOf(*hamming, *dist)
		if err != nil {
			return log.FErrf("Error: %v", err)
		}
		printAll(hits)
	case *arrange != "":
		printAll(set.ArrangementsOf(*arrange))
	}

	if *stats {
		st := set.Stats()
		fmt.Printf("size %d, nodes %d, depth %d, compacted %t\n",
			st.Size, st.Nodes, st.Depth, st.Compacted)
		fmt.Printf("code points %#x..%#x, %d above the BMP\n",
			st.MinCodePoint, st.MaxCodePoint, st.Surrogates)
		fmt.Printf("breadth per level: %v\n", st.Breadth)
	}
	return 0
}

func load(set *ternset.Set, fname string) error {
	var r io.Reader
	if fname == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := set.Add(sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

func printAll(words []string) {
	for _, w := range words {
		fmt.Println(w)
	}
}
