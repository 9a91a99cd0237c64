// Command hashtree-dump loads a persisted hash-tree snapshot, prints a
// human-readable summary of it, and optionally scans a given instruction
// stream against it and reports the matches found — the way the teacher's
// examples/mk_trie demonstrates trie construction and lookup end to end
// rather than exercising it only through tests.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/plotfi/stablehashtree/hashtree"
	"github.com/plotfi/stablehashtree/matcher"
	"github.com/plotfi/stablehashtree/triecodec"
)

func main() {
	path := flag.String("snapshot", "", "path to a snapshot file written by triecodec.WriteToFile")
	build := flag.String("build", "", "comma-separated hash sequence to build a fresh snapshot from instead of reading one (e.g. 1,2,3)")
	out := flag.String("out", "", "when set together with -build, write the built snapshot to this path instead of just dumping it")
	stream := flag.String("stream", "", "comma-separated hash sequence to scan against the tree and report matches for (e.g. 7,8,7,0,8); 0 marks an unhashable position")
	flag.Parse()

	var tree *hashtree.HashTree
	var err error

	switch {
	case *build != "":
		tree, err = buildFromFlag(*build)
	case *path != "":
		tree, err = triecodec.ReadFromFile(*path)
	default:
		fmt.Fprintln(os.Stderr, "hashtree-dump: one of -snapshot or -build is required")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashtree-dump: %v\n", err)
		os.Exit(1)
	}

	if *out != "" {
		if err := triecodec.WriteToFile(*out, tree, nil); err != nil {
			fmt.Fprintf(os.Stderr, "hashtree-dump: writing %s: %v\n", *out, err)
			os.Exit(1)
		}
	}

	printSummary(tree)
	tree.Dump(os.Stdout, nil)

	if *stream != "" {
		if err := reportMatches(tree, *stream); err != nil {
			fmt.Fprintf(os.Stderr, "hashtree-dump: %v\n", err)
			os.Exit(1)
		}
	}
}

// reportMatches scans spec as an instruction stream against tree and prints
// every MatchedEntry the Matcher emits, fulfilling the CLI inspector's
// "reports matches for a given instruction stream" role alongside building
// and dumping.
func reportMatches(tree *hashtree.HashTree, spec string) error {
	hashes, err := parseSequence(spec)
	if err != nil {
		return err
	}
	stream := streamFromHashes(hashes)

	m := matcher.New(tree, identityHasher{})
	matches := m.Match(context.Background(), stream)

	fmt.Printf("matches: %d\n", len(matches))
	for _, entry := range matches {
		fmt.Printf("  start=%d length=%d\n", entry.StartIndex, entry.Length)
	}
	return nil
}

func buildFromFlag(spec string) (*hashtree.HashTree, error) {
	seq, err := parseSequence(spec)
	if err != nil {
		return nil, err
	}
	tree := hashtree.New()
	tree.Insert(seq)
	return tree, nil
}

func printSummary(tree *hashtree.HashTree) {
	total := tree.Size(false)
	terminals := tree.Size(true)
	depth := tree.Depth()

	if isTerminalOut() {
		fmt.Printf("nodes: %s (terminal: %s), depth: %d\n",
			humanize.Comma(int64(total)), humanize.Comma(int64(terminals)), depth)
		return
	}
	fmt.Printf("nodes=%d terminal=%d depth=%d\n", total, terminals, depth)
}

func isTerminalOut() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
