// Command harness runs every core data structure's test suite to
// completion and reports each failing suite (and, with -v, each passing
// one) in a deterministic order. It exits non-zero if any suite fails.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/petar/GoLLRB/llrb"
	"github.com/tpresley/go-structures/minmaxheap"
	"github.com/tpresley/go-structures/rankpairingheap"
	"github.com/tpresley/go-structures/rmq"
	"github.com/tpresley/go-structures/suffixtree"
	"github.com/tpresley/go-structures/unionfind"
)

// result is a single suite's outcome, ordered by suite name so the ledger
// prints deterministically regardless of run order.
type result struct {
	suite string
	err   error
}

func (r result) Less(than llrb.Item) bool {
	return r.suite < than.(result).suite
}

func main() {
	verbose := flag.Bool("v", false, "print a line for every suite, not just failures")
	flag.Parse()

	suites := map[string]func() error{
		"minmaxheap":      minmaxheap.RunSuite,
		"rankpairingheap": rankpairingheap.RunSuite,
		"suffixtree":      suffixtree.RunSuite,
		"rmq":             rmq.RunSuite,
		"unionfind":       unionfind.RunSuite,
	}

	ledger := llrb.New()
	for name, run := range suites {
		ledger.ReplaceOrInsert(result{suite: name, err: run()})
	}

	failures := 0
	ledger.AscendGreaterOrEqual(ledger.Min(), func(i llrb.Item) bool {
		r := i.(result)
		if r.err != nil {
			failures++
			fmt.Printf("FAIL %s: %v\n", r.suite, r.err)
		} else if *verbose {
			fmt.Printf("PASS %s\n", r.suite)
		}
		return true
	})

	log.Printf("ran %d suites, %d failed", len(suites), failures)
	if failures > 0 {
		os.Exit(1)
	}
}
