// Command proplogic is the CLI driver for the propositional-logic
// toolkit: it parses a formula, runs it through the rewriting
// pipeline, and answers satisfiability / validity / entailment
// queries, per SPEC_FULL.md §6.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run())
}

// run recovers an internal invariant violation (a pipeline-ordering
// bug, never expected to be reachable from CLI-driven input) at the
// outermost boundary, per SPEC_FULL.md §6/§7: the user sees a
// distinguishable "internal error" message and exit code 2, instead
// of a raw Go panic trace.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, color.RedString("internal error: %v", r))
			code = 2
		}
	}()

	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return 0
}
