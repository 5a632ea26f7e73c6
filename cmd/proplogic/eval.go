package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newEvalCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <formula>",
		Short: "Parse a formula and print its NNF, CNF, quantifier-free form, and satisfiability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.parse(args[0])
			if err != nil {
				return err
			}
			app.log.stage("parsed", f.String())

			fmt.Printf("formula:    %s\n", f.String())

			qf := f.QuantifierFree()
			app.log.stage("quantifier_free", qf.String())
			fmt.Printf("quant-free: %s\n", qf.String())

			nnf := f.NNF()
			app.log.stage("nnf", nnf.String())
			fmt.Printf("nnf:        %s\n", nnf.String())

			cnf := f.CNF()
			app.log.stage("cnf", cnf.String())
			fmt.Printf("cnf:        %s\n", cnf.String())

			sys, err := app.system()
			if err != nil {
				return err
			}
			result := sys.CheckSAT(f)
			printVerdict(result.Satisfiable, "SAT", "UNSAT")
			if result.Satisfiable {
				printAssignment(result.Assignment)
			}
			return nil
		},
	}
}

func printVerdict(ok bool, yes, no string) {
	if ok {
		color.Green("%s", yes)
		return
	}
	color.Red("%s", no)
}

func printAssignment(assignment map[int]bool) {
	if len(assignment) == 0 {
		fmt.Println("assignment: (none constrained)")
		return
	}
	fmt.Print("assignment:")
	for v, val := range assignment {
		fmt.Printf(" %d=%v", v, val)
	}
	fmt.Println()
}
