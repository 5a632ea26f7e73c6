package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidityCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "validity <formula>",
		Short: "Print VALID/INVALID for a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.parse(args[0])
			if err != nil {
				return err
			}
			sys, err := app.system()
			if err != nil {
				return err
			}
			if sys.CheckValidity(f) {
				printVerdict(true, "VALID", "INVALID")
				return nil
			}
			printVerdict(false, "VALID", "INVALID")
			return errUnsat
		},
	}
}

func newEntailsCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "entails <formula> <formula>",
		Short: "Print whether the first formula entails the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.parse(args[0])
			if err != nil {
				return err
			}
			g, err := app.parse(args[1])
			if err != nil {
				return err
			}
			sys, err := app.system()
			if err != nil {
				return err
			}
			entails := sys.CheckEntails(f, g)
			printVerdict(entails, "ENTAILS", "DOES NOT ENTAIL")
			if !entails {
				return errUnsat
			}
			return nil
		},
	}
}

func newTableCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "table <formula>",
		Short: "Print the full truth table over a formula's free variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := app.parse(args[0])
			if err != nil {
				return err
			}
			sys, err := app.system()
			if err != nil {
				return err
			}
			fmt.Print(sys.TruthTable(f).String())
			return nil
		},
	}
}
