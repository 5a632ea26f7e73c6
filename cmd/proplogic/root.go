package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ashgrove/proplogic/engine"
	"github.com/ashgrove/proplogic/perr"
)

// cliApp bundles the per-invocation dependencies every subcommand
// needs: the logic-system registry, the structured logger, the
// no-color setting, and the selected system name. Built once in
// newRootCmd's PersistentPreRunE.
type cliApp struct {
	registry   *engine.Registry
	log        *appLogger
	noColor    bool
	systemName string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var app cliApp

	root := &cobra.Command{
		Use:           "proplogic <command> <formula>",
		Short:         "Parse, normalize, and solve propositional formulas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			bindConfig(v, cmd)
			app.registry = engine.Default()
			logger, err := newAppLogger(v.GetBool("verbose"))
			if err != nil {
				return err
			}
			app.log = logger
			app.noColor = v.GetBool("no-color") || os.Getenv("NO_COLOR") != ""
			color.NoColor = color.NoColor || app.noColor
			app.systemName = v.GetString("system")
			return nil
		},
	}

	root.PersistentFlags().Bool("no-color", false, "disable colored output")
	root.PersistentFlags().Bool("verbose", false, "enable debug-level diagnostic logging")
	root.PersistentFlags().String("config", "", "optional config file (yaml/toml) for default flag values")
	root.PersistentFlags().String("system", "propositional", "logic system to use")

	root.AddCommand(
		newEvalCmd(&app),
		newSATCmd(&app),
		newValidityCmd(&app),
		newEntailsCmd(&app),
		newTableCmd(&app),
	)

	return root
}

func bindConfig(v *viper.Viper, cmd *cobra.Command) {
	v.SetEnvPrefix("PROPLOGIC")
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	if cfgPath := v.GetString("config"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		_ = v.ReadInConfig() // missing/invalid config file falls back to flags/env/defaults
	}
}

func (a *cliApp) system() (engine.System, error) {
	name := a.systemName
	if name == "" {
		name = "propositional"
	}
	sys, ok := a.registry.Get(name)
	if !ok {
		return nil, engine.ErrUnknownSystem(name)
	}
	return sys, nil
}

func (a *cliApp) parse(src string) (*engine.Formula, error) {
	sys, err := a.system()
	if err != nil {
		return nil, err
	}
	return sys.Parse(src)
}

// exitCodeFor maps an error returned from cobra's Execute to the
// process exit code described in SPEC_FULL.md §6: 1 for a parse
// error and 1 for anything else (an unsat/invalid verdict, bad flags,
// etc). Internal invariant violations never reach it: they arrive as
// panics, which run recovers with exit code 2.
func exitCodeFor(err error) int {
	if _, quiet := err.(quietError); quiet {
		return 1
	}
	var parseErr *perr.ParseError
	if asParseError(err, &parseErr) {
		fmt.Fprintln(os.Stderr, color.YellowString(parseErr.Error()))
		return 1
	}
	fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
	return 1
}

func asParseError(err error, target **perr.ParseError) bool {
	pe, ok := err.(*perr.ParseError)
	if ok {
		*target = pe
	}
	return ok
}
