package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/config"
	"github.com/katalvlaran/rootfind/engine"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	expression string
	variable   string
	logLevel   string

	cfg    config.Config
	engine *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "rootfind",
		Short: "Plot a formula and find a root by bisection",
		Long: `rootfind compiles a one-variable formula such as "x**3 - 5*x + 2",
samples it over a plot domain and searches a user-supplied interval [a, b]
for a root by repeated halving. The interval must show a strict sign change.

Defaults come from built-in values, then the YAML file named by --config,
then the command-line flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.expression, "expr", "e", config.DefaultExpression, "formula to analyse")
	pf.StringVar(&a.variable, "var", "x", "name of the free variable")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(newPlotCmd(a), newSolveCmd(a), newRunCmd(a))

	return root
}

// load reads the configuration file and applies the global flags.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	flags := cmd.Flags()
	if flags.Changed("expr") {
		a.cfg.Expression = a.expression
	}
	if flags.Changed("var") {
		a.cfg.Variable = a.variable
	}
	if flags.Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}

	return nil
}

// start validates the final configuration and builds the engine. Subcommands
// call it after applying their own flags.
func (a *app) start(cmd *cobra.Command) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: a.cfg.SlogLevel()}))
	a.engine = engine.New(engine.WithLogger(logger))
	logger.Debug("configuration ready",
		slog.String("expression", a.cfg.Expression),
		slog.String("variable", a.cfg.Variable),
	)

	return nil
}

// header prints "f(x) = <canonical form>".
func (a *app) header(cmd *cobra.Command, canonical string) {
	fmt.Fprintf(cmd.OutOrStdout(), "f(%s) = %s\n", a.cfg.Variable, canonical)
}
