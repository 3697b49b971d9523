package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcost/sweep"
)

var version = "0.1.0-dev"

// app carries the flags shared by every subcommand.
type app struct {
	threshold  int
	noTruncate bool
	workers    int
	logLevel   string
	logFormat  string
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	rootCmd := &cobra.Command{
		Use:   "pathcost",
		Short: "Find the cheapest wrapping path through a cost grid",
		Long: `pathcost reads a grid of integer costs (comma-separated values,
one row per line) and finds the cheapest path that crosses every column
from left to right, moving straight or diagonally, with the first and last
rows adjacent. A path succeeds when its total cost stays within the threshold.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&a.threshold, "threshold", sweep.DefaultThreshold, "highest total cost of a successful path")
	flags.BoolVar(&a.noTruncate, "no-truncate", false, "report the complete cheapest path even when it fails")
	flags.IntVar(&a.workers, "workers", 1, "goroutines per fold")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	flags.StringVar(&a.logFormat, "log-format", "text", "log format: text|json")

	rootCmd.AddCommand(newSolveCmd(a), newServeCmd(a))

	return rootCmd
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(level)
	a.log.SetOutput(cmd.ErrOrStderr())
	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}

	return nil
}

func (a *app) sweepOptions() []sweep.Option {
	opts := []sweep.Option{sweep.WithThreshold(a.threshold), sweep.WithWorkers(a.workers)}
	if a.noTruncate {
		opts = append(opts, sweep.WithoutTruncation())
	}

	return opts
}
