package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcost/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		maxBody int64
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /solve, /ws and /metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig().WithEnv()
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			cfg.Threshold = a.threshold
			cfg.Truncate = !a.noTruncate
			cfg.Workers = a.workers
			cfg.MaxBodyBytes = maxBody

			s, err := server.New(cfg, a.log)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return s.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", server.DefaultConfig().Addr, "listen address (default from $PORT when set)")
	cmd.Flags().Int64Var(&maxBody, "max-body", server.DefaultConfig().MaxBodyBytes, "request body limit in bytes")

	return cmd
}
