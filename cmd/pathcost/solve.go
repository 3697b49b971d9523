package main

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathcost"
	"github.com/katalvlaran/pathcost/report"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		inline string
		format string
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a grid from a file, --grid, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			source := "stdin"
			switch {
			case inline != "":
				in, source = strings.NewReader(inline), "flag"
			case len(args) == 1:
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in, source = file, args[0]
			}

			res, err := pathcost.SolveReader(in, a.sweepOptions()...)
			if err != nil {
				a.log.WithField("source", source).WithError(err).Error("solve failed")
				return err
			}
			a.log.WithFields(logrus.Fields{
				"source":  source,
				"total":   res.TotalCost,
				"success": res.Success,
			}).Debug("solved")

			return report.Write(cmd.OutOrStdout(), res, f)
		},
	}
	cmd.Flags().StringVar(&inline, "grid", "", `grid text, e.g. "1,2\n3,4" with real newlines`)
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|json")

	return cmd
}
