package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/ui/output"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile",
		Short: "Compile the base sources and every per-release source tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Compile(cmd.Context(), options(cmd))
			printReport(cmd, report)
			return err
		},
	}
}

func printReport(cmd *cobra.Command, report domain.RunReport) {
	printer := output.NewPrinter(cmd.OutOrStdout())
	for _, p := range report.Passes {
		printer.Pass(p.Pass.Name(), p.Status())
	}
}
