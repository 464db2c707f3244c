package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/ui/output"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the compilation passes without running them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			passes, err := c.app.Plan(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			printer := output.NewPrinter(cmd.OutOrStdout())
			for i, p := range passes {
				printer.Pass(fmt.Sprintf("%d. %s", i+1, p.Name()), domain.PassStatusPending)
				printer.Detail("source", p.SourceRoot)
				printer.Detail("output", p.OutputRoot)
				if p.Options.Release != "" {
					printer.Detail("release", p.Options.Release)
				}
				if p.IsDescriptorPass() {
					printer.Detail("only", strings.Join(p.Options.Includes, ", "))
				}
			}
			return nil
		},
	}
}
