package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mrjar/internal/core/domain"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package",
		Short: "Assemble existing compiled outputs into the archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := c.app.Package(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			printLayout(cmd, layout)
			return nil
		},
	}
}

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Compile and package in one step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			layout, err := c.app.Build(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			printLayout(cmd, layout)
			return nil
		},
	}
}

func printLayout(cmd *cobra.Command, layout domain.ArchiveLayout) {
	out := cmd.OutOrStdout()
	if !layout.MultiRelease {
		_, _ = fmt.Fprintln(out, "archive: single release")
		return
	}
	_, _ = fmt.Fprintf(out, "archive: multi-release %v\n", layout.Releases())
}
