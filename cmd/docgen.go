//go:build docgen

package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	extraCommands = append(extraCommands, NewCmdDocGen)
}

// NewCmdDocGen returns the hidden [cobra.Command] used for generating documentation.
func NewCmdDocGen() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "docgen",
		Short:  "Generate documentation",
		Hidden: true,
	}

	var manDir, mdDir string

	man := &cobra.Command{
		Use:   "man",
		Short: "Generate man pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hdr := &doc.GenManHeader{
				Title:   "UNITCONV",
				Section: "1",
			}
			if err := os.MkdirAll(manDir, 0750); err != nil {
				return err
			}
			return doc.GenManTree(cmd.Root(), hdr, manDir)
		},
	}
	man.Flags().StringVarP(&manDir, "dir", "d", "docs/man", "Output directory")

	md := &cobra.Command{
		Use:   "markdown",
		Short: "Generate markdown docs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := os.MkdirAll(mdDir, 0750); err != nil {
				return err
			}
			return doc.GenMarkdownTree(cmd.Root(), mdDir)
		},
	}
	md.Flags().StringVarP(&mdDir, "dir", "d", "docs/md", "Output directory")

	cmd.AddCommand(man, md)
	return cmd
}
