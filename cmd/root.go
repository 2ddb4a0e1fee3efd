// Package cmd implements the unitconv command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lone-faerie/unitconv/internal/build"
	"github.com/lone-faerie/unitconv/internal/cleanup"
)

// extraCommands are added to the root command by optional build tags.
var extraCommands []func() *cobra.Command

// NewCmdRoot returns the root [cobra.Command] with every subcommand added.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unitconv",
		Short:   "Convert values between units of the same quantity",
		Version: build.Version(),
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			cleanup.Run()
		},
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	cmd.AddGroup(
		&cobra.Group{ID: "convert", Title: "Conversion Commands:"},
		&cobra.Group{ID: "bridge", Title: "Bridge Commands:"},
	)

	cmd.AddCommand(
		NewCmdConvert(),
		NewCmdList(),
		NewCmdServe(),
		NewCmdStop(),
	)
	for _, fn := range extraCommands {
		cmd.AddCommand(fn())
	}

	return cmd
}

// Execute runs the root command with the arguments of the process.
func Execute() error {
	defer cleanup.Run()
	return NewCmdRoot().Execute()
}
