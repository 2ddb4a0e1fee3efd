package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/unitconv"
	"github.com/lone-faerie/unitconv/config"
	"github.com/lone-faerie/unitconv/internal/format"
	"github.com/lone-faerie/unitconv/log"
	"github.com/lone-faerie/unitconv/units"
)

//go:embed help/convert.md
var convertHelp string

// NewCmdConvert returns the [cobra.Command] used for converting a single value.
//
// Flags must come before the quantity so that negative values are not
// mistaken for flags.
//
// Usage:
//
//	unitconv convert [flags] <quantity> <value> <from> <to>
//
// Aliases:
//
//	convert, c
//
// Flags:
//
//	-c, --config strings   Path(s) to config file/directory
//	-l, --log level        Log level (default WARN)
//	-p, --precision int    Digits after the decimal point, or -1 for the shortest exact value (default -1)
//	-o, --output format    Output format (plain, json, yaml) (default plain)
//	-h, --help             help for convert
func NewCmdConvert() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert [flags] <quantity> <value> <from> <to>",
		Aliases: []string{"c"},
		Short:   "Convert a value between two units",
		Long:    convertHelp,
		Example: `  unitconv convert length 1 mile kilometer
  unitconv convert -p 2 temperature -40 celsius fahrenheit
  unitconv convert -o json mass 1000 gram kilogram`,
		GroupID:           "convert",
		Args:              cobra.ExactArgs(4),
		ValidArgsFunction: completeConvert,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd, log.LevelWarn)
		},
		RunE: runConvert,

		DisableFlagsInUseLine: true,
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().SetInterspersed(false)
	addConfigFlags(cmd)
	addOutputFlags(cmd.Flags())

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func completeConvert(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return units.Quantities(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		return nil, cobra.ShellCompDirectiveNoFileComp
	case 2, 3:
		uu, err := units.Units(args[0])
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return uu, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func runConvert(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return &ExitError{fmt.Errorf("invalid value %q: %w", args[1], errors.Unwrap(err)), 2}
	}

	req := unitconv.Request{
		Quantity: args[0],
		Value:    v,
		From:     args[2],
		To:       args[3],
	}
	log.Debug("Converting", "quantity", req.Quantity, "value", req.Value, "from", req.From, "to", req.To)

	if cfg.Format != config.FormatPlain {
		res := req.Do(cfg.Precision)
		if err := encode(cmd.OutOrStdout(), cfg.Format, res); err != nil {
			return &ExitError{err, 1}
		}
		if res.Error != "" {
			return &ExitError{errors.New(res.Error), 2}
		}
		return nil
	}

	res, err := req.Convert(cfg.Precision)
	if err != nil {
		return &ExitError{err, 2}
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.Float(res, cfg.Precision))
	return nil
}
