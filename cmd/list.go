package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/unitconv"
	"github.com/lone-faerie/unitconv/config"
	"github.com/lone-faerie/unitconv/internal/format"
	"github.com/lone-faerie/unitconv/log"
	"github.com/lone-faerie/unitconv/units"
)

// Flags for unitconv list
var (
	ListFactors bool // Include the factor of each unit
)

//go:embed help/list.md
var listHelp string

// NewCmdList returns the [cobra.Command] used for listing quantities and units.
//
// Usage:
//
//	unitconv list [flags] [quantity]...
//
// Aliases:
//
//	list, l
//
// Flags:
//
//	-f, --factors         Include the factor of each unit
//	-o, --output format   Output format (plain, json, yaml) (default plain)
//	-h, --help            help for list
func NewCmdList() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list [flags] [quantity]...",
		Aliases:   []string{"l"},
		Short:     "List quantities and their units",
		Long:      listHelp,
		GroupID:   "convert",
		ValidArgs: units.Quantities(),
		Args:      cobra.OnlyValidArgs,
		RunE:      runList,
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().BoolVarP(&ListFactors, "factors", "f", false, "Include the factor of each unit")
	Format = config.FormatPlain
	cmd.Flags().VarP(&Format, "output", "o", "Output format (plain, json, yaml)")

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	log.SetLogLevel(log.LevelWarn)

	var qq []unitconv.Quantity
	if len(args) == 0 {
		qq = unitconv.Catalog()
	} else {
		for _, name := range args {
			q, err := unitconv.Describe(name)
			if err != nil {
				return &ExitError{err, 2}
			}
			qq = append(qq, q)
		}
	}

	w := cmd.OutOrStdout()
	if Format != config.FormatPlain {
		if err := encode(w, Format, qq); err != nil {
			return &ExitError{err, 1}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(args) == 0 {
		printQuantities(tw, qq)
	} else {
		for i, q := range qq {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			printUnits(tw, q)
		}
	}
	return tw.Flush()
}

func printQuantities(w io.Writer, qq []unitconv.Quantity) {
	fmt.Fprintln(w, "QUANTITY\tSTANDARD\tUNITS")
	for _, q := range qq {
		fmt.Fprintf(w, "%s\t%s\t%d\n", q.Name, q.Standard, len(q.Units))
	}
}

func printUnits(w io.Writer, q unitconv.Quantity) {
	fmt.Fprintf(w, "[%s]\n", q.Label)
	for _, u := range q.Units {
		fmt.Fprintf(w, "  %s\t%s", u.Name, u.Label)
		if u.Name == q.Standard {
			io.WriteString(w, "\t(standard)")
		} else {
			io.WriteString(w, "\t")
		}
		if ListFactors && q.Linear {
			fmt.Fprintf(w, "\t%s", format.Float(u.Factor, -1))
		}
		fmt.Fprintln(w)
	}
}
