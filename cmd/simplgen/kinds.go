package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-simplgen/pkg/simpl"
)

// kindsCmd prints the naming table.
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List declarable kinds with their keywords and naming tokens",
	Args:  cobra.NoArgs,
	RunE:  listKinds,
}

func listKinds(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "SECTION\tTAG\tKEYWORD\tPREFIX\tSUFFIX\tDEFAULT SIZE"); err != nil {
		return err
	}
	for _, kind := range simpl.Kinds() {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			kind.Role().Label(),
			kind.Selector(),
			kind.Keyword(),
			dash(kind.Prefix()),
			dash(kind.Suffix()),
			dash(kind.DefaultSize()),
		)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
