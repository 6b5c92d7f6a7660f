package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"prefab-manager/feature/components"

	"github.com/spf13/cobra"
)

// catalogCmd prints the registered component catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the registered component types and their properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := components.NewCatalog()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COMPONENT\tPROPERTY\tKIND\tSTRUCTURAL")
		for _, spec := range catalog.Types() {
			if len(spec.Properties) == 0 {
				fmt.Fprintf(w, "%s\t\t\t%v\n", spec.Name, spec.Structural)
				continue
			}
			for _, p := range spec.Properties {
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", spec.Name, p.Name, p.Kind, spec.Structural || p.Structural)
			}
		}
		return w.Flush()
	},
}

func init() {
	RootCmd.AddCommand(catalogCmd)
}
