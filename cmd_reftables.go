package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"avestimator/config"
	"avestimator/services"
)

// newRefTablesCmd prints the reference hours and material prices the
// estimator will use, so an alternate reference file can be checked
// before serving it.
func newRefTablesCmd(configPath *string) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "reftables",
		Short: "Print the loaded reference hours and material prices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			tables, err := services.LoadReferenceTables(cfg.Reference.File)
			if err != nil {
				return fmt.Errorf("reference tables: %w", err)
			}
			return printRefTables(cmd.OutOrStdout(), tables, category)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only print this category")
	return cmd
}

func printRefTables(out io.Writer, tables *services.ReferenceTables, category string) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	found := false
	for _, c := range tables.Categories() {
		if category != "" && c != category {
			continue
		}
		found = true
		fmt.Fprintf(w, "%s\n", c)
		if tables.IsFlat(c) {
			for _, t := range tables.TaskOptions(c, "") {
				fmt.Fprintf(w, "  %s\t%s\n", t.Label, services.FormatHours(t.Hours))
			}
			continue
		}
		for _, sub := range tables.Subcategories(c) {
			fmt.Fprintf(w, "  %s\n", sub)
			for _, t := range tables.TaskOptions(c, sub) {
				fmt.Fprintf(w, "    %s\t%s\n", t.Label, services.FormatHours(t.Hours))
			}
		}
	}
	if category != "" && !found {
		return fmt.Errorf("unknown category %q", category)
	}

	if category == "" {
		fmt.Fprintln(w, "Wires (per 1000 ft)")
		for _, wt := range tables.WireTypes() {
			price, _ := tables.WirePrice(wt)
			fmt.Fprintf(w, "  %s\t%s\n", wt, services.FormatUSD(price))
		}
		fmt.Fprintln(w, "Rack materials")
		for _, m := range tables.RackMaterialTypes() {
			fmt.Fprintf(w, "  %s\t%s\n", m, services.FormatUSD(services.RackMaterialCost(1)))
		}
	}
	return w.Flush()
}
