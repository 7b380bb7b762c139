package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/screening-cli/internal/taxonomy"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List the industry taxonomy and benchmark figures",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDUSTRY\tREV/EMPLOYEE\tEBITDA MARGIN\tGROWTH")
		for _, ind := range taxonomy.All() {
			fmt.Fprintf(tw, "%s\t$%d\t%.0f%%\t%d%%\n",
				ind.Label,
				ind.RevenuePerEmployee,
				ind.EBITDAMargin*100,
				ind.GrowthRate,
			)
		}
		fmt.Fprintf(tw, "%s\t$%d\t%.0f%%\t%d%%\n",
			taxonomy.DefaultLabel(),
			taxonomy.RevenuePerEmployee(taxonomy.DefaultLabel()),
			taxonomy.EBITDAMargin(taxonomy.DefaultLabel())*100,
			taxonomy.GrowthBenchmark(taxonomy.DefaultLabel()),
		)
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(industriesCmd)
}
