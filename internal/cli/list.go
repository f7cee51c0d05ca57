package cli

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/errmodel/demo"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Demo", "Strategy", "Description"})
			table.SetBorder(false)
			table.SetAutoWrapText(false)
			for _, d := range demo.Demos() {
				table.Append([]string{d.Name, string(d.Strategy), d.Description})
			}
			table.Render()
		},
	}
}
