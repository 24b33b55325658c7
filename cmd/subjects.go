package cmd

import (
	"strconv"

	"briefly/internal/models"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects accepted by 'notes --subject'",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"#", "Subject", "Default"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for i, s := range models.Subjects {
			def := ""
			if s == models.DefaultSubject {
				def = "yes"
			}
			table.Append([]string{strconv.Itoa(i + 1), s, def})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
