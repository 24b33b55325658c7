package cmd

import (
	"briefly/internal/models"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [notes...]",
	Short: "Summarize meeting notes",
	Long: `Sends meeting notes to the summarization service and prints a structured
summary with key decisions, action items and discussion points.

The notes can be given as arguments, read from a file with --file, or read
from stdin with a single "-" argument.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, models.KindMeeting)
	},
}

func init() {
	summarizeCmd.Flags().StringP("file", "f", "", "Read the meeting notes from this file")
	summarizeCmd.Flags().StringP("out", "o", "", "Also write the summary to this file")
	rootCmd.AddCommand(summarizeCmd)
}
