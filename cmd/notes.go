package cmd

import (
	"strings"

	"briefly/internal/models"

	"github.com/spf13/cobra"
)

var notesCmd = &cobra.Command{
	Use:   "notes [lecture text...]",
	Short: "Generate study notes and quiz questions from lecture text",
	Long: `Sends lecture text to the summarization service and prints study notes
followed by quiz questions. --out writes the study notes only.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, models.KindStudy)
	},
}

func init() {
	notesCmd.Flags().StringP("file", "f", "", "Read the lecture text from this file")
	notesCmd.Flags().StringP("out", "o", "", "Also write the study notes to this file")
	notesCmd.Flags().StringP("subject", "s", models.DefaultSubject, "Subject: "+strings.Join(models.Subjects, ", "))
	rootCmd.AddCommand(notesCmd)
}
