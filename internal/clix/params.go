package clix

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// ToolInput is what a tool command collected from its flags and arguments.
type ToolInput struct {
	Text    string
	File    string
	Out     string
	Subject string
}

// ParseToolInput reads --file, --out and --subject and joins the positional
// arguments into the input text. A single "-" argument reads the text from stdin.
func ParseToolInput(flags *pflag.FlagSet, args []string, stdin io.Reader) (ToolInput, error) {
	var in ToolInput
	in.File, _ = flags.GetString("file")
	in.Out, _ = flags.GetString("out")
	in.Subject, _ = flags.GetString("subject")
	in.Subject = strings.TrimSpace(in.Subject)

	if in.File != "" && len(args) > 0 {
		return in, fmt.Errorf("give the input either as text or with --file, not both")
	}

	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return in, fmt.Errorf("failed to read stdin: %w", err)
		}
		in.Text = string(data)
		return in, nil
	}

	in.Text = strings.Join(args, " ")
	return in, nil
}
