package cmd

import (
	"errors"
	"io"

	"github.com/fatih/color"
)

// errReported marks failures that were already shown to the user.
var errReported = errors.New("reported")

func printWarning(w io.Writer, msg string) {
	color.New(color.FgYellow).Fprintln(w, msg)
}

func printError(w io.Writer, msg string) {
	color.New(color.FgRed).Fprintln(w, msg)
}

func printHeading(w io.Writer, msg string) {
	color.New(color.Bold).Fprintln(w, msg)
}
