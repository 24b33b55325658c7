package cmd

import (
	"errors"
	"fmt"

	"briefly/internal/clix"
	"briefly/internal/fileio"
	"briefly/internal/models"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// runTool drives one session through upload, submit, render and export.
func runTool(cmd *cobra.Command, args []string, kind models.Kind) error {
	appInstance, err := GetAppFromContext(cmd.Context())
	if err != nil {
		return err
	}
	in, err := clix.ParseToolInput(cmd.Flags(), args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	s := appInstance.NewSession(kind)

	if in.File != "" {
		if err := s.Upload(in.File); err != nil {
			printError(errOut, "Error reading file: "+err.Error())
			return errReported
		}
		if meta, err := fileio.ExtractFileMeta(in.File); err == nil {
			log.Infof("Loaded %s (%d bytes)", meta.Name, meta.Size)
		}
	} else {
		s.SetInput(in.Text)
	}

	if kind == models.KindStudy && in.Subject != "" {
		if err := s.SetSubject(in.Subject); err != nil {
			return err
		}
	}

	future, err := s.Submit(cmd.Context())
	if errors.Is(err, models.ErrEmptyInput) {
		printWarning(errOut, models.EmptyInputText(kind))
		return errReported
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(errOut, s.Snapshot().Output)

	completion, err := future.Wait(cmd.Context())
	if err != nil {
		return fmt.Errorf("request abandoned: %w", err)
	}
	s.Apply(completion)

	st := s.Snapshot()
	if st.LastError != nil {
		printError(errOut, st.Output)
		return errReported
	}

	if kind == models.KindStudy {
		printHeading(out, "Study Notes:")
		fmt.Fprintln(out, st.Output)
		fmt.Fprintln(out)
		printHeading(out, "Quiz Questions:")
		fmt.Fprintln(out, st.Quiz)
	} else {
		fmt.Fprintln(out, st.Output)
	}

	if in.Out != "" {
		if err := s.Export(in.Out); err != nil {
			if errors.Is(err, models.ErrNothingToExport) {
				printWarning(errOut, models.NothingToExportText(kind))
				return errReported
			}
			printError(errOut, "Error exporting notes: "+err.Error())
			return errReported
		}
		fmt.Fprintf(errOut, "Exported to %s\n", in.Out)
	}
	return nil
}
