package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gen2brain/alsa-audiotool/dump"
	"github.com/gen2brain/alsa-audiotool/internal/logging"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

func newSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <filename>",
		Short: "Save every control of the card to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.open(false)
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("could not open file %s for writing: %w", args[0], err)
			}

			if err := dump.Save(f, s.hw()); err != nil {
				f.Close()
				return err
			}

			return f.Close()
		},
	}
}

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <filename>",
		Short: "Restore the controls of the card from a saved file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := a.open(false)
			if err != nil {
				return err
			}
			defer s.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("could not open file %s: %w", args[0], err)
			}
			defer f.Close()

			report, err := dump.Restore(f, s.hw(), mixercache.WithLogger(logging.GetLogger("dump")))
			if err != nil {
				return err
			}

			a.report("controls were not restored", report)

			return report.Err()
		},
	}
}
