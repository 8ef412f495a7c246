package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDefaultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Reset the mixer of the card to the board defaults",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := a.open(true)
			if err != nil {
				return err
			}
			defer s.Close()

			live, err := a.populate(s)
			if err != nil {
				return err
			}

			report, err := s.profile.MixerDefaults(live)
			if err != nil {
				return err
			}

			a.report("mixer defaults mismatched", report)

			if err := live.Apply(s.hw()); err != nil {
				return fmt.Errorf("could not apply mixer setting: %w", err)
			}

			return report.Err()
		},
	}
}
