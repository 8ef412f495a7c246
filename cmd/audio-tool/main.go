// Command audio-tool configures the mixer of an embedded sound card: it
// restores board defaults, switches audio paths on and off and saves or
// restores full control dumps.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/internal/config"
	"github.com/gen2brain/alsa-audiotool/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "audio-tool",
		Short:         "Configure the mixer and audio paths of a sound card",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			logging.Initialize(cfg.Logging)
			a.cfg = cfg

			return nil
		},
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newCardsCmd(a),
		newDefaultsCmd(a),
		newConfigCmd(a),
		newSaveCmd(a),
		newRestoreCmd(a),
		newMonitorCmd(a),
		newControlsCmd(a),
	)

	return root
}

// exitCode is 2 for caller errors and 1 for everything else.
func exitCode(err error) int {
	if errors.Is(err, board.ErrInvalidArgument) {
		return 2
	}

	return 1
}
