package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gen2brain/alsa-audiotool/board"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config <play|cap> <frontend> <backend> <1|0|disable|enable>",
		Short: "Enable or disable an audio path",
		Long: "Enable or disable the path from a frontend to a backend.\n" +
			"Without arguments the frontends and backends of the card are listed.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf("%w: expected 4 arguments, got %d", board.ErrInvalidArgument, len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var req pathRequest
			if len(args) > 0 {
				var err error
				if req, err = parsePathArgs(args); err != nil {
					return err
				}
			}

			s, err := a.open(true)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 0 {
				return usage(cmd, s)
			}

			port, err := s.profile.Config(s.hw(), req.dir, req.frontend, req.backend, req.enable)
			if err != nil {
				return err
			}

			fmt.Printf("Path configured. Use card %d port %d\n", s.card.ID, port)

			return nil
		},
	}
}

// pathRequest is a parsed config command line.
type pathRequest struct {
	dir      board.Direction
	frontend string
	backend  string
	enable   bool
}

// parsePathArgs checks the direction and the enable flag before any card is opened.
func parsePathArgs(args []string) (pathRequest, error) {
	dir, err := board.ParseDirection(args[0])
	if err != nil {
		return pathRequest{}, err
	}

	enable, err := board.ParseEnable(args[3])
	if err != nil {
		return pathRequest{}, err
	}

	return pathRequest{dir: dir, frontend: args[1], backend: args[2], enable: enable}, nil
}

func usage(cmd *cobra.Command, s *session) error {
	fmt.Printf("Usage: audio-tool %s\n\n", cmd.Use)
	fmt.Printf("For card %d, the options are:\n", s.card.ID)

	for _, dir := range []board.Direction{board.Playback, board.Capture} {
		fes, bes, err := s.profile.Names(dir)
		if err != nil {
			if isNotSupported(err) {
				fmt.Printf("%s (%s): none\n", directionTitle(dir), dir)
				continue
			}

			return err
		}

		fmt.Printf("%s (%s):\n", directionTitle(dir), dir)
		fmt.Printf("  Frontends: %s\n", strings.Join(fes, " "))
		fmt.Printf("  Backends: %s\n", strings.Join(bes, " "))
	}

	fmt.Println()
	fmt.Println("To see options for a different card, use the -D option")

	return nil
}

func directionTitle(dir board.Direction) string {
	if dir == board.Capture {
		return "CAPTURE"
	}

	return "PLAYBACK"
}
