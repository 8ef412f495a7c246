package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	alsa "github.com/gen2brain/alsa-audiotool"
	"github.com/gen2brain/alsa-audiotool/internal/logging"
)

func newMonitorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Log control changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			interval, _ := cmd.Flags().GetDuration("poll")

			s, err := a.open(false)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log := logging.GetLogger("monitor")
			log.Info("Watching controls", "card", s.card.ID, "name", s.mixer.Name())

			err = s.mixer.Watch(ctx, interval, func(ev *alsa.MixerEvent) {
				logEvent(s.mixer, ev)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}

			return err
		},
	}

	cmd.Flags().Duration("poll", time.Second, "Poll timeout between cancellation checks")

	return cmd
}

func logEvent(m *alsa.Mixer, ev *alsa.MixerEvent) {
	log := logging.GetLogger("monitor")

	if ev.Type.Removed() {
		log.Info("Control removed", "id", ev.ControlID)
		return
	}

	if ev.Type.Has(alsa.SNDRV_CTL_EVENT_MASK_ADD) {
		if err := m.AddNewCtls(); err != nil {
			log.Warn("Could not refresh controls", "error", err)
		}
	}

	ctl, err := m.Ctl(ev.ControlID)
	if err != nil {
		log.Info("Control event", "id", ev.ControlID, "mask", uint32(ev.Type))
		return
	}

	if ev.Type.Has(alsa.SNDRV_CTL_EVENT_MASK_VALUE) {
		if err := ctl.Update(); err != nil {
			log.Warn("Could not read control", "control", ctl.Name(), "error", err)
			return
		}

		log.Info("Value changed", "id", ev.ControlID, "control", ctl.Name(), "value", formatValues(ctl))
		return
	}

	log.Info("Control event", "id", ev.ControlID, "control", ctl.Name(), "mask", uint32(ev.Type))
}
