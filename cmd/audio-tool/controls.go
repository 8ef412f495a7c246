package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	alsa "github.com/gen2brain/alsa-audiotool"
)

func newControlsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controls [control] [value...]",
		Short: "Show or set individual mixer controls",
		Long: "Without arguments every control of the card is shown. A control is named\n" +
			"by its name or numeric id. One value is written to every slot, several\n" +
			"values must match the slot count. Integer values may be given in percent.",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, _ := cmd.Flags().GetBool("list")

			s, err := a.open(false)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 0 {
				printControls(s.mixer, list)
				return nil
			}

			ctl, err := lookupControl(s.mixer, args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				printControl(ctl, false)
				return nil
			}

			if err := setControl(ctl, args[1:]); err != nil {
				return fmt.Errorf("setting %s: %w", ctl.Name(), err)
			}

			return nil
		},
	}

	cmd.Flags().BoolP("list", "l", false, "Only list control ids and names")

	return cmd
}

func lookupControl(m *alsa.Mixer, ref string) (*alsa.MixerCtl, error) {
	if id, err := strconv.ParseUint(ref, 10, 32); err == nil {
		return m.Ctl(uint32(id))
	}

	return m.CtlByName(ref)
}

func printControls(m *alsa.Mixer, listOnly bool) {
	fmt.Printf("Mixer card '%s' has %d controls.\n", m.Name(), m.NumCtls())

	for i := 0; i < m.NumCtls(); i++ {
		ctl, err := m.CtlByIndex(uint(i))
		if err != nil {
			continue
		}

		printControl(ctl, listOnly)
	}
}

func printControl(ctl *alsa.MixerCtl, listOnly bool) {
	if listOnly {
		fmt.Printf("%d: %s\n", ctl.ID(), ctl.Name())
		return
	}

	fmt.Printf("%d: %s (%s, %d values)\n", ctl.ID(), ctl.Name(), ctl.TypeString(), ctl.NumValues())

	switch ctl.Type() {
	case alsa.MIXER_CTL_TYPE_INT:
		if lo, hi, err := intRange(ctl); err == nil {
			fmt.Printf("  Range: %d - %d\n", lo, hi)
		}
	case alsa.MIXER_CTL_TYPE_INT64:
		lo, errLo := ctl.RangeMin64()
		hi, errHi := ctl.RangeMax64()
		if errLo == nil && errHi == nil {
			fmt.Printf("  Range: %d - %d\n", lo, hi)
		}
	case alsa.MIXER_CTL_TYPE_ENUM:
		if items, err := ctl.AllEnumStrings(); err == nil {
			fmt.Printf("  Enums: %s\n", strings.Join(items, ", "))
		}
	}

	fmt.Printf("  Value: %s\n", formatValues(ctl))
}

func intRange(ctl *alsa.MixerCtl) (int, int, error) {
	lo, err := ctl.RangeMin()
	if err != nil {
		return 0, 0, err
	}

	hi, err := ctl.RangeMax()

	return lo, hi, err
}

// formatValues renders every slot of ctl for display.
func formatValues(ctl *alsa.MixerCtl) string {
	if ctl.Type() == alsa.MIXER_CTL_TYPE_BYTE {
		var data []byte
		if err := ctl.Array(&data); err != nil {
			return "<error>"
		}

		if len(data) > 16 {
			return fmt.Sprintf("%v...", data[:16])
		}

		return fmt.Sprintf("%v", data)
	}

	values := make([]string, 0, ctl.NumValues())
	for i := uint(0); i < uint(ctl.NumValues()); i++ {
		values = append(values, formatSlot(ctl, i))
	}

	return strings.Join(values, ", ")
}

func formatSlot(ctl *alsa.MixerCtl, i uint) string {
	switch ctl.Type() {
	case alsa.MIXER_CTL_TYPE_BOOL:
		v, err := ctl.Value(i)
		if err != nil {
			return "<error>"
		}

		if v != 0 {
			return "On"
		}

		return "Off"
	case alsa.MIXER_CTL_TYPE_INT:
		v, err := ctl.Value(i)
		if err != nil {
			return "<error>"
		}

		if pct, err := ctl.Percent(i); err == nil {
			return fmt.Sprintf("%d (%d%%)", v, pct)
		}

		return strconv.Itoa(v)
	case alsa.MIXER_CTL_TYPE_INT64:
		v, err := ctl.Value64(i)
		if err != nil {
			return "<error>"
		}

		return strconv.FormatInt(v, 10)
	case alsa.MIXER_CTL_TYPE_ENUM:
		s, err := ctl.EnumValueString(i)
		if err != nil {
			return "<error>"
		}

		return s
	default:
		return "<unsupported>"
	}
}

// setControl writes one value to every slot, or one value per slot.
func setControl(ctl *alsa.MixerCtl, values []string) error {
	n := uint(ctl.NumValues())

	if len(values) == 1 {
		if ctl.Type() == alsa.MIXER_CTL_TYPE_ENUM {
			return ctl.SetEnumByString(values[0])
		}

		for i := uint(0); i < n; i++ {
			if err := setSlot(ctl, i, values[0]); err != nil {
				return err
			}
		}

		return nil
	}

	if uint(len(values)) != n {
		return fmt.Errorf("provided %d values, but control has %d values", len(values), n)
	}

	for i, v := range values {
		if err := setSlot(ctl, uint(i), v); err != nil {
			return err
		}
	}

	return nil
}

func setSlot(ctl *alsa.MixerCtl, i uint, s string) error {
	switch ctl.Type() {
	case alsa.MIXER_CTL_TYPE_INT:
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			p, err := strconv.Atoi(pct)
			if err != nil {
				return fmt.Errorf("invalid percentage value '%s'", s)
			}

			return ctl.SetPercent(i, p)
		}

		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer value '%s'", s)
		}

		return ctl.SetValue(i, v)
	case alsa.MIXER_CTL_TYPE_BOOL:
		switch strings.ToLower(s) {
		case "1", "on", "true", "yes":
			return ctl.SetValue(i, 1)
		case "0", "off", "false", "no":
			return ctl.SetValue(i, 0)
		}

		return fmt.Errorf("invalid boolean value '%s'", s)
	case alsa.MIXER_CTL_TYPE_INT64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid int64 value '%s'", s)
		}

		return ctl.SetValue64(i, v)
	case alsa.MIXER_CTL_TYPE_ENUM:
		item, err := ctl.EnumIndex(s)
		if err != nil {
			return err
		}

		return ctl.SetValue(i, int(item))
	default:
		return fmt.Errorf("cannot set value for control type %s", ctl.TypeString())
	}
}
