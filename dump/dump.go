// Package dump saves every control of a mixer to a tab separated text file
// and restores such a file onto a card.
//
// Each line holds the control name, its type, its value count and one field
// per value. Enumerated values are written as labels, values of types without
// a scalar form as "#N/A". Lines starting with "# ", and lines holding a lone
// '#', are comments, so control names may themselves start with '#'.
package dump

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gen2brain/alsa-audiotool/internal/logging"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// Header is the comment written at the top of every dump.
const Header = "# Format: CTL_NAME<tab>CTL_TYPE<tab>NUM_VALS<tab>VAL1<tab>VAL2..."

// NotAvailable marks a value that has no text form. Restoring stops at the first one.
const NotAvailable = "#N/A"

// Save writes a line for every control of m.
func Save(w io.Writer, m mixercache.Mixer) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	for id := 0; id < m.NumCtls(); id++ {
		ctl, err := m.Control(id)
		if err != nil {
			return fmt.Errorf("%w: control #%d: %w", mixercache.ErrDevice, id, err)
		}

		record, err := line(ctl)
		if err != nil {
			return fmt.Errorf("%w: reading %s: %w", mixercache.ErrDevice, ctl.Name(), err)
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func line(ctl mixercache.Control) ([]string, error) {
	n := ctl.NumValues()
	record := make([]string, 0, 3+n)
	record = append(record, ctl.Name(), ctl.Type().String(), strconv.FormatUint(uint64(n), 10))

	kind := mixercache.KindOf(ctl.Type())
	for k := uint(0); k < uint(n); k++ {
		switch kind {
		case mixercache.KindBoolean, mixercache.KindInteger, mixercache.KindByte:
			v, err := ctl.Value(k)
			if err != nil {
				return nil, err
			}
			record = append(record, strconv.Itoa(v))
		case mixercache.KindInteger64:
			v, err := ctl.Value64(k)
			if err != nil {
				return nil, err
			}
			record = append(record, strconv.FormatInt(v, 10))
		case mixercache.KindEnumerated:
			item, err := ctl.Value(k)
			if err != nil {
				return nil, err
			}

			label, err := ctl.EnumString(uint(item))
			if err != nil {
				return nil, err
			}
			record = append(record, label)
		default:
			record = append(record, NotAvailable)
		}
	}

	return record, nil
}

// Restore writes the values of a dump onto the controls of m with the same
// name. A line naming an absent control, or a control of another type or
// value count, is reported and skipped. The report lists file lines without a
// control as Unapplied and card controls the file did not restore as Missing.
func Restore(r io.Reader, m mixercache.Mixer, opts ...mixercache.Option) (*mixercache.Report, error) {
	log := logging.GetLogger("dump")

	live := mixercache.New(opts...)
	if err := live.Populate(m); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	report := &mixercache.Report{}
	skipped := map[string]bool{}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to read dump: %w", err)
		}

		name := record[0]
		if name == "" || isComment(name) {
			continue
		}

		id, err := live.IDByName(name)
		if err != nil {
			log.Warn("Could not find control", "control", name)
			report.Unapplied = append(report.Unapplied, name)
			continue
		}

		ctl, err := m.Control(id)
		if err != nil {
			return nil, fmt.Errorf("%w: control #%d: %w", mixercache.ErrDevice, id, err)
		}

		if err := check(ctl, record); err != nil {
			log.Warn("Skipping control", "control", name, "id", id, "error", err)
			report.Mismatched = append(report.Mismatched, name)
			skipped[name] = true
			continue
		}

		if err := restore(ctl, record[3:]); err != nil {
			log.Warn("Could not restore control", "control", name, "id", id, "error", err)
			report.Unaccounted = append(report.Unaccounted, name)
			skipped[name] = true
			continue
		}

		live.Touch(id)
	}

	live.AuditTouch(true)

	for _, name := range live.Untouched() {
		if !skipped[name] {
			report.Missing = append(report.Missing, name)
		}
	}

	return report, nil
}

func isComment(field string) bool {
	return field == "#" || strings.HasPrefix(field, "# ")
}

func check(ctl mixercache.Control, record []string) error {
	if len(record) < 3 {
		return fmt.Errorf("expected at least 3 fields, got %d", len(record))
	}

	if typ := ctl.Type().String(); record[1] != typ {
		return fmt.Errorf("%w: file=%s card=%s", mixercache.ErrTypeMismatch, record[1], typ)
	}

	count, err := strconv.Atoi(record[2])
	if err != nil {
		return fmt.Errorf("invalid value count %q", record[2])
	}

	if n := int(ctl.NumValues()); count != n {
		return fmt.Errorf("value count mismatch: file=%d card=%d", count, n)
	}

	if len(record)-3 > count {
		return fmt.Errorf("%d values for a count of %d", len(record)-3, count)
	}

	return nil
}

func restore(ctl mixercache.Control, fields []string) error {
	for i, f := range fields {
		if f == NotAvailable {
			fields = fields[:i]
			break
		}
	}

	if len(fields) == 0 {
		return nil
	}

	value, err := mixercache.ParseValue(mixercache.KindOf(ctl.Type()), fields)
	if err != nil {
		return err
	}

	return mixercache.WriteValue(ctl, value)
}
