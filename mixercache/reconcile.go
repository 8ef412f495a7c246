package mixercache

import (
	"fmt"
	"strings"
)

// Report is the outcome of a best-effort pass over a cache. A pass that
// returns a Report always completed, Complete tells whether every control
// was accounted for.
type Report struct {
	// Missing lists live controls with no default.
	Missing []string
	// Mismatched lists live controls whose kind differs from the default.
	Mismatched []string
	// Unapplied lists defaults that matched no live control.
	Unapplied []string
	// Unaccounted lists live controls left untouched for any other reason.
	Unaccounted []string
}

// Complete reports whether both sides of the pass were fully covered.
func (r *Report) Complete() bool {
	return r == nil || len(r.Missing)+len(r.Mismatched)+len(r.Unapplied)+len(r.Unaccounted) == 0
}

// Err returns nil for a complete report and an ErrIncomplete summary otherwise.
func (r *Report) Err() error {
	if r.Complete() {
		return nil
	}

	var parts []string
	if n := len(r.Missing); n > 0 {
		parts = append(parts, fmt.Sprintf("%d without default", n))
	}
	if n := len(r.Mismatched); n > 0 {
		parts = append(parts, fmt.Sprintf("%d type mismatches", n))
	}
	if n := len(r.Unapplied); n > 0 {
		parts = append(parts, fmt.Sprintf("%d unapplied defaults", n))
	}
	if n := len(r.Unaccounted); n > 0 {
		parts = append(parts, fmt.Sprintf("%d untouched", n))
	}

	return fmt.Errorf("%w: %s", ErrIncomplete, strings.Join(parts, ", "))
}

// Reconcile copies the value of every default into the live entry of the same
// name and kind, then audits both caches for full coverage. Problems are
// logged and collected in the report, they never stop the pass.
//
// When the default holds fewer slots than the live control, the remaining
// slots repeat its last value. The defaults table is only touched, never
// written.
func Reconcile(live, defaults *Cache) *Report {
	report := &Report{}

	live.ResetTouch()
	defaults.ResetTouch()

	for i := range live.entries {
		e := &live.entries[i]

		n, err := defaults.IDByName(e.Name)
		if err != nil {
			live.logger.Warn("No default defined", "control", e.Name, "id", e.ID)
			report.Missing = append(report.Missing, e.Name)
			continue
		}

		def := &defaults.entries[n]
		if def.Kind != e.Kind {
			live.logger.Warn("Type mismatch", "control", e.Name, "kind", e.Kind.String(), "default", def.Kind.String())
			report.Mismatched = append(report.Mismatched, e.Name)
			continue
		}

		e.Value = Resize(def.Value, e.Count)

		live.Touch(e.ID)
		defaults.Touch(n)
	}

	live.AuditTouch(true)
	defaults.AuditTouch(true)

	report.Unapplied = defaults.Untouched()

	return report
}
