package omap4

import (
	"fmt"
	"sync"

	"github.com/gen2brain/alsa-audiotool/board"
	"github.com/gen2brain/alsa-audiotool/mixercache"
)

// Marker controls probed on the live mixer.
const (
	MarkerVariantA = "DL1 PDM Switch"
	MarkerVariantB = "DL1 PDM_DL2 Switch"
	MarkerAux      = "AUXL Playback Switch"
)

// Variant is the ABE firmware revision found on the card.
type Variant int

const (
	VariantUnknown Variant = iota
	// VariantA routes DL1 to the PDM output through a single switch.
	VariantA
	// VariantB splits the DL1 PDM switch per downlink.
	VariantB
)

// String returns the name of the variant.
func (v Variant) String() string {
	switch v {
	case VariantA:
		return "A"
	case VariantB:
		return "B"
	default:
		return "unknown"
	}
}

// Capabilities records the variant detected on one card and the defaults
// table and routes that follow from it. Detection runs once, later calls
// keep the first result even when given a different cache.
type Capabilities struct {
	mu       sync.Mutex
	detected bool
	variant  Variant
	aux      bool
	defaults *mixercache.Cache
	routes   board.RouteSet
}

// Detect probes the live cache for the marker controls unless a previous
// call already succeeded. A cache with neither variant marker fails with
// board.ErrUnsupportedHardware and leaves the context undetected.
func (c *Capabilities) Detect(live *mixercache.Cache) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detected {
		return nil
	}

	var variant Variant
	switch {
	case has(live, MarkerVariantB):
		variant = VariantB
	case has(live, MarkerVariantA):
		variant = VariantA
	default:
		return fmt.Errorf("%w: found neither %q nor %q", board.ErrUnsupportedHardware, MarkerVariantA, MarkerVariantB)
	}

	aux := has(live, MarkerAux)

	blocks := [][]mixercache.ControlDescriptor{commonDefaults}
	if aux {
		blocks = append(blocks, auxDefaults)
	}

	blocks = append(blocks, variantDefaults(variant))

	c.variant = variant
	c.aux = aux
	c.defaults = buildDefaults(blocks...)
	c.routes = routes(variant)
	c.detected = true

	return nil
}

// Detected reports whether a detection succeeded.
func (c *Capabilities) Detected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.detected
}

// Variant returns the detected variant.
func (c *Capabilities) Variant() Variant {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.variant
}

// Aux reports whether the auxiliary output switches were found.
func (c *Capabilities) Aux() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.aux
}

// Routes returns the route tables of the detected variant.
func (c *Capabilities) Routes() board.RouteSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.routes
}

// reconcile runs the defaults pass under the context lock, the table's touch
// flags being shared state.
func (c *Capabilities) reconcile(live *mixercache.Cache) *mixercache.Report {
	c.mu.Lock()
	defer c.mu.Unlock()

	return mixercache.Reconcile(live, c.defaults)
}

// DefaultNames returns the control names of the composed defaults table in id order.
func (c *Capabilities) DefaultNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.defaults == nil {
		return nil
	}

	entries := c.defaults.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}

func variantDefaults(v Variant) []mixercache.ControlDescriptor {
	if v == VariantB {
		return variantBDefaults
	}

	return variantADefaults
}

func has(live *mixercache.Cache, name string) bool {
	_, err := live.IDByName(name)

	return err == nil
}
