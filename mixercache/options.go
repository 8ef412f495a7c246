package mixercache

import "github.com/gen2brain/alsa-audiotool/internal/logging"

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for audit and apply warnings.
func WithLogger(logger logging.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxValues caps the number of slots recorded per control. The per-kind
// capacity still applies when it is lower.
func WithMaxValues(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxValues = n
		}
	}
}
