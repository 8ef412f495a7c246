// Package logging provides structured logging with per-module log level configuration.
//
// Initialize the logging system once at startup, then get a logger per module:
//
//	logging.Initialize(logging.Config{
//		Level:  "info", // debug, info, warn, error
//		Format: "text", // text or json
//		Modules: map[string]string{
//			"mixercache": "debug",
//		},
//	})
//
//	logger := logging.GetLogger("board")
//	logger.Warn("No default defined", "control", name)
//
// Records go to stderr so that command output on stdout stays machine readable.
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[logging.modules]
//	mixercache = "debug"
package logging
