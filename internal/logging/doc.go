// Package logging provides structured logging for the asninfo tool.
//
// # Overview
//
// Logger is a small key-value interface backed by zap. It supports four
// levels (debug, info, warn, error), text and JSON output, named
// components and field-based contextual logging.
//
// # Creating a Logger
//
// Create a logger with configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Output is "stdout", "stderr" or a file path. For testing, use a no-op
// logger or write to a buffer:
//
//	logger := logging.NewNop()
//	logger := logging.NewWithWriter(cfg, &buf)
//
// # Structured Logging
//
// Add key-value pairs to log entries:
//
//	logger.Info("schema loaded",
//	    "path", "testdata/directory.yaml",
//	    "types", 6,
//	)
//
// Create a logger with persistent fields:
//
//	lint := logger.Named("lint").WithFields("module", "Directory")
//	lint.Warn("definition rejected", "type", "Entry")
package logging
