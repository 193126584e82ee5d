// Package config provides configuration parsing for the asninfo tool.
//
// # Overview
//
// Configuration is read from a YAML file. Environment variables are
// substituted before parsing with the ${VAR} and ${VAR:-default} forms, and
// every setting missing from the file keeps its default.
//
// # Configuration Structure
//
//	logging:
//	  level: info          # debug, info, warn, error
//	  format: text         # text or json
//	  output: stderr       # stdout, stderr or a file path
//	schema:
//	  paths:
//	    - ${SCHEMA_DIR:-./schemas}
//	  strict: false        # reject UNIVERSAL tags in definitions
//	  maxTagNumber: 2097151
//	codec:
//	  maxDepth: 64
//	  enforceConstraints: true
//
// # Loading Configuration
//
//	cfg, err := config.LoadConfig("asninfo.yaml")
//	if err != nil {
//	    return err
//	}
//	for _, err := range config.ValidateConfig(cfg) {
//	    log.Println(err)
//	}
//
// Each section converts to the options of the package it configures:
// LoggerConfig, ValidateOptions and Options.
package config
