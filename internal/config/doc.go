// Package config provides configuration management for the survey report tool.
// It loads settings from multiple sources, validates them, and exposes a typed
// Config to the command entry points.
//
// # Configuration Sources
//
// Sources are applied in order, each overriding the one before:
//
//	1. Default values (Default)
//	2. A YAML file (config.yaml, configs/config.yaml, or an explicit path)
//	3. Environment variables with the SURVEY_ prefix
//	4. Command-line flags (applied by the caller)
//
// # Environment Variables
//
//	SURVEY_INPUT_PATH=data/survey.csv
//	SURVEY_OUTPUT_DIR=reports
//	SURVEY_OUTPUT_MODE=chart
//	SURVEY_OUTPUT_GROUP_BY=industry,exp_general
//	SURVEY_LOGGING_LEVEL=debug
//	SURVEY_TELEMETRY_TRACE_EXPORTER=stdout
//
// Validate must be called once all sources, flags included, have been applied.
package config
