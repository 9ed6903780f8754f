// Package config loads and validates the HRMS Lite settings.
//
// Values come from an optional YAML file, environment variables and a local
// .env file, in increasing order of precedence for the variables they set.
// Each settings struct validates itself so that misconfiguration fails the
// process before the database or the HTTP listener is touched.
package config
