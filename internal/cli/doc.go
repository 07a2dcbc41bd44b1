// Package cli is responsible for the launcher's command-line surface. It
// defines the fixed argument catalog, drives tokenization and validation of
// the raw invocation, and handles process-level concerns like exit codes.
// It translates the resolved argument values into the application's
// internal configuration.
package cli
