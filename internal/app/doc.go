// Package app contains the launcher application that consumes a validated
// invocation. It defines the typed Config built from resolved argument
// values and the App lifecycle, decoupled from the CLI entrypoint. The app
// stops where the argument layer's contract ends: it logs the resolved
// invocation and echoes verbatim pass-through arguments, leaving socket
// binding and microVM startup to downstream components.
package app
