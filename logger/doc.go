// Package logger provides zerolog-backed structured logging for the
// delivery pipeline. Nop returns a disabled logger for callers that do not
// want any output.
package logger
