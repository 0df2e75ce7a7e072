// Package log configures the process-wide zerolog logger. Diagnostics always
// go to stderr so that generated source on stdout stays clean.
package log
