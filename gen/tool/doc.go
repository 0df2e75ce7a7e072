// Package tool exposes the generator action methods as MCP tools. Tool names
// and JSON schemas are derived from the Fluxor action signatures; the
// resulting handler factory backs the serve command.
package tool
