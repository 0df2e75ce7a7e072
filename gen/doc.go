// Package gen wires credential extraction, template rendering and output
// handling into a single Service. The CLI, the Fluxor action and the MCP tool
// all go through Service.Run so that every entry point produces identical
// source for identical input.
package gen
