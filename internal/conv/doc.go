// Package conv coerces loosely typed values, such as MCP tool arguments and
// workflow state, into generator request and response types.
package conv
