// Package config defines the YAML/JSON configuration model of the generator
// (input location, output target, Java package and class name, MCP server
// options) as well as helpers to load, default and validate it.
package config
