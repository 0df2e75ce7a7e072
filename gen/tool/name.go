package tool

import "strings"

// Name is an MCP tool name derived from a Fluxor service and method:
// "firestore/config" + "generate" becomes "firestore_config-generate".
type Name string

// Service returns the Fluxor service part of the tool name.
func (t Name) Service() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return strings.ReplaceAll(tool[:idx], "_", "/")
	}
	return tool
}

// Method returns the Fluxor method part of the tool name.
func (t Name) Method() string {
	tool := string(t)
	if idx := strings.LastIndex(tool, "-"); idx != -1 {
		return tool[idx+1:]
	}
	return ""
}

func (t Name) String() string {
	return string(t)
}

// NewName new name
func NewName(service, method string) Name {
	return Name(strings.ReplaceAll(service, "/", "_") + "-" + method)
}
