// Package cmd implements the sub-commands of the firestore-gen command-line
// interface. Each file registers a single sub-command; generate runs when no
// command is given. Configuration loading and service initialisation shared
// between commands live in shared.go.
package cmd
