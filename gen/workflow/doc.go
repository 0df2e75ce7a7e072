// Package workflow assembles a Fluxor engine in which the generator is
// available as the "firestore/config" action, next to a configurable set of
// built-in actions, so that multi-step build workflows can be run from the
// CLI.
package workflow
