// Package action exposes the generator as a Fluxor action service
// ("firestore/config") so that build workflows run by the Fluxor engine can
// invoke it like any other step.
package action
