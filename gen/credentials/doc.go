// Package credentials extracts the Firebase project credentials required by
// the generated FirestoreConfig class from a google-services.json document.
// Every value is looked up at a fixed path; a missing or mistyped value is an
// error, never a default.
package credentials
