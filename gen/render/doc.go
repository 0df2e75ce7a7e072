// Package render turns project credentials into the FirestoreConfig Java
// source. The template is embedded in the binary and rendered with
// text/template; values are substituted as Java string literals.
package render
