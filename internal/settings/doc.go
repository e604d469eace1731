// Package settings implements the schema-driven configuration core: typed
// setting definitions, value coercion, category grouping, the profile
// authoring draft with its enabled-set contract, and the tolerant lookup
// that resolves stored profile values against the live schema.
package settings
