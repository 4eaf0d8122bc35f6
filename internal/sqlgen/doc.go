// Package sqlgen compiles declarative view definitions into BigQuery
// Standard SQL view bodies.
//
// Compile is the entry point. Given a share Config, the dataset the view is
// being defined in, and a Definition, it produces a single immutable SQL
// string: either the custom override (after variable substitution), a plain
// select-plus-where statement, or the public-access fallback composition,
// finally wrapped in the expiration guard when one is configured.
//
// Row visibility is expressed by one of two mutually exclusive entitlement
// strategies:
//
//   - dataset-scoped: membership is delegated to a shared entitlement
//     mapping view keyed by (viewName, accessControlLabel)
//   - local-scoped: an allow-list of labels from the definition and the
//     dataset, compared case-insensitively against the label column
//
// Compilation is pure: no I/O, no shared state, and the same inputs always
// yield byte-identical output. Errors carry the view name and the unmet
// precondition; no partial SQL is ever returned.
package sqlgen
