// Package sqldsl provides a small SQL DSL for generating vista view bodies.
// It models the handful of BigQuery Standard SQL shapes the view compiler
// needs (backtick-qualified table references, lower/upper matching,
// split/unnest label expansion, CTE chains) rather than generic SQL syntax.
//
// All rendering is deterministic: the same inputs always produce the same
// bytes. View bodies are nested by re-indenting rendered fragments with
// Indent, which also drops blank lines so nesting depth stays stable no
// matter how a fragment was composed.
package sqldsl
