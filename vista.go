// Package vista compiles declarative view definitions into BigQuery
// Standard SQL.
//
// A view definition describes column visibility, row-level entitlements, an
// optional public-access fallback and an optional expiration. Compile turns
// one definition plus the share configuration into a single SQL statement
// suitable as the body of a view; handing that statement to an execution
// engine is the job of pkg/applier (or any other collaborator).
//
//	cfg, _ := schema.LoadConfigFile("share.yaml")
//	def, _ := schema.LoadFile("views/orders.yaml")
//	sql, err := vista.Compile(cfg, "sales", def)
package vista

import (
	"github.com/pthm/vista/internal/sqlgen"
	"github.com/pthm/vista/schema"
)

// Compile produces the SQL view body for def, defined in the dataset named
// by datasetID. Compilation is pure and all-or-nothing: on error no partial
// SQL is returned, and identical inputs always yield byte-identical output.
func Compile(cfg *schema.Config, datasetID string, def *schema.Definition) (string, error) {
	return sqlgen.Compile(cfg, datasetID, def)
}

// Substitute replaces the ${projectId}, ${datasetId} and ${tableId} tokens
// in query text, skipping any token whose identifier is empty.
func Substitute(query, projectID, datasetID, tableID string) string {
	return sqlgen.Substitute(query, projectID, datasetID, tableID)
}
