package sqlgen

import "strings"

// Substitute replaces the ${projectId}, ${datasetId} and ${tableId} tokens
// in query text. Each token is replaced only when the corresponding
// identifier is non-empty; a missing identifier leaves its token untouched.
// Substitution is per-token, not all-or-nothing.
func Substitute(query, projectID, datasetID, tableID string) string {
	if projectID != "" {
		query = strings.ReplaceAll(query, "${projectId}", projectID)
	}
	if datasetID != "" {
		query = strings.ReplaceAll(query, "${datasetId}", datasetID)
	}
	if tableID != "" {
		query = strings.ReplaceAll(query, "${tableId}", tableID)
	}
	return query
}
