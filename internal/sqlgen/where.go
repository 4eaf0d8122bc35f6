package sqlgen

import (
	"strings"

	"github.com/pthm/vista/schema"
)

// buildWhere merges the optional free-form filter with at most one
// entitlement predicate. Returns an empty string when the view is
// unconstrained; callers must then attach no where clause at all.
func buildWhere(cfg *schema.Config, datasetID string, def *schema.Definition) (string, error) {
	src := def.Source

	var sb strings.Builder
	hasWhere := false
	if strings.TrimSpace(src.QueryFilter) != "" {
		sb.WriteString("where ")
		sb.WriteString(src.QueryFilter)
		hasWhere = true
	}

	if src.AccessControl.Enabled {
		fragment, err := strategyFor(cfg, datasetID, def).Fragment()
		if err != nil {
			return "", err
		}
		if fragment != "" {
			if hasWhere {
				sb.WriteString("\nand ")
			} else {
				sb.WriteString("where ")
			}
			sb.WriteString(fragment)
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
