package sqlgen

import (
	"strings"

	"github.com/pthm/vista/internal/sqlgen/sqldsl"
	"github.com/pthm/vista/schema"
)

// buildSelect renders the column projection for a view, optionally with the
// from clause. Column policy, in priority order: explicit allow-list, then
// explicit deny-list via except, then star.
//
// The backing table is always aliased s; every other fragment relies on that
// alias for column references. The public-access path reuses this fragment
// verbatim for both union branches so their column shapes stay identical.
func buildSelect(cfg *schema.Config, def *schema.Definition, includeFrom bool) string {
	src := def.Source

	var sb strings.Builder
	switch {
	case len(src.VisibleColumns) > 0:
		sb.WriteString("select\n")
		cols := make([]string, len(src.VisibleColumns))
		for i, col := range src.VisibleColumns {
			cols[i] = "\t" + col
		}
		sb.WriteString(strings.Join(cols, ",\n"))
	case len(src.HiddenColumns) > 0:
		sb.WriteString("select * except (")
		sb.WriteString(strings.Join(src.HiddenColumns, ", "))
		sb.WriteString(")")
	default:
		sb.WriteString("select *")
	}

	if includeFrom {
		sb.WriteString("\nfrom ")
		sb.WriteString(sourceTable(cfg, src).SQL())
	}
	return sb.String()
}

// sourceTable qualifies the backing table, falling back to the share-wide
// project when the source does not name one.
func sourceTable(cfg *schema.Config, src *schema.Source) sqldsl.TableRef {
	project := src.ProjectID
	if project == "" {
		project = cfg.ProjectID
	}
	return sqldsl.TableAs(project, src.DatasetID, src.TableID, "s")
}
