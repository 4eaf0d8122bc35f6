package sqlgen

import (
	"github.com/pthm/vista/internal/sqlgen/sqldsl"
	"github.com/pthm/vista/schema"
)

// buildPublicPath renders the public-access fallback composition: a caller
// always sees their entitled rows, and sees the public subset only when
// their entitled set is empty. Public access is a fallback, never an
// addition, so entitled callers never gain rows merely because public data
// exists.
//
// The record count is materialized once in its own CTE; summing it makes
// the zero check robust when filteredSourceData produces no rows.
func buildPublicPath(cfg *schema.Config, datasetID string, def *schema.Definition) (string, error) {
	sel := buildSelect(cfg, def, true)

	where, err := buildWhere(cfg, datasetID, def)
	if err != nil {
		return "", err
	}
	filtered := sel
	if where != "" {
		filtered += "\n" + where
	}

	pub := def.Source.PublicAccess
	public := sel +
		"\nwhere " + pub.QueryFilter +
		sqldsl.Optf(pub.Limit > 0, "\nlimit %d", pub.Limit)

	stmt := sqldsl.WithCTE{
		CTEs: []sqldsl.CTEDef{
			{Name: "filteredSourceData", Query: sqldsl.Raw(filtered)},
			{Name: "recordCount", Query: sqldsl.Raw("select count(*) as count from filteredSourceData")},
			{Name: "publicData", Query: sqldsl.Raw(public)},
		},
		Query: sqldsl.Raw(sqldsl.Sqlf(`
			select * from filteredSourceData
			union all
			select * from publicData
			where (select sum(count) from recordCount) = 0`)),
	}
	return stmt.SQL(), nil
}
