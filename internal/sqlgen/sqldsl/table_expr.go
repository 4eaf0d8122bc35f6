package sqldsl

// TableRef is a backtick-quoted, fully qualified BigQuery table reference
// with an optional alias (e.g. `proj.sales.orders` s).
type TableRef struct {
	Project string
	Dataset string
	Table   string
	Alias   string
}

// SQL renders the table reference.
func (t TableRef) SQL() string {
	ref := "`" + t.Project + "." + t.Dataset + "." + t.Table + "`"
	if t.Alias != "" {
		return ref + " " + t.Alias
	}
	return ref
}

// TableAs creates a qualified table reference with an alias.
func TableAs(project, dataset, table, alias string) TableRef {
	return TableRef{Project: project, Dataset: dataset, Table: table, Alias: alias}
}
