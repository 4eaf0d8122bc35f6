package sqldsl

import "strings"

// CTEDef represents a single named subquery definition inside a with chain.
type CTEDef struct {
	Name  string // CTE name (e.g. "filteredSourceData")
	Query SQLer  // The CTE query body
}

// SQL renders the CTE definition as "name as (body)" with the body indented
// one level.
func (c CTEDef) SQL() string {
	var sb strings.Builder
	sb.WriteString(c.Name)
	sb.WriteString(" as (\n")
	sb.WriteString(Indent(c.Query.SQL(), "\t", 1))
	sb.WriteString("\n)")
	return sb.String()
}

// WithCTE represents a with clause wrapping a final query.
//
// Example:
//
//	WithCTE{
//	    CTEs:  []CTEDef{{Name: "filteredSourceData", Query: body}},
//	    Query: finalSelect,
//	}
//
// Renders:
//
//	with filteredSourceData as (
//		<body>
//	)
//	<final query>
type WithCTE struct {
	CTEs  []CTEDef // One or more CTE definitions
	Query SQLer    // The final select that uses the CTEs
}

// SQL renders the complete with chain and final query.
func (w WithCTE) SQL() string {
	if len(w.CTEs) == 0 {
		return w.Query.SQL()
	}

	parts := make([]string, len(w.CTEs))
	for i, cte := range w.CTEs {
		parts[i] = cte.SQL()
	}

	var sb strings.Builder
	sb.WriteString("with ")
	sb.WriteString(strings.Join(parts, ",\n"))
	sb.WriteString("\n")
	sb.WriteString(w.Query.SQL())
	return sb.String()
}
