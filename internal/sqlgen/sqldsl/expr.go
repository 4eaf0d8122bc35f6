package sqldsl

import (
	"fmt"
	"strings"
)

// Expr is the interface that all SQL expression types implement.
type Expr interface {
	SQL() string
}

// Col represents a column reference, optionally qualified by a table alias
// (e.g. s.labels).
type Col struct {
	Table  string
	Column string
}

// SQL renders the column reference.
func (c Col) SQL() string {
	if c.Table == "" {
		return c.Column
	}
	return c.Table + "." + c.Column
}

// Lit represents a literal string value (auto-quoted with single quotes).
type Lit string

// SQL renders the literal with single quotes.
func (l Lit) SQL() string {
	// Escape single quotes by doubling them
	escaped := strings.ReplaceAll(string(l), "'", "''")
	return "'" + escaped + "'"
}

// Raw is an escape hatch for arbitrary SQL text.
type Raw string

// SQL renders the raw SQL as-is.
func (r Raw) SQL() string {
	return string(r)
}

// Int represents an integer literal.
type Int int64

// SQL renders the integer.
func (i Int) SQL() string {
	return fmt.Sprintf("%d", i)
}

// Func represents a SQL function call.
type Func struct {
	Name string
	Args []Expr
}

// SQL renders the function call.
func (f Func) SQL() string {
	args := make([]string, len(f.Args))
	for i, arg := range f.Args {
		args[i] = arg.SQL()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

// Lower wraps an expression in lower().
func Lower(e Expr) Func {
	return Func{Name: "lower", Args: []Expr{e}}
}

// Upper wraps an expression in upper().
func Upper(e Expr) Func {
	return Func{Name: "upper", Args: []Expr{e}}
}

// Eq represents an equality comparison. The view compiler emits comparisons
// without surrounding spaces, matching the entitlement fragment contract.
type Eq struct {
	Left  Expr
	Right Expr
}

// SQL renders the comparison.
func (e Eq) SQL() string {
	return e.Left.SQL() + "=" + e.Right.SQL()
}

// In represents an IN list over string values. Values are rendered in input
// order; callers are responsible for ordering and case normalization.
type In struct {
	Expr   Expr
	Values []string
}

// SQL renders the IN predicate. An empty value list renders false so a
// malformed predicate can never widen visibility.
func (i In) SQL() string {
	if len(i.Values) == 0 {
		return "false"
	}
	quoted := make([]string, len(i.Values))
	for n, v := range i.Values {
		quoted[n] = Lit(v).SQL()
	}
	return i.Expr.SQL() + " in (" + strings.Join(quoted, ",") + ")"
}

// UnnestSplit renders BigQuery's idiom for expanding a delimited label
// column into rows: unnest(split(<col>, "<delim>")) as <alias>.
type UnnestSplit struct {
	Source    Expr
	Delimiter string
	Alias     string
}

// SQL renders the unnest expression.
func (u UnnestSplit) SQL() string {
	return `unnest(split(` + u.Source.SQL() + `, "` + u.Delimiter + `")) as ` + u.Alias
}

// Exists wraps a rendered subquery in exists (...), indenting the body one
// level.
type Exists struct {
	Query SQLer
}

// SQL renders the exists predicate.
func (e Exists) SQL() string {
	return "exists (\n" + Indent(e.Query.SQL(), "\t", 1) + "\n)"
}
