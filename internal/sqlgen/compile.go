package sqlgen

import (
	"fmt"
	"strings"

	"github.com/pthm/vista/internal/sqlgen/sqldsl"
	"github.com/pthm/vista/schema"
)

// Compile produces the SQL view body for one definition.
//
// A custom override is used verbatim after variable substitution; otherwise
// the body is either the plain select-plus-where statement or, when a
// public-access policy is present, the union-based fallback composition.
// The expiration guard wraps the finished body unless expiration is handled
// by deletion elsewhere.
//
// Compilation is all-or-nothing: on error no partial SQL is returned.
func Compile(cfg *schema.Config, datasetID string, def *schema.Definition) (string, error) {
	if err := def.Validate(); err != nil {
		return "", &CompileError{View: def.Name, Err: err}
	}

	if def.Custom != nil {
		// The escape hatch: custom SQL is trusted verbatim, only the
		// identifier tokens are substituted.
		body := Substitute(def.Custom.Query, cfg.ProjectID, datasetID, def.Name)
		return finish(def, body), nil
	}

	var body string
	var err error
	if def.Source.PublicAccess != nil {
		body, err = buildPublicPath(cfg, datasetID, def)
	} else {
		body, err = buildSingle(cfg, datasetID, def)
	}
	if err != nil {
		return "", &CompileError{View: def.Name, Err: err}
	}
	return finish(def, body), nil
}

// buildSingle renders the single-path statement: projection plus the merged
// where clause, when one applies.
func buildSingle(cfg *schema.Config, datasetID string, def *schema.Definition) (string, error) {
	sel := buildSelect(cfg, def, true)
	where, err := buildWhere(cfg, datasetID, def)
	if err != nil {
		return "", err
	}
	if where == "" {
		return sel, nil
	}
	return sel + "\n" + where, nil
}

// finish applies the expiration wrapper and trims the statement. When
// Delete is set an external scheduler removes the view instead, so the
// body is left unwrapped.
func finish(def *schema.Definition, body string) string {
	if exp := def.Expiration; exp != nil && !exp.Delete {
		body = fmt.Sprintf("SELECT * FROM (\n%s\n)\nWHERE TIMESTAMP_MILLIS(%d) > CURRENT_TIMESTAMP()",
			sqldsl.Indent(body, "\t", 1), exp.Time)
	}
	return strings.TrimSpace(body)
}
