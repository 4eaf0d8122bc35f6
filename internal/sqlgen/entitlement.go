package sqlgen

import (
	"strings"

	"github.com/pthm/vista/internal/sqlgen/sqldsl"
	"github.com/pthm/vista/schema"
)

// flattenedAlias is the row alias for a delimiter-split label column.
const flattenedAlias = "flattenedLabel"

// entitlementStrategy produces the row-visibility predicate for a view.
// An empty fragment with a nil error means no predicate applies.
type entitlementStrategy interface {
	Fragment() (string, error)
}

// strategyFor selects the entitlement strategy for an access-controlled
// source. The two strategies are mutually exclusive: DatasetEnabled picks
// the dataset-scoped lookup, otherwise the local label allow-list applies.
func strategyFor(cfg *schema.Config, datasetID string, def *schema.Definition) entitlementStrategy {
	if def.Source.AccessControl.DatasetEnabled {
		return &datasetScoped{cfg: cfg, datasetID: datasetID, def: def}
	}
	return &localScoped{cfg: cfg, datasetID: datasetID, def: def}
}

// datasetScoped delegates row visibility to the shared entitlement mapping
// view, keyed by the fully qualified view name and the row's label. The
// compiler never evaluates membership itself.
type datasetScoped struct {
	cfg       *schema.Config
	datasetID string
	def       *schema.Definition
}

func (d *datasetScoped) Fragment() (string, error) {
	ac := d.def.Source.AccessControl
	if ac.LabelColumn == "" {
		return "", nil
	}
	if d.cfg.AccessControl.DatasetID == "" || d.cfg.AccessControl.ViewID == "" {
		// An enabled but unlocated mapping view must not degrade to an
		// unfiltered statement.
		return "", ErrEntitlementConfig
	}

	entView := sqldsl.TableAs(d.cfg.ProjectID, d.cfg.AccessControl.DatasetID, d.cfg.AccessControl.ViewID, "e")
	viewKey := sqldsl.Eq{
		Left:  sqldsl.Lower(sqldsl.Col{Table: "e", Column: "viewName"}),
		Right: sqldsl.Lit(strings.ToLower(d.datasetID + "." + d.def.Name)),
	}

	var inner string
	if ac.LabelColumnDelimiter != "" {
		labelMatch := sqldsl.Eq{
			Left:  sqldsl.Lower(sqldsl.Col{Column: flattenedAlias}),
			Right: sqldsl.Lower(sqldsl.Col{Table: "e", Column: "accessControlLabel"}),
		}
		split := sqldsl.UnnestSplit{
			Source:    sqldsl.Col{Table: "s", Column: ac.LabelColumn},
			Delimiter: ac.LabelColumnDelimiter,
			Alias:     flattenedAlias,
		}
		inner = "select 1 from " + split.SQL() +
			"\njoin " + entView.SQL() + " on " + labelMatch.SQL() +
			"\nwhere " + viewKey.SQL()
	} else {
		labelMatch := sqldsl.Eq{
			Left:  sqldsl.Lower(sqldsl.Col{Table: "e", Column: "accessControlLabel"}),
			Right: sqldsl.Lower(sqldsl.Col{Table: "s", Column: ac.LabelColumn}),
		}
		inner = "select 1 from " + entView.SQL() +
			"\nwhere " + viewKey.SQL() +
			"\nand " + labelMatch.SQL()
	}

	return sqldsl.Exists{Query: sqldsl.Raw(inner)}.SQL(), nil
}

// localScoped expresses entitlements directly: the union of the view's
// granted labels and the dataset's grants, compared case-insensitively
// against the label column.
type localScoped struct {
	cfg       *schema.Config
	datasetID string
	def       *schema.Definition
}

func (l *localScoped) Fragment() (string, error) {
	ac := l.def.Source.AccessControl
	if ac.LabelColumn == "" {
		return "", nil
	}

	labels := upperLabels(ac.Labels, l.cfg.DatasetLabels(l.datasetID))
	if len(labels) == 0 {
		return "", ErrNoLabels
	}

	if ac.LabelColumnDelimiter != "" {
		split := sqldsl.UnnestSplit{
			Source:    sqldsl.Col{Table: "s", Column: ac.LabelColumn},
			Delimiter: ac.LabelColumnDelimiter,
			Alias:     flattenedAlias,
		}
		inList := sqldsl.In{Expr: sqldsl.Upper(sqldsl.Col{Column: flattenedAlias}), Values: labels}
		inner := "select 1 from " + split.SQL() + "\nwhere " + inList.SQL()
		return sqldsl.Exists{Query: sqldsl.Raw(inner)}.SQL(), nil
	}

	inList := sqldsl.In{Expr: sqldsl.Upper(sqldsl.Col{Table: "s", Column: ac.LabelColumn}), Values: labels}
	return inList.SQL(), nil
}

// upperLabels unions the label slices in order, drops empty values, and
// deduplicates case-insensitively keeping first occurrence, then uppercases
// the survivors. The result order is the dedup order, so output is stable.
func upperLabels(groups ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, group := range groups {
		for _, label := range group {
			if label == "" {
				continue
			}
			upper := strings.ToUpper(label)
			if seen[upper] {
				continue
			}
			seen[upper] = true
			out = append(out, upper)
		}
	}
	return out
}
