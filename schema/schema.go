// Package schema provides the view definition and share configuration types
// for vista.
//
// This package contains the data model consumed by the SQL compiler. A view
// is defined declaratively: which columns are visible, which rows the caller
// is entitled to see, whether unentitled callers get a public fallback, and
// when the view expires. The compiler (internal/sqlgen, exposed through
// pkg/compiler) turns one Definition plus one Config into a single SQL
// statement.
//
// # Key Types
//
// Definition is one view. It carries either a Custom raw-SQL override or a
// Source descriptor, never both. The Source descriptor names the backing
// table and holds the column, filter and access-control policy.
//
// Config is the share-wide configuration: the billing project, the shared
// entitlement mapping view used by the dataset-scoped strategy, and the
// per-dataset label grants used by the local strategy.
//
// # Invariants
//
// Validate enforces the structural invariants before compilation:
//
//   - exactly one of Custom and Source is set
//   - VisibleColumns and HiddenColumns are mutually exclusive
//   - a PublicAccess policy requires a query filter
//
// Policy-level preconditions that depend on the Config (for example the
// local strategy requiring at least one granted label) are checked by the
// compiler, which has both documents in hand.
//
// Definitions are plain documents. Load and LoadConfig accept YAML or JSON;
// the field names below use the JSON spelling.
package schema

import "strings"

// Definition is a single declaratively defined view.
// Exactly one of Custom and Source must be populated.
type Definition struct {
	// Name is the view name, used both as the object name handed to the
	// execution engine and as part of the entitlement lookup key.
	Name string `json:"name"`

	// Custom is a raw-SQL override. When set, the query is used verbatim
	// (after variable substitution) and no other policy applies.
	Custom *CustomSQL `json:"custom,omitempty"`

	// Source describes the backing table and its visibility policy.
	Source *Source `json:"source,omitempty"`

	// Expiration optionally bounds the lifetime of the view.
	Expiration *Expiration `json:"expiration,omitempty"`
}

// CustomSQL is the escape hatch: a trusted, verbatim view body.
type CustomSQL struct {
	Query string `json:"query"`
}

// Source fully qualifies the backing table and carries the visibility policy.
type Source struct {
	ProjectID string `json:"projectId,omitempty"`
	DatasetID string `json:"datasetId"`
	TableID   string `json:"tableId"`

	// VisibleColumns is an explicit allow-list, rendered in order.
	// Mutually exclusive with HiddenColumns.
	VisibleColumns []string `json:"visibleColumns,omitempty"`

	// HiddenColumns is an explicit deny-list, rendered via EXCEPT.
	HiddenColumns []string `json:"hiddenColumns,omitempty"`

	// QueryFilter is a raw boolean SQL fragment restricting rows.
	QueryFilter string `json:"queryFilter,omitempty"`

	AccessControl AccessControl `json:"accessControl,omitempty"`

	// PublicAccess, when set, adds the public fallback path: callers with
	// zero entitled rows see the public subset instead.
	PublicAccess *PublicAccess `json:"publicAccess,omitempty"`
}

// AccessControl selects one of the two row-entitlement strategies.
// DatasetEnabled picks the dataset-scoped strategy (lookup against the
// shared entitlement mapping view); otherwise the local strategy applies
// (label allow-list on the definition and dataset). The two are mutually
// exclusive by construction of the flag.
type AccessControl struct {
	Enabled        bool `json:"enabled,omitempty"`
	DatasetEnabled bool `json:"datasetEnabled,omitempty"`

	// LabelColumn is the backing-table column holding the row's label(s).
	LabelColumn string `json:"labelColumn,omitempty"`

	// LabelColumnDelimiter, when present, switches matching from scalar
	// equality to split/unnest over the delimited label list.
	LabelColumnDelimiter string `json:"labelColumnDelimiter,omitempty"`

	// Labels are the labels granted to this view (local strategy only).
	Labels []string `json:"labels,omitempty"`
}

// PublicAccess identifies the public subset of the backing table.
type PublicAccess struct {
	// QueryFilter is a boolean SQL fragment selecting the public rows.
	QueryFilter string `json:"queryFilter"`

	// Limit optionally caps the number of public rows. Zero means no cap.
	Limit int64 `json:"limit,omitempty"`
}

// Expiration bounds the lifetime of a view.
type Expiration struct {
	// Time is a millisecond epoch after which the view returns no rows.
	Time int64 `json:"time"`

	// Delete indicates expiration is handled by deletion elsewhere; the
	// compiler must not wrap the SQL when set.
	Delete bool `json:"delete,omitempty"`
}

// Config is the share-wide configuration supplied alongside each Definition.
type Config struct {
	// ProjectID is the project hosting the datasets and, unless a source
	// overrides it, the backing tables.
	ProjectID string `json:"projectId"`

	// AccessControl locates the shared entitlement mapping view used by
	// the dataset-scoped strategy.
	AccessControl ConfigAccessControl `json:"accessControl,omitempty"`

	// Datasets lists the managed datasets with their label grants.
	Datasets []Dataset `json:"datasets,omitempty"`
}

// ConfigAccessControl locates the entitlement mapping view. The view is
// keyed by (viewName, accessControlLabel).
type ConfigAccessControl struct {
	DatasetID string `json:"datasetId,omitempty"`
	ViewID    string `json:"viewId,omitempty"`
}

// Dataset is one managed dataset and the labels granted at dataset level.
// Dataset-level labels are unioned with view-level labels by the local
// entitlement strategy.
type Dataset struct {
	Name                string   `json:"name"`
	AccessControlLabels []string `json:"accessControlLabels,omitempty"`
}

// DatasetLabels returns the label grants for the named dataset.
// The name comparison is case-insensitive. Returns nil when the dataset is
// not listed.
func (c *Config) DatasetLabels(name string) []string {
	for _, d := range c.Datasets {
		if strings.EqualFold(d.Name, name) {
			return d.AccessControlLabels
		}
	}
	return nil
}
