package schema

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition is returned when a view definition fails structural
// validation. The wrapped message names the offending field.
var ErrInvalidDefinition = errors.New("vista: invalid view definition")

// Validate checks the structural invariants of a definition.
// Policy preconditions that need the share Config (label availability,
// entitlement view configuration) are checked at compile time instead.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if d.Custom == nil && d.Source == nil {
		return fmt.Errorf("%w: view %q: one of custom or source is required", ErrInvalidDefinition, d.Name)
	}
	if d.Custom != nil && d.Source != nil {
		return fmt.Errorf("%w: view %q: custom and source are mutually exclusive", ErrInvalidDefinition, d.Name)
	}

	if d.Custom != nil {
		if d.Custom.Query == "" {
			return fmt.Errorf("%w: view %q: custom.query is required", ErrInvalidDefinition, d.Name)
		}
		return nil
	}

	s := d.Source
	if s.DatasetID == "" {
		return fmt.Errorf("%w: view %q: source.datasetId is required", ErrInvalidDefinition, d.Name)
	}
	if s.TableID == "" {
		return fmt.Errorf("%w: view %q: source.tableId is required", ErrInvalidDefinition, d.Name)
	}
	if len(s.VisibleColumns) > 0 && len(s.HiddenColumns) > 0 {
		return fmt.Errorf("%w: view %q: visibleColumns and hiddenColumns are mutually exclusive", ErrInvalidDefinition, d.Name)
	}
	if s.PublicAccess != nil && s.PublicAccess.QueryFilter == "" {
		return fmt.Errorf("%w: view %q: publicAccess.queryFilter is required", ErrInvalidDefinition, d.Name)
	}
	if s.PublicAccess != nil && s.PublicAccess.Limit < 0 {
		return fmt.Errorf("%w: view %q: publicAccess.limit must not be negative", ErrInvalidDefinition, d.Name)
	}
	return nil
}

// Validate checks the share configuration.
func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("%w: projectId is required", ErrInvalidDefinition)
	}
	for _, d := range c.Datasets {
		if d.Name == "" {
			return fmt.Errorf("%w: datasets[].name is required", ErrInvalidDefinition)
		}
	}
	return nil
}
