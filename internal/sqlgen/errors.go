package sqlgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for compile failures. A failed compile means the
// definition or share configuration must change; retrying with the same
// inputs cannot succeed.
var (
	// ErrNoLabels is returned by the local entitlement strategy when no
	// usable label survives the union of view and dataset grants. A view
	// with zero granted labels would otherwise compile unconstrained.
	ErrNoLabels = errors.New("vista: no usable access control labels")

	// ErrEntitlementConfig is returned when the dataset-scoped strategy is
	// requested but the share configuration does not locate the entitlement
	// mapping view. Silently omitting the predicate would publish every row.
	ErrEntitlementConfig = errors.New("vista: entitlement mapping view not configured")
)

// CompileError names the view that failed and the unmet precondition.
type CompileError struct {
	View string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compiling view %q: %v", e.View, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
