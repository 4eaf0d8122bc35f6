package vista

import (
	"errors"

	"github.com/pthm/vista/internal/sqlgen"
	"github.com/pthm/vista/schema"
)

// Sentinel errors for common failure modes during compilation. These
// indicate configuration problems, not transient faults: a failed compile
// is never retryable, the input must change.
//
// Use the Is*Err helper functions to check for specific errors and give
// users an actionable message.
var (
	// ErrNoLabels is returned when local-scoped access control is enabled
	// but no usable label survives the union of view and dataset grants.
	// A view cannot be compiled without at least one granted label.
	ErrNoLabels = sqlgen.ErrNoLabels

	// ErrEntitlementConfig is returned when dataset-scoped access control
	// is enabled but the share configuration does not locate the
	// entitlement mapping view.
	ErrEntitlementConfig = sqlgen.ErrEntitlementConfig

	// ErrInvalidDefinition is returned when a definition fails structural
	// validation before compilation is attempted.
	ErrInvalidDefinition = schema.ErrInvalidDefinition
)

// CompileError names the view that failed and the unmet precondition.
type CompileError = sqlgen.CompileError

// IsNoLabelsErr returns true if err is or wraps ErrNoLabels.
func IsNoLabelsErr(err error) bool {
	return errors.Is(err, ErrNoLabels)
}

// IsEntitlementConfigErr returns true if err is or wraps ErrEntitlementConfig.
func IsEntitlementConfigErr(err error) bool {
	return errors.Is(err, ErrEntitlementConfig)
}

// IsInvalidDefinitionErr returns true if err is or wraps ErrInvalidDefinition.
func IsInvalidDefinitionErr(err error) bool {
	return errors.Is(err, ErrInvalidDefinition)
}
