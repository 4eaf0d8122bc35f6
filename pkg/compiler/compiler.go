// Package compiler provides the public API for compiling view definitions
// to SQL.
//
// This is a thin wrapper around internal/sqlgen that exposes only the types
// and functions needed by external consumers. For applying compiled SQL to
// an execution engine, use pkg/applier instead.
package compiler

import (
	"github.com/pthm/vista/internal/sqlgen"
)

// CompileError names the view that failed and the unmet precondition.
type CompileError = sqlgen.CompileError

// Compile produces the SQL view body for one definition.
var Compile = sqlgen.Compile

// Substitute replaces the ${projectId}, ${datasetId} and ${tableId} tokens
// in query text, skipping any token whose identifier is empty.
var Substitute = sqlgen.Substitute
