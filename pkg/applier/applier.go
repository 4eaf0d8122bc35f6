// Package applier hands compiled view bodies to an execution engine.
//
// The applier is the boundary between the pure compiler and the engine that
// persists views. Each Apply call is all-or-nothing for one view: the
// definition is compiled, then a single create-or-replace statement is
// executed. Compile failures are configuration errors and are never
// retryable; execution failures are the engine's to classify.
package applier

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pthm/vista/internal/sqlgen"
	"github.com/pthm/vista/internal/sqlgen/sqldsl"
	"github.com/pthm/vista/schema"
)

// Applier compiles definitions and defines the resulting views through an
// Execer.
type Applier struct {
	exec   Execer
	cfg    *schema.Config
	logger *slog.Logger
}

// New creates an Applier. A nil logger disables logging.
func New(exec Execer, cfg *schema.Config, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Applier{exec: exec, cfg: cfg, logger: logger}
}

// Result records one applied view.
type Result struct {
	// RunID uniquely identifies this apply for correlation in logs.
	RunID uuid.UUID

	// Dataset and View name the object that was defined.
	Dataset string
	View    string

	// Statement is the full statement that was executed.
	Statement string
}

// Apply compiles def and executes a create-or-replace for the view in the
// named dataset.
func (a *Applier) Apply(ctx context.Context, datasetID string, def *schema.Definition) (*Result, error) {
	body, err := sqlgen.Compile(a.cfg, datasetID, def)
	if err != nil {
		return nil, err
	}

	view := sqldsl.TableRef{Project: a.cfg.ProjectID, Dataset: datasetID, Table: def.Name}
	stmt := "create or replace view " + view.SQL() + " as\n" + body

	runID := uuid.New()
	a.logger.Info("applying view",
		"run_id", runID.String(),
		"dataset", datasetID,
		"view", def.Name,
	)

	if _, err := a.exec.ExecContext(ctx, stmt); err != nil {
		a.logger.Error("apply failed",
			"run_id", runID.String(),
			"dataset", datasetID,
			"view", def.Name,
			"error", err,
		)
		return nil, fmt.Errorf("defining view %s.%s: %w", datasetID, def.Name, err)
	}

	return &Result{
		RunID:     runID,
		Dataset:   datasetID,
		View:      def.Name,
		Statement: stmt,
	}, nil
}

// ApplyAll applies each definition in order, stopping at the first failure.
// Already-applied views are not rolled back; create-or-replace makes a
// rerun after a fix converge to the same state.
func (a *Applier) ApplyAll(ctx context.Context, datasetID string, defs []*schema.Definition) ([]*Result, error) {
	results := make([]*Result, 0, len(defs))
	for _, def := range defs {
		res, err := a.Apply(ctx, datasetID, def)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
