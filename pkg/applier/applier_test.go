package applier_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	vista "github.com/pthm/vista"
	"github.com/pthm/vista/pkg/applier"
	"github.com/pthm/vista/schema"
)

func testConfig() *schema.Config {
	return &schema.Config{ProjectID: "acme-data"}
}

func testDef() *schema.Definition {
	return &schema.Definition{
		Name:   "orders",
		Source: &schema.Source{DatasetID: "sales", TableID: "orders_raw"},
	}
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	want := "create or replace view `acme-data.sales.orders` as\n" +
		"select *\n" +
		"from `acme-data.sales.orders_raw` s"
	mock.ExpectExec(regexp.QuoteMeta(want)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	a := applier.New(db, testConfig(), nil)
	res, err := a.Apply(context.Background(), "sales", testDef())
	require.NoError(t, err)
	require.Equal(t, "orders", res.View)
	require.Equal(t, "sales", res.Dataset)
	require.Equal(t, want, res.Statement)
	require.NotEmpty(t, res.RunID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_CompileFailureSkipsEngine(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	def := testDef()
	def.Source.AccessControl = schema.AccessControl{
		Enabled:     true,
		LabelColumn: "region",
	}

	a := applier.New(db, testConfig(), nil)
	_, err = a.Apply(context.Background(), "sales", def)
	require.True(t, vista.IsNoLabelsErr(err))

	// Nothing reached the execution engine.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_EngineError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	engineErr := errors.New("quota exceeded")
	mock.ExpectExec("create or replace view").WillReturnError(engineErr)

	a := applier.New(db, testConfig(), nil)
	_, err = a.Apply(context.Background(), "sales", testDef())
	require.ErrorIs(t, err, engineErr)
	require.Contains(t, err.Error(), "sales.orders")
}

func TestApplyAll_StopsAtFirstFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("create or replace view").
		WillReturnResult(sqlmock.NewResult(0, 0))

	good := testDef()
	bad := testDef()
	bad.Name = "restricted"
	bad.Source = &schema.Source{
		DatasetID: "sales",
		TableID:   "orders_raw",
		AccessControl: schema.AccessControl{
			Enabled:     true,
			LabelColumn: "region",
		},
	}

	a := applier.New(db, testConfig(), nil)
	results, err := a.ApplyAll(context.Background(), "sales", []*schema.Definition{good, bad})
	require.Error(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "orders", results[0].View)
	require.NoError(t, mock.ExpectationsWereMet())
}
