package sqlgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/pthm/vista/schema"
)

func TestCompile_SinglePath(t *testing.T) {
	def := sourceDef(func(s *schema.Source) {
		s.QueryFilter = "status = 'complete'"
	})

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "select *\nfrom `acme-data.sales.orders` s\nwhere status = 'complete'"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant:\n%q", got, want)
	}
}

func TestCompile_UnconstrainedHasNoWhere(t *testing.T) {
	got, err := Compile(testConfig(), "sales", sourceDef(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "select *\nfrom `acme-data.sales.orders` s" {
		t.Errorf("Compile() = %q", got)
	}
}

func TestCompile_CustomSubstitutesVariables(t *testing.T) {
	def := &schema.Definition{
		Name: "events",
		Custom: &schema.CustomSQL{
			Query: "select * from `${projectId}.${datasetId}.${tableId}_raw`",
		},
	}

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "select * from `acme-data.sales.events_raw`" {
		t.Errorf("Compile() = %q", got)
	}
}

func TestCompile_CustomIgnoresPolicy(t *testing.T) {
	// A custom override is the escape hatch: its query is trusted verbatim
	// and no visibility policy is applied.
	def := &schema.Definition{
		Name:   "events",
		Custom: &schema.CustomSQL{Query: "select 1"},
	}

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "select 1" {
		t.Errorf("Compile() = %q", got)
	}
}

func TestCompile_ExpirationWrapper(t *testing.T) {
	def := sourceDef(nil)
	def.Expiration = &schema.Expiration{Time: 1700000000000}

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SELECT * FROM (\n" +
		"\tselect *\n" +
		"\tfrom `acme-data.sales.orders` s\n" +
		")\n" +
		"WHERE TIMESTAMP_MILLIS(1700000000000) > CURRENT_TIMESTAMP()"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant:\n%q", got, want)
	}
}

func TestCompile_ExpirationByDeleteIsUnwrapped(t *testing.T) {
	def := sourceDef(nil)
	def.Expiration = &schema.Expiration{Time: 1700000000000, Delete: true}

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "select *\nfrom `acme-data.sales.orders` s" {
		t.Errorf("Compile() = %q, want unwrapped body", got)
	}
}

func TestCompile_ExpirationWrapsCustom(t *testing.T) {
	def := &schema.Definition{
		Name:       "events",
		Custom:     &schema.CustomSQL{Query: "select 1"},
		Expiration: &schema.Expiration{Time: 42},
	}

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "SELECT * FROM (\n\tselect 1\n)\nWHERE TIMESTAMP_MILLIS(42) > CURRENT_TIMESTAMP()"
	if got != want {
		t.Errorf("Compile() = %q", got)
	}
}

func TestCompile_Trimmed(t *testing.T) {
	def := &schema.Definition{
		Name:   "events",
		Custom: &schema.CustomSQL{Query: "\n\nselect 1\n\n"},
	}

	got, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "select 1" {
		t.Errorf("Compile() = %q, want trimmed output", got)
	}
}

func TestCompile_Idempotent(t *testing.T) {
	def := publicDef()
	def.Expiration = &schema.Expiration{Time: 1700000000000}

	first, err := Compile(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := Compile(testConfig(), "sales", def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != first {
			t.Fatalf("Compile() not byte-identical across runs:\n%q\nvs\n%q", got, first)
		}
	}
}

func TestCompile_ZeroLabelsNamesView(t *testing.T) {
	def := sourceDef(func(s *schema.Source) {
		s.AccessControl = schema.AccessControl{Enabled: true, LabelColumn: "region"}
	})

	sql, err := Compile(testConfig(), "hr", def)
	if err == nil {
		t.Fatal("expected error for zero usable labels")
	}
	if sql != "" {
		t.Errorf("no partial output on error, got %q", sql)
	}
	if !errors.Is(err, ErrNoLabels) {
		t.Errorf("expected ErrNoLabels, got: %v", err)
	}
	var cerr *CompileError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompileError, got: %T", err)
	}
	if cerr.View != "orders" {
		t.Errorf("CompileError.View = %q, want %q", cerr.View, "orders")
	}
	if !strings.Contains(err.Error(), "orders") {
		t.Errorf("error should name the view: %s", err)
	}
}

func TestCompile_InvalidDefinition(t *testing.T) {
	def := &schema.Definition{Name: "orders"}

	_, err := Compile(testConfig(), "sales", def)
	if !errors.Is(err, schema.ErrInvalidDefinition) {
		t.Fatalf("expected ErrInvalidDefinition, got: %v", err)
	}
}
