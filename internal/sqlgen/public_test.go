package sqlgen

import (
	"errors"
	"strings"
	"testing"

	"github.com/pthm/vista/schema"
)

func publicDef() *schema.Definition {
	return sourceDef(func(s *schema.Source) {
		s.VisibleColumns = []string{"order_id", "amount"}
		s.QueryFilter = "status = 'complete'"
		s.AccessControl = schema.AccessControl{
			Enabled:     true,
			LabelColumn: "region",
			Labels:      []string{"emea"},
		}
		s.PublicAccess = &schema.PublicAccess{
			QueryFilter: "is_public = true",
			Limit:       1000,
		}
	})
}

func TestBuildPublicPath(t *testing.T) {
	got, err := buildPublicPath(testConfig(), "sales", publicDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"with filteredSourceData as (",
		"\tselect",
		"\t\torder_id,",
		"\t\tamount",
		"\tfrom `acme-data.sales.orders` s",
		"\twhere status = 'complete'",
		"\tand upper(s.region) in ('EMEA','C')",
		"),",
		"recordCount as (",
		"\tselect count(*) as count from filteredSourceData",
		"),",
		"publicData as (",
		"\tselect",
		"\t\torder_id,",
		"\t\tamount",
		"\tfrom `acme-data.sales.orders` s",
		"\twhere is_public = true",
		"\tlimit 1000",
		")",
		"select * from filteredSourceData",
		"union all",
		"select * from publicData",
		"where (select sum(count) from recordCount) = 0",
	}, "\n")

	if got != want {
		t.Errorf("buildPublicPath() =\n%s\nwant:\n%s", got, want)
	}
}

func TestBuildPublicPath_NoLimit(t *testing.T) {
	def := publicDef()
	def.Source.PublicAccess.Limit = 0

	got, err := buildPublicPath(testConfig(), "sales", def)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(got, "limit") {
		t.Errorf("buildPublicPath() should omit the limit clause, got:\n%s", got)
	}
}

func TestBuildPublicPath_BranchColumnParity(t *testing.T) {
	// Both union branches must carry the identical projection; the
	// entitled and public sub-selects reuse the same select fragment.
	got, err := buildPublicPath(testConfig(), "sales", publicDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	projection := "\tselect\n\t\torder_id,\n\t\tamount\n\tfrom `acme-data.sales.orders` s"
	if strings.Count(got, projection) != 2 {
		t.Errorf("expected projection to appear in both branches:\n%s", got)
	}
}

func TestBuildPublicPath_PropagatesEntitlementError(t *testing.T) {
	def := publicDef()
	def.Source.AccessControl.Labels = nil

	_, err := buildPublicPath(testConfig(), "hr", def)
	if !errors.Is(err, ErrNoLabels) {
		t.Fatalf("expected ErrNoLabels, got: %v", err)
	}
}
