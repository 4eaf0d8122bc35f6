package sqlgen

import (
	"testing"

	"github.com/pthm/vista/schema"
)

func testConfig() *schema.Config {
	return &schema.Config{
		ProjectID: "acme-data",
		AccessControl: schema.ConfigAccessControl{
			DatasetID: "entitlements",
			ViewID:    "grants",
		},
		Datasets: []schema.Dataset{
			{Name: "sales", AccessControlLabels: []string{"c"}},
		},
	}
}

func sourceDef(mutate func(*schema.Source)) *schema.Definition {
	src := &schema.Source{DatasetID: "sales", TableID: "orders"}
	if mutate != nil {
		mutate(src)
	}
	return &schema.Definition{Name: "orders", Source: src}
}

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*schema.Source)
		includeFrom bool
		expect      string
	}{
		{
			name:   "no column policy is star",
			expect: "select *",
		},
		{
			name: "visible columns one per line in input order",
			mutate: func(s *schema.Source) {
				s.VisibleColumns = []string{"order_id", "amount", "region"}
			},
			expect: "select\n\torder_id,\n\tamount,\n\tregion",
		},
		{
			name: "hidden columns via except",
			mutate: func(s *schema.Source) {
				s.HiddenColumns = []string{"ssn", "dob"}
			},
			expect: "select * except (ssn, dob)",
		},
		{
			name:        "from clause aliases the backing table s",
			includeFrom: true,
			expect:      "select *\nfrom `acme-data.sales.orders` s",
		},
		{
			name: "source project overrides share project",
			mutate: func(s *schema.Source) {
				s.ProjectID = "partner-data"
			},
			includeFrom: true,
			expect:      "select *\nfrom `partner-data.sales.orders` s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSelect(testConfig(), sourceDef(tt.mutate), tt.includeFrom)
			if got != tt.expect {
				t.Errorf("buildSelect() =\n%q\nwant:\n%q", got, tt.expect)
			}
		})
	}
}

func TestBuildSelect_VisibleColumnCount(t *testing.T) {
	cols := []string{"a", "b", "c", "d"}
	def := sourceDef(func(s *schema.Source) { s.VisibleColumns = cols })
	got := buildSelect(testConfig(), def, false)

	want := "select\n\ta,\n\tb,\n\tc,\n\td"
	if got != want {
		t.Errorf("buildSelect() = %q, want %q", got, want)
	}
}
