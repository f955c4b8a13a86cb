package filters

import (
	"reflect"
	"strings"
	"testing"

	"enjoypark/models"
)

func sampleAttractions() []models.Attraction {
	return []models.Attraction{
		{ID: 1, Name: "Tornado", Description: "Montagne russe ad alta velocità", Location: "Zona Nord", Category: "adrenalina", Tags: []string{"loop", "velocità"}},
		{ID: 2, Name: "Splash River", Description: "Discesa sul fiume", Location: "Zona Acqua", Category: "acqua", Tags: []string{"rafting"}},
		{ID: 3, Name: "Giostra Incantata", Description: "Per i più piccoli", Location: "Zona Famiglia", Category: "famiglia"},
	}
}

func names(items []models.Attraction) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Name)
	}
	return out
}

func TestApplyQueryMatchesAnyField(t *testing.T) {
	items := sampleAttractions()

	cases := []struct {
		query string
		want  []string
	}{
		{"torn", []string{"Tornado"}},           // name, case-insensitive prefix
		{"TORNADO", []string{"Tornado"}},        // name, full uppercase
		{"fiume", []string{"Splash River"}},     // description
		{"zona nord", []string{"Tornado"}},      // location
		{"rafting", []string{"Splash River"}},   // tag
		{"zona", []string{"Tornado", "Splash River", "Giostra Incantata"}},
		{"niente-del-genere", []string{}},
	}

	for _, tc := range cases {
		got := Apply(items, Query{Query: tc.query, Category: CategoryAll})
		if !reflect.DeepEqual(names(got), tc.want) {
			t.Errorf("query %q: got %v, want %v", tc.query, names(got), tc.want)
		}
		// every survivor must really match somewhere
		for _, a := range got {
			if !fieldMatches(a, tc.query) {
				t.Errorf("query %q: %s passed without a matching field", tc.query, a.Name)
			}
		}
	}
}

func fieldMatches(a models.Attraction, query string) bool {
	needle := strings.ToLower(query)
	for _, f := range a.SearchFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func TestApplyCategoryAllIsNoFilter(t *testing.T) {
	items := sampleAttractions()
	got := Apply(items, Query{Category: CategoryAll})
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("category all changed the list: %v", names(got))
	}
	// empty category behaves like the sentinel
	got = Apply(items, Query{})
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("empty category changed the list: %v", names(got))
	}
}

func TestApplyCategoryEquality(t *testing.T) {
	items := sampleAttractions()

	got := Apply(items, Query{Category: "acqua"})
	if len(got) != 1 || got[0].Name != "Splash River" {
		t.Fatalf("category acqua: got %v", names(got))
	}

	// query and category combine with AND
	got = Apply(items, Query{Query: "torn", Category: "acqua"})
	if len(got) != 0 {
		t.Fatalf("torn+acqua should be empty, got %v", names(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	items := sampleAttractions()
	q := Query{Query: "zona", Category: "adrenalina"}

	once := Apply(items, q)
	twice := Apply(once, q)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second pass changed the result: %v vs %v", names(once), names(twice))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	items := sampleAttractions()
	got := Apply(items, Query{Query: "zona"})
	want := []string{"Tornado", "Splash River", "Giostra Incantata"}
	if !reflect.DeepEqual(names(got), want) {
		t.Fatalf("order changed: %v", names(got))
	}
}

// End-to-end scenario from the browse views: one match on a short query,
// empty result for a category nothing belongs to.
func TestApplyBrowseScenario(t *testing.T) {
	attractions := []models.Attraction{
		{ID: 1, Name: "Tornado", Category: "adrenalina", WaitTime: 45},
	}

	got := Apply(attractions, Query{Query: "torn", Category: CategoryAll})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected the single Tornado hit, got %v", got)
	}

	got = Apply(attractions, Query{Query: "", Category: "acqua"})
	if len(got) != 0 {
		t.Fatalf("expected no acqua attractions, got %v", got)
	}
}
