package plot

import (
	"testing"
	"time"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
)

func sampleListings() []model.Listing {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return []model.Listing{
		{ID: "a", Title: "Corner plot in Wagholi", Location: "Wagholi, Pune", State: "Maharashtra", Price: 400000, Area: "1200 Sq. Ft", PlotType: "Residential", PlotFacing: "East", RoadWidth: "20 ft", CreatedAt: base},
		{ID: "b", Title: "Commercial plot on highway", Location: "Nashik Road, Nashik", State: "Maharashtra", Price: 2200000, Area: "800 Sq. Ft", PlotType: "Commercial", PlotFacing: "North", RoadWidth: "40 ft", CreatedAt: base.Add(24 * time.Hour)},
		{ID: "c", Title: "Farm land near dam", Location: "Mulshi, Pune", State: "Maharashtra", Price: 9000000, Area: "2000 Sq. Ft", PlotType: "Agricultural", PlotFacing: "West", RoadWidth: "12 ft", CreatedAt: base.Add(48 * time.Hour)},
	}
}

func ids(ls []model.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func TestDefaultCriteriaReturnsAllMostRecentFirst(t *testing.T) {
	got := View(sampleListings(), DefaultCriteria())
	want := []string{"c", "b", "a"}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("order = %v, want %v", ids(got), want)
		}
	}
}

func TestPriceRangeInclusive(t *testing.T) {
	c := DefaultCriteria()
	c.PriceMin = 0
	c.PriceMax = 500000
	got := View(sampleListings(), c)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %v, want [a]", ids(got))
	}

	// Exact range [p,p] returns exactly the listings priced p.
	c.PriceMin = 2200000
	c.PriceMax = 2200000
	got = View(sampleListings(), c)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("got %v, want [b]", ids(got))
	}
}

func TestPriceRangeMinGreaterThanMaxIsEmpty(t *testing.T) {
	c := DefaultCriteria()
	c.PriceMin = 500000
	c.PriceMax = 100
	if got := View(sampleListings(), c); len(got) != 0 {
		t.Fatalf("contradictory range should match nothing, got %v", ids(got))
	}
}

func TestSearchMatchesTitleOrLocation(t *testing.T) {
	c := DefaultCriteria()
	c.Search = "wagholi"
	got := View(sampleListings(), c)
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %v, want [a]", ids(got))
	}

	c.Search = "NASHIK"
	got = View(sampleListings(), c)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("case-insensitive location search failed: %v", ids(got))
	}
}

func TestTypeFacingRoadWidthSentinels(t *testing.T) {
	c := DefaultCriteria()
	c.PlotType = "Commercial"
	if got := View(sampleListings(), c); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("type filter: got %v", ids(got))
	}

	c = DefaultCriteria()
	c.Facing = "East"
	if got := View(sampleListings(), c); len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("facing filter: got %v", ids(got))
	}

	c = DefaultCriteria()
	c.RoadWidth = "12 ft"
	if got := View(sampleListings(), c); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("road width filter: got %v", ids(got))
	}
}

func TestLocationTokensAnyMatch(t *testing.T) {
	c := DefaultCriteria()
	c.Locations = []string{"Pune", "Nagpur"}
	got := View(sampleListings(), c)
	if len(got) != 2 {
		t.Fatalf("got %v, want listings a and c", ids(got))
	}
	for _, l := range got {
		if l.ID == "b" {
			t.Fatal("Nashik listing should not match Pune/Nagpur selection")
		}
	}
}

func TestSortByArea(t *testing.T) {
	c := DefaultCriteria()
	c.SortBy = SortArea
	got := View(sampleListings(), c)
	want := []string{"c", "a", "b"} // 2000, 1200, 800
	for i, id := range ids(got) {
		if id != want[i] {
			t.Fatalf("area sort = %v, want %v", ids(got), want)
		}
	}
}

func TestSortByPrice(t *testing.T) {
	c := DefaultCriteria()
	c.SortBy = SortPriceLow
	got := View(sampleListings(), c)
	if ids(got)[0] != "a" || ids(got)[2] != "c" {
		t.Fatalf("price-low sort = %v", ids(got))
	}

	c.SortBy = SortPriceHigh
	got = View(sampleListings(), c)
	if ids(got)[0] != "c" || ids(got)[2] != "a" {
		t.Fatalf("price-high sort = %v", ids(got))
	}
}

func TestSortStabilityOnTies(t *testing.T) {
	base := time.Now()
	in := []model.Listing{
		{ID: "x", Price: 100, CreatedAt: base},
		{ID: "y", Price: 100, CreatedAt: base},
		{ID: "z", Price: 100, CreatedAt: base},
	}
	c := DefaultCriteria()
	c.SortBy = SortPriceLow
	got := View(in, c)
	for i, want := range []string{"x", "y", "z"} {
		if got[i].ID != want {
			t.Fatalf("ties must keep input order, got %v", ids(got))
		}
	}
}

func TestEmptyInputYieldsEmptyResult(t *testing.T) {
	if got := View(nil, DefaultCriteria()); len(got) != 0 {
		t.Fatalf("got %d results from nil input", len(got))
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1200 Sq. Ft", 1200},
		{"800 Sq. Ft", 800},
		{"2.5 Acres", 2.5},
		{"  42 Guntha", 42},
		{"Guntha", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := leadingNumber(tt.in); got != tt.want {
			t.Errorf("leadingNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
