package plot

import "testing"

func TestApplyIsPure(t *testing.T) {
	d := NewDraft()
	d2, err := Apply(d, FieldChange{Field: "title", Value: "Spacious plot near lake"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if d.Title != "" {
		t.Fatal("Apply mutated its input")
	}
	if d2.Title != "Spacious plot near lake" {
		t.Fatalf("title = %q", d2.Title)
	}
}

func TestApplyCoercions(t *testing.T) {
	d := NewDraft()

	d, _ = Apply(d, FieldChange{Field: "is_negotiable", Value: true})
	if !d.IsNegotiable {
		t.Fatal("bool change not applied")
	}

	// JSON numbers arrive as float64; string fields keep the form-snapshot shape.
	d, _ = Apply(d, FieldChange{Field: "price", Value: float64(450000)})
	if d.Price != "450000" {
		t.Fatalf("price = %q, want \"450000\"", d.Price)
	}

	d, _ = Apply(d, FieldChange{Field: "road_access", Value: "false"})
	if d.RoadAccess {
		t.Fatal("string bool coercion failed")
	}
}

func TestApplyUnknownField(t *testing.T) {
	d := NewDraft()
	if _, err := Apply(d, FieldChange{Field: "no_such_field", Value: "x"}); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDraftDefaults(t *testing.T) {
	d := NewDraft()
	if d.PlotAreaUnit != "Sq. Ft" || !d.RoadAccess || d.AvailabilityStatus != "available" || d.ListingStatus != StatusDraft {
		t.Fatalf("unexpected defaults: %+v", d)
	}
}

func TestToListingDerivesStatusAndArea(t *testing.T) {
	d := NewDraft()
	d.Title = "  Prime corner plot near ring road  "
	d.PlotAreaValue = "1200"
	d.Price = "450000"
	d.PlotLength = "40"
	d.PlotWidth = "30"

	l := d.ToListing("user-1", []string{"u1", "u2"}, StatusPublished)
	if l.Status != "active" || l.ListingStatus != StatusPublished {
		t.Fatalf("published: status=%q listing_status=%q", l.Status, l.ListingStatus)
	}
	if l.Area != "1200 Sq. Ft" {
		t.Fatalf("area = %q", l.Area)
	}
	if l.Price != 450000 || l.PlotAreaValue != 1200 {
		t.Fatalf("numeric parse: price=%v area=%v", l.Price, l.PlotAreaValue)
	}
	if l.Dimensions != "40 x 30" {
		t.Fatalf("dimensions = %q", l.Dimensions)
	}
	if l.Title != "Prime corner plot near ring road" {
		t.Fatalf("title not trimmed: %q", l.Title)
	}
	if l.ImageURL != "u1" {
		t.Fatalf("image_url = %q", l.ImageURL)
	}

	draft := d.ToListing("user-1", nil, StatusDraft)
	if draft.Status != "draft" {
		t.Fatalf("draft status = %q", draft.Status)
	}
}

func TestToListingLenientNumbers(t *testing.T) {
	d := NewDraft()
	d.Price = "not a number"
	d.BookingAmount = ""
	l := d.ToListing("u", nil, StatusDraft)
	if l.Price != 0 || l.BookingAmount != 0 {
		t.Fatalf("lenient parse failed: %v %v", l.Price, l.BookingAmount)
	}
}

func TestFromListingRoundTrip(t *testing.T) {
	d := NewDraft()
	d.SellerType = "Owner"
	d.SellerName = "Priya Karkare"
	d.Title = "Prime corner plot near ring road"
	d.PlotAreaValue = "1200"
	d.Price = "450000"
	d.City = "Pune"
	d.HasElectricity = true

	l := d.ToListing("user-1", []string{"u1"}, StatusDraft)
	back := FromListing(&l)

	if back.SellerName != d.SellerName || back.Title != d.Title || back.City != d.City {
		t.Fatalf("text fields lost: %+v", back)
	}
	if back.PlotAreaValue != "1200" || back.Price != "450000" {
		t.Fatalf("numeric fields lost: area=%q price=%q", back.PlotAreaValue, back.Price)
	}
	if !back.HasElectricity {
		t.Fatal("amenity flag lost")
	}
	if back.ListingStatus != StatusDraft {
		t.Fatalf("lifecycle = %q", back.ListingStatus)
	}
}
