package plot

import (
	"strings"
	"testing"
)

func validStep1Draft() Draft {
	d := NewDraft()
	d.SellerType = "Owner"
	d.SellerName = "Priya Karkare"
	d.PhonePrimary = "+91 9876543210"
	d.SellerEmail = "priya@example.com"
	return d
}

func TestValidateSellerDetails(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
	}{
		{"valid", func(d *Draft) {}, ""},
		{"missing seller type", func(d *Draft) { d.SellerType = "" }, "seller_type"},
		{"name too short", func(d *Draft) { d.SellerName = "P" }, "seller_name"},
		{"name only whitespace", func(d *Draft) { d.SellerName = "   " }, "seller_name"},
		{"name too long", func(d *Draft) { d.SellerName = strings.Repeat("a", 101) }, "seller_name"},
		{"single devanagari rune too short", func(d *Draft) { d.SellerName = "आ" }, "seller_name"},
		{"hundred devanagari runes pass", func(d *Draft) { d.SellerName = strings.Repeat("आ", 100) }, ""},
		{"grouped phone", func(d *Draft) { d.PhonePrimary = "(020) 2612-3456" }, ""},
		{"bad phone", func(d *Draft) { d.PhonePrimary = "not-a-phone" }, "phone_primary"},
		{"bad email", func(d *Draft) { d.SellerEmail = "nobody@" }, "seller_email"},
		{"email missing at", func(d *Draft) { d.SellerEmail = "nobody.example.com" }, "seller_email"},
		{"secondary phone unconstrained", func(d *Draft) { d.PhoneSecondary = "whatever" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validStep1Draft()
			tt.mutate(&d)
			res := ValidateStep(StepSellerDetails, &d)
			if tt.wantField == "" {
				if !res.OK {
					t.Fatalf("expected pass, got errors %v", res.Errors)
				}
				return
			}
			if res.OK {
				t.Fatalf("expected failure on %s", tt.wantField)
			}
			if _, found := res.Errors[tt.wantField]; !found {
				t.Fatalf("expected error on %s, got %v", tt.wantField, res.Errors)
			}
		})
	}
}

func TestValidateBasicDetails(t *testing.T) {
	base := func() Draft {
		d := NewDraft()
		d.Title = "Prime corner plot near ring road"
		d.PlotType = "Residential"
		d.PlotAreaValue = "1200"
		return d
	}

	tests := []struct {
		name      string
		mutate    func(*Draft)
		wantField string
		wantMsg   string
	}{
		{"valid", func(d *Draft) {}, "", ""},
		{"short title", func(d *Draft) { d.Title = "Too short" }, "title", "Title must be at least 10 characters"},
		{"title runes not bytes", func(d *Draft) { d.Title = strings.Repeat("क", 9) }, "title", "Title must be at least 10 characters"},
		{"devanagari title passes", func(d *Draft) { d.Title = strings.Repeat("क", 12) }, "", ""},
		{"area zero", func(d *Draft) { d.PlotAreaValue = "0" }, "plot_area_value", "Plot area must be a positive number"},
		{"area negative", func(d *Draft) { d.PlotAreaValue = "-5" }, "plot_area_value", "Plot area must be a positive number"},
		{"area not numeric", func(d *Draft) { d.PlotAreaValue = "abc" }, "plot_area_value", "Plot area must be a positive number"},
		{"area empty", func(d *Draft) { d.PlotAreaValue = "" }, "plot_area_value", "Please enter plot area"},
		{"missing unit", func(d *Draft) { d.PlotAreaUnit = "" }, "plot_area_unit", "Please select area unit"},
		{"missing type", func(d *Draft) { d.PlotType = "" }, "plot_type", "Please select plot type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base()
			tt.mutate(&d)
			res := ValidateStep(StepBasicDetails, &d)
			if tt.wantField == "" {
				if !res.OK {
					t.Fatalf("expected pass, got errors %v", res.Errors)
				}
				return
			}
			if res.OK {
				t.Fatalf("expected failure on %s", tt.wantField)
			}
			if got := res.Errors[tt.wantField]; got != tt.wantMsg {
				t.Fatalf("error message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestValidateLocationAndPricing(t *testing.T) {
	d := NewDraft()
	d.State = "Maharashtra"
	d.City = "Pune"
	d.Locality = "Wagholi"
	d.Location = "Wagholi, Pune"
	if res := ValidateStep(StepLocation, &d); !res.OK {
		t.Fatalf("expected location pass, got %v", res.Errors)
	}

	d.City = "पुणे" // rune count, not byte count
	if res := ValidateStep(StepLocation, &d); !res.OK {
		t.Fatalf("expected non-latin city to pass, got %v", res.Errors)
	}

	d.City = " P " // single char after trimming
	res := ValidateStep(StepLocation, &d)
	if res.OK || res.Errors["city"] != "City is required" {
		t.Fatalf("expected city error, got %v", res.Errors)
	}

	d2 := NewDraft()
	res = ValidateStep(StepPricing, &d2)
	if res.OK || res.Errors["price"] != "Price is required" {
		t.Fatalf("expected price required, got %v", res.Errors)
	}
	d2.Price = "0"
	res = ValidateStep(StepPricing, &d2)
	if res.OK || res.Errors["price"] != "Price must be a positive number" {
		t.Fatalf("expected positive-number error, got %v", res.Errors)
	}
	d2.Price = "450000"
	if res = ValidateStep(StepPricing, &d2); !res.OK {
		t.Fatalf("expected pricing pass, got %v", res.Errors)
	}
}

func TestUnvalidatedStepsAlwaysPass(t *testing.T) {
	d := NewDraft() // everything empty
	for _, step := range []Step{StepLegality, StepAmenities, StepMedia, StepAdditional, StepBoost, StepReview} {
		if res := ValidateStep(step, &d); !res.OK {
			t.Fatalf("step %d should pass unconditionally, got %v", step, res.Errors)
		}
	}
}
