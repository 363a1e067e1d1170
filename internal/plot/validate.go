package plot

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Loose international phone pattern, matching the one used on the listing form.
var phoneRe = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-\s.]?[(]?[0-9]{1,4}[)]?[-\s.]?[0-9]{1,9}$`)

// StepResult reports whether a wizard step passed and, if not, one
// human-readable message per failing field.
type StepResult struct {
	OK     bool              `json:"ok"`
	Errors map[string]string `json:"errors"`
}

func pass() StepResult {
	return StepResult{OK: true, Errors: map[string]string{}}
}

// ValidateStep checks the draft against the rules for a single wizard step.
// Only steps 1, 2, 4 and 5 carry rules; every other step passes unconditionally.
// A failing result never blocks backward navigation, only advancement.
func ValidateStep(step Step, d *Draft) StepResult {
	switch step {
	case StepSellerDetails:
		return validateSellerDetails(d)
	case StepBasicDetails:
		return validateBasicDetails(d)
	case StepLocation:
		return validateLocation(d)
	case StepPricing:
		return validatePricing(d)
	default:
		return pass()
	}
}

func validateSellerDetails(d *Draft) StepResult {
	errs := map[string]string{}

	if d.SellerType == "" {
		errs["seller_type"] = "Please select seller type"
	}

	// Length limits count characters, not bytes, so non-Latin names measure
	// the same as they do on the form.
	name := strings.TrimSpace(d.SellerName)
	if utf8.RuneCountInString(name) < 2 {
		errs["seller_name"] = "Name must be at least 2 characters"
	} else if utf8.RuneCountInString(name) > 100 {
		errs["seller_name"] = "Name must be less than 100 characters"
	}

	if !phoneRe.MatchString(strings.TrimSpace(d.PhonePrimary)) {
		errs["phone_primary"] = "Please enter a valid phone number"
	}
	// phone_secondary is optional and unconstrained

	if !isValidEmail(strings.TrimSpace(d.SellerEmail)) {
		errs["seller_email"] = "Please enter a valid email address"
	}

	return result(errs)
}

func validateBasicDetails(d *Draft) StepResult {
	errs := map[string]string{}

	title := strings.TrimSpace(d.Title)
	if utf8.RuneCountInString(title) < 10 {
		errs["title"] = "Title must be at least 10 characters"
	} else if utf8.RuneCountInString(title) > 150 {
		errs["title"] = "Title must be less than 150 characters"
	}

	if d.PlotType == "" {
		errs["plot_type"] = "Please select plot type"
	}

	if d.PlotAreaValue == "" {
		errs["plot_area_value"] = "Please enter plot area"
	} else if n, err := strconv.ParseFloat(strings.TrimSpace(d.PlotAreaValue), 64); err != nil || n <= 0 {
		errs["plot_area_value"] = "Plot area must be a positive number"
	}

	if d.PlotAreaUnit == "" {
		errs["plot_area_unit"] = "Please select area unit"
	}

	return result(errs)
}

func validateLocation(d *Draft) StepResult {
	errs := map[string]string{}

	if utf8.RuneCountInString(strings.TrimSpace(d.State)) < 2 {
		errs["state"] = "State is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.City)) < 2 {
		errs["city"] = "City is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Locality)) < 2 {
		errs["locality"] = "Locality is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Location)) < 2 {
		errs["location"] = "Location is required"
	}

	return result(errs)
}

func validatePricing(d *Draft) StepResult {
	errs := map[string]string{}

	if d.Price == "" {
		errs["price"] = "Price is required"
	} else if n, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64); err != nil || n <= 0 {
		errs["price"] = "Price must be a positive number"
	}

	return result(errs)
}

func isValidEmail(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func result(errs map[string]string) StepResult {
	return StepResult{OK: len(errs) == 0, Errors: errs}
}
