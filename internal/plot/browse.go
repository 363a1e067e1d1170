package plot

import (
	"sort"
	"strings"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
)

// Sort keys for the browse view.
const (
	SortRecent    = "recent"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortArea      = "area"
)

// Sentinel selector value meaning "no constraint".
const FilterAll = "all"

// DefaultMaxPrice is the upper bound of the price slider when untouched.
const DefaultMaxPrice = 10000000

// Criteria is the browse page's transient set of predicates plus one sort key.
type Criteria struct {
	Search    string   `json:"search"`
	PlotType  string   `json:"plot_type"`
	PriceMin  float64  `json:"price_min"`
	PriceMax  float64  `json:"price_max"`
	Facing    string   `json:"facing"`
	RoadWidth string   `json:"road_width"`
	State     string   `json:"state"`
	Locations []string `json:"locations"`
	SortBy    string   `json:"sort_by"`
}

// DefaultCriteria matches everything and sorts by most recent.
func DefaultCriteria() Criteria {
	return Criteria{
		PlotType:  FilterAll,
		PriceMin:  0,
		PriceMax:  DefaultMaxPrice,
		Facing:    FilterAll,
		RoadWidth: FilterAll,
		SortBy:    SortRecent,
	}
}

// View filters and orders listings for display. Filtering is a conjunction of
// independent predicates; sorting is stable over exactly one key, so ties keep
// input order. A min>max price range yields an empty result; that degenerate
// case is accepted, not corrected.
func View(listings []model.Listing, c Criteria) []model.Listing {
	out := make([]model.Listing, 0, len(listings))
	for _, l := range listings {
		if matches(&l, &c) {
			out = append(out, l)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		switch c.SortBy {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortArea:
			return leadingNumber(a.Area) > leadingNumber(b.Area)
		default: // SortRecent
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	return out
}

func matches(l *model.Listing, c *Criteria) bool {
	search := strings.ToLower(c.Search)
	if search != "" &&
		!strings.Contains(strings.ToLower(l.Title), search) &&
		!strings.Contains(strings.ToLower(l.Location), search) {
		return false
	}

	if c.PlotType != "" && c.PlotType != FilterAll && l.PlotType != c.PlotType {
		return false
	}

	if l.Price < c.PriceMin || l.Price > c.PriceMax {
		return false
	}

	if c.Facing != "" && c.Facing != FilterAll && l.PlotFacing != c.Facing {
		return false
	}

	if c.RoadWidth != "" && c.RoadWidth != FilterAll && l.RoadWidth != c.RoadWidth {
		return false
	}

	if c.State != "" && !strings.Contains(strings.ToLower(l.State), strings.ToLower(c.State)) {
		return false
	}

	// Vacuously true with no selection; otherwise any selected token must
	// appear in the listing's location string.
	if len(c.Locations) > 0 {
		loc := strings.ToLower(l.Location)
		found := false
		for _, want := range c.Locations {
			if strings.Contains(loc, strings.ToLower(want)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// leadingNumber parses the leading numeric token of an area string, so
// "1200 Sq. Ft" sorts as 1200. Unparseable input sorts as 0.
func leadingNumber(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDot := false
	for end < len(s) {
		ch := s[end]
		if ch >= '0' && ch <= '9' {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	return parseNumber(s[:end])
}
