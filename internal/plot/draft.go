package plot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
)

// Lifecycle statuses of a listing under construction.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Draft is the full form snapshot of a listing under construction or edit.
// Numeric inputs stay as strings until save; validation parses them.
type Draft struct {
	// Section 1: seller details
	SellerType     string `json:"seller_type"`
	SellerName     string `json:"seller_name"`
	PhonePrimary   string `json:"phone_primary"`
	PhoneSecondary string `json:"phone_secondary"`
	SellerEmail    string `json:"seller_email"`

	// Section 2: basic plot details
	Title            string `json:"title"`
	PlotType         string `json:"plot_type"`
	PlotAreaValue    string `json:"plot_area_value"`
	PlotAreaUnit     string `json:"plot_area_unit"`
	PlotLength       string `json:"plot_length"`
	PlotWidth        string `json:"plot_width"`
	PlotFacing       string `json:"plot_facing"`
	PlotShape        string `json:"plot_shape"`
	RoadAccess       bool   `json:"road_access"`
	RoadWidth        string `json:"road_width"`
	IsGated          bool   `json:"is_gated"`
	GatedProjectName string `json:"gated_project_name"`

	// Section 3: land legality
	LandClassification string `json:"land_classification"`
	OwnershipType      string `json:"ownership_type"`
	EncumbranceStatus  string `json:"encumbrance_status"`
	HasFencing         bool   `json:"has_fencing"`

	// Section 4: location
	State          string `json:"state"`
	City           string `json:"city"`
	Locality       string `json:"locality"`
	Taluka         string `json:"taluka"`
	Location       string `json:"location"`
	ExactAddress   string `json:"exact_address"`
	GoogleMapPin   string `json:"google_map_pin"`
	NearbyLandmark string `json:"nearby_landmark"`
	ZoneType       string `json:"zone_type"`

	// Section 5: pricing
	Price         string `json:"price"`
	PricePerUnit  string `json:"price_per_unit"`
	IsNegotiable  bool   `json:"is_negotiable"`
	BookingAmount string `json:"booking_amount"`
	LoanAvailable bool   `json:"loan_available"`
	LoanBanks     string `json:"loan_banks"`
	GSTApplicable bool   `json:"gst_applicable"`

	// Section 6: amenities
	HasCompoundWall        bool `json:"has_compound_wall"`
	HasSecurityGate        bool `json:"has_security_gate"`
	HasInternalRoads       bool `json:"has_internal_roads"`
	HasElectricity         bool `json:"has_electricity"`
	HasWaterSupply         bool `json:"has_water_supply"`
	HasDrainage            bool `json:"has_drainage"`
	HasStreetLights        bool `json:"has_street_lights"`
	HasGarden              bool `json:"has_garden"`
	HasClubhouse           bool `json:"has_clubhouse"`
	HasParking             bool `json:"has_parking"`
	HasCCTV                bool `json:"has_cctv"`
	HasRainwaterHarvesting bool `json:"has_rainwater_harvesting"`

	// Section 7: media (image slots live on the wizard, not the draft)
	WalkthroughVideoURL string `json:"walkthrough_video_url"`
	VirtualTour360URL   string `json:"virtual_tour_360_url"`

	// Section 8: additional details
	AvailabilityStatus string `json:"availability_status"`
	PossessionTimeline string `json:"possession_timeline"`
	ReasonForSelling   string `json:"reason_for_selling"`
	Description        string `json:"description"`

	// Section 9: verification & boost
	IsPremiumListing bool `json:"is_premium_listing"`
	IsVerifiedOwner  bool `json:"is_verified_owner"`
	IsUrgentSale     bool `json:"is_urgent_sale"`

	ListingStatus string `json:"listing_status"`
}

// NewDraft returns an empty draft with the same defaults the form opens with.
func NewDraft() Draft {
	return Draft{
		PlotAreaUnit:       "Sq. Ft",
		RoadAccess:         true,
		AvailabilityStatus: "available",
		ListingStatus:      StatusDraft,
	}
}

// FieldChange is a single user edit: one field, one new value.
type FieldChange struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Apply returns a copy of the draft with the change applied. Unknown field
// names are rejected so client typos surface instead of silently dropping input.
func Apply(d Draft, change FieldChange) (Draft, error) {
	set, ok := draftSetters[change.Field]
	if !ok {
		return d, fmt.Errorf("unknown field %q", change.Field)
	}
	set(&d, change.Value)
	return d, nil
}

var draftSetters = map[string]func(*Draft, any){
	"seller_type":     func(d *Draft, v any) { d.SellerType = asString(v) },
	"seller_name":     func(d *Draft, v any) { d.SellerName = asString(v) },
	"phone_primary":   func(d *Draft, v any) { d.PhonePrimary = asString(v) },
	"phone_secondary": func(d *Draft, v any) { d.PhoneSecondary = asString(v) },
	"seller_email":    func(d *Draft, v any) { d.SellerEmail = asString(v) },

	"title":              func(d *Draft, v any) { d.Title = asString(v) },
	"plot_type":          func(d *Draft, v any) { d.PlotType = asString(v) },
	"plot_area_value":    func(d *Draft, v any) { d.PlotAreaValue = asString(v) },
	"plot_area_unit":     func(d *Draft, v any) { d.PlotAreaUnit = asString(v) },
	"plot_length":        func(d *Draft, v any) { d.PlotLength = asString(v) },
	"plot_width":         func(d *Draft, v any) { d.PlotWidth = asString(v) },
	"plot_facing":        func(d *Draft, v any) { d.PlotFacing = asString(v) },
	"plot_shape":         func(d *Draft, v any) { d.PlotShape = asString(v) },
	"road_access":        func(d *Draft, v any) { d.RoadAccess = asBool(v) },
	"road_width":         func(d *Draft, v any) { d.RoadWidth = asString(v) },
	"is_gated":           func(d *Draft, v any) { d.IsGated = asBool(v) },
	"gated_project_name": func(d *Draft, v any) { d.GatedProjectName = asString(v) },

	"land_classification": func(d *Draft, v any) { d.LandClassification = asString(v) },
	"ownership_type":      func(d *Draft, v any) { d.OwnershipType = asString(v) },
	"encumbrance_status":  func(d *Draft, v any) { d.EncumbranceStatus = asString(v) },
	"has_fencing":         func(d *Draft, v any) { d.HasFencing = asBool(v) },

	"state":           func(d *Draft, v any) { d.State = asString(v) },
	"city":            func(d *Draft, v any) { d.City = asString(v) },
	"locality":        func(d *Draft, v any) { d.Locality = asString(v) },
	"taluka":          func(d *Draft, v any) { d.Taluka = asString(v) },
	"location":        func(d *Draft, v any) { d.Location = asString(v) },
	"exact_address":   func(d *Draft, v any) { d.ExactAddress = asString(v) },
	"google_map_pin":  func(d *Draft, v any) { d.GoogleMapPin = asString(v) },
	"nearby_landmark": func(d *Draft, v any) { d.NearbyLandmark = asString(v) },
	"zone_type":       func(d *Draft, v any) { d.ZoneType = asString(v) },

	"price":          func(d *Draft, v any) { d.Price = asString(v) },
	"price_per_unit": func(d *Draft, v any) { d.PricePerUnit = asString(v) },
	"is_negotiable":  func(d *Draft, v any) { d.IsNegotiable = asBool(v) },
	"booking_amount": func(d *Draft, v any) { d.BookingAmount = asString(v) },
	"loan_available": func(d *Draft, v any) { d.LoanAvailable = asBool(v) },
	"loan_banks":     func(d *Draft, v any) { d.LoanBanks = asString(v) },
	"gst_applicable": func(d *Draft, v any) { d.GSTApplicable = asBool(v) },

	"has_compound_wall":        func(d *Draft, v any) { d.HasCompoundWall = asBool(v) },
	"has_security_gate":        func(d *Draft, v any) { d.HasSecurityGate = asBool(v) },
	"has_internal_roads":       func(d *Draft, v any) { d.HasInternalRoads = asBool(v) },
	"has_electricity":          func(d *Draft, v any) { d.HasElectricity = asBool(v) },
	"has_water_supply":         func(d *Draft, v any) { d.HasWaterSupply = asBool(v) },
	"has_drainage":             func(d *Draft, v any) { d.HasDrainage = asBool(v) },
	"has_street_lights":        func(d *Draft, v any) { d.HasStreetLights = asBool(v) },
	"has_garden":               func(d *Draft, v any) { d.HasGarden = asBool(v) },
	"has_clubhouse":            func(d *Draft, v any) { d.HasClubhouse = asBool(v) },
	"has_parking":              func(d *Draft, v any) { d.HasParking = asBool(v) },
	"has_cctv":                 func(d *Draft, v any) { d.HasCCTV = asBool(v) },
	"has_rainwater_harvesting": func(d *Draft, v any) { d.HasRainwaterHarvesting = asBool(v) },

	"walkthrough_video_url": func(d *Draft, v any) { d.WalkthroughVideoURL = asString(v) },
	"virtual_tour_360_url":  func(d *Draft, v any) { d.VirtualTour360URL = asString(v) },

	"availability_status": func(d *Draft, v any) { d.AvailabilityStatus = asString(v) },
	"possession_timeline": func(d *Draft, v any) { d.PossessionTimeline = asString(v) },
	"reason_for_selling":  func(d *Draft, v any) { d.ReasonForSelling = asString(v) },
	"description":         func(d *Draft, v any) { d.Description = asString(v) },

	"is_premium_listing": func(d *Draft, v any) { d.IsPremiumListing = asBool(v) },
	"is_verified_owner":  func(d *Draft, v any) { d.IsVerifiedOwner = asBool(v) },
	"is_urgent_sale":     func(d *Draft, v any) { d.IsUrgentSale = asBool(v) },
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}

// ToListing materializes the draft into a persistable listing with the given
// lifecycle status. status (active/draft) is derived here and nowhere else.
func (d Draft) ToListing(userID string, images []string, lifecycle string) model.Listing {
	status := StatusDraft
	if lifecycle == StatusPublished {
		status = "active"
	}

	imageURL := ""
	if len(images) > 0 {
		imageURL = images[0]
	}

	dimensions := ""
	if d.PlotLength != "" && d.PlotWidth != "" {
		dimensions = d.PlotLength + " x " + d.PlotWidth
	}

	return model.Listing{
		UserID: userID,

		SellerType:     d.SellerType,
		SellerName:     strings.TrimSpace(d.SellerName),
		PhonePrimary:   strings.TrimSpace(d.PhonePrimary),
		PhoneSecondary: strings.TrimSpace(d.PhoneSecondary),
		SellerEmail:    strings.TrimSpace(d.SellerEmail),

		Title:            strings.TrimSpace(d.Title),
		PlotType:         d.PlotType,
		PlotAreaValue:    parseNumber(d.PlotAreaValue),
		PlotAreaUnit:     d.PlotAreaUnit,
		Area:             strings.TrimSpace(d.PlotAreaValue + " " + d.PlotAreaUnit),
		Dimensions:       dimensions,
		PlotLength:       d.PlotLength,
		PlotWidth:        d.PlotWidth,
		PlotFacing:       d.PlotFacing,
		PlotShape:        d.PlotShape,
		RoadAccess:       d.RoadAccess,
		RoadWidth:        d.RoadWidth,
		IsGated:          d.IsGated,
		GatedProjectName: d.GatedProjectName,

		LandClassification: d.LandClassification,
		OwnershipType:      d.OwnershipType,
		EncumbranceStatus:  d.EncumbranceStatus,
		HasFencing:         d.HasFencing,

		State:          strings.TrimSpace(d.State),
		City:           strings.TrimSpace(d.City),
		Locality:       strings.TrimSpace(d.Locality),
		Taluka:         d.Taluka,
		Location:       strings.TrimSpace(d.Location),
		ExactAddress:   d.ExactAddress,
		GoogleMapPin:   d.GoogleMapPin,
		NearbyLandmark: d.NearbyLandmark,
		ZoneType:       d.ZoneType,

		Price:         parseNumber(d.Price),
		PricePerUnit:  parseNumber(d.PricePerUnit),
		IsNegotiable:  d.IsNegotiable,
		BookingAmount: parseNumber(d.BookingAmount),
		LoanAvailable: d.LoanAvailable,
		LoanBanks:     d.LoanBanks,
		GSTApplicable: d.GSTApplicable,

		HasCompoundWall:        d.HasCompoundWall,
		HasSecurityGate:        d.HasSecurityGate,
		HasInternalRoads:       d.HasInternalRoads,
		HasElectricity:         d.HasElectricity,
		HasWaterSupply:         d.HasWaterSupply,
		HasDrainage:            d.HasDrainage,
		HasStreetLights:        d.HasStreetLights,
		HasGarden:              d.HasGarden,
		HasClubhouse:           d.HasClubhouse,
		HasParking:             d.HasParking,
		HasCCTV:                d.HasCCTV,
		HasRainwaterHarvesting: d.HasRainwaterHarvesting,

		Images:              images,
		ImageURL:            imageURL,
		WalkthroughVideoURL: d.WalkthroughVideoURL,
		VirtualTour360URL:   d.VirtualTour360URL,

		AvailabilityStatus: d.AvailabilityStatus,
		PossessionTimeline: d.PossessionTimeline,
		ReasonForSelling:   d.ReasonForSelling,
		Description:        d.Description,

		IsPremiumListing: d.IsPremiumListing,
		IsVerifiedOwner:  d.IsVerifiedOwner,
		IsUrgentSale:     d.IsUrgentSale,

		ListingStatus: lifecycle,
		Status:        status,
	}
}

// FromListing rebuilds a draft from a stored listing for edit mode.
func FromListing(l *model.Listing) Draft {
	d := NewDraft()

	d.SellerType = l.SellerType
	d.SellerName = l.SellerName
	d.PhonePrimary = l.PhonePrimary
	d.PhoneSecondary = l.PhoneSecondary
	d.SellerEmail = l.SellerEmail

	d.Title = l.Title
	d.PlotType = l.PlotType
	if l.PlotAreaValue > 0 {
		d.PlotAreaValue = strconv.FormatFloat(l.PlotAreaValue, 'f', -1, 64)
	}
	if l.PlotAreaUnit != "" {
		d.PlotAreaUnit = l.PlotAreaUnit
	}
	d.PlotLength = l.PlotLength
	d.PlotWidth = l.PlotWidth
	d.PlotFacing = l.PlotFacing
	d.PlotShape = l.PlotShape
	d.RoadAccess = l.RoadAccess
	d.RoadWidth = l.RoadWidth
	d.IsGated = l.IsGated
	d.GatedProjectName = l.GatedProjectName

	d.LandClassification = l.LandClassification
	d.OwnershipType = l.OwnershipType
	d.EncumbranceStatus = l.EncumbranceStatus
	d.HasFencing = l.HasFencing

	d.State = l.State
	d.City = l.City
	d.Locality = l.Locality
	d.Taluka = l.Taluka
	d.Location = l.Location
	d.ExactAddress = l.ExactAddress
	d.GoogleMapPin = l.GoogleMapPin
	d.NearbyLandmark = l.NearbyLandmark
	d.ZoneType = l.ZoneType

	if l.Price > 0 {
		d.Price = strconv.FormatFloat(l.Price, 'f', -1, 64)
	}
	if l.PricePerUnit > 0 {
		d.PricePerUnit = strconv.FormatFloat(l.PricePerUnit, 'f', -1, 64)
	}
	d.IsNegotiable = l.IsNegotiable
	if l.BookingAmount > 0 {
		d.BookingAmount = strconv.FormatFloat(l.BookingAmount, 'f', -1, 64)
	}
	d.LoanAvailable = l.LoanAvailable
	d.LoanBanks = l.LoanBanks
	d.GSTApplicable = l.GSTApplicable

	d.HasCompoundWall = l.HasCompoundWall
	d.HasSecurityGate = l.HasSecurityGate
	d.HasInternalRoads = l.HasInternalRoads
	d.HasElectricity = l.HasElectricity
	d.HasWaterSupply = l.HasWaterSupply
	d.HasDrainage = l.HasDrainage
	d.HasStreetLights = l.HasStreetLights
	d.HasGarden = l.HasGarden
	d.HasClubhouse = l.HasClubhouse
	d.HasParking = l.HasParking
	d.HasCCTV = l.HasCCTV
	d.HasRainwaterHarvesting = l.HasRainwaterHarvesting

	d.WalkthroughVideoURL = l.WalkthroughVideoURL
	d.VirtualTour360URL = l.VirtualTour360URL

	if l.AvailabilityStatus != "" {
		d.AvailabilityStatus = l.AvailabilityStatus
	}
	d.PossessionTimeline = l.PossessionTimeline
	d.ReasonForSelling = l.ReasonForSelling
	d.Description = l.Description

	d.IsPremiumListing = l.IsPremiumListing
	d.IsVerifiedOwner = l.IsVerifiedOwner
	d.IsUrgentSale = l.IsUrgentSale

	if l.ListingStatus != "" {
		d.ListingStatus = l.ListingStatus
	}
	return d
}

// parseNumber mirrors the lenient numeric coercion used at save time:
// unparseable input becomes 0 rather than an error.
func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
