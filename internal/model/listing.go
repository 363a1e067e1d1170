package model

import "time"

// Listing is a persisted plot listing row. Column-for-column with the plots table.
type Listing struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Seller details
	SellerType     string `json:"seller_type"`
	SellerName     string `json:"seller_name"`
	PhonePrimary   string `json:"phone_primary"`
	PhoneSecondary string `json:"phone_secondary"`
	SellerEmail    string `json:"seller_email"`

	// Basic plot details
	Title            string  `json:"title"`
	PlotType         string  `json:"plot_type"`
	PlotAreaValue    float64 `json:"plot_area_value"`
	PlotAreaUnit     string  `json:"plot_area_unit"`
	Area             string  `json:"area"`
	Dimensions       string  `json:"dimensions"`
	PlotLength       string  `json:"plot_length"`
	PlotWidth        string  `json:"plot_width"`
	PlotFacing       string  `json:"plot_facing"`
	PlotShape        string  `json:"plot_shape"`
	RoadAccess       bool    `json:"road_access"`
	RoadWidth        string  `json:"road_width"`
	IsGated          bool    `json:"is_gated"`
	GatedProjectName string  `json:"gated_project_name"`

	// Land legality
	LandClassification string `json:"land_classification"`
	OwnershipType      string `json:"ownership_type"`
	EncumbranceStatus  string `json:"encumbrance_status"`
	HasFencing         bool   `json:"has_fencing"`

	// Location
	State          string `json:"state"`
	City           string `json:"city"`
	Locality       string `json:"locality"`
	Taluka         string `json:"taluka"`
	Location       string `json:"location"`
	ExactAddress   string `json:"exact_address"`
	GoogleMapPin   string `json:"google_map_pin"`
	Geohash        string `json:"geohash,omitempty"`
	NearbyLandmark string `json:"nearby_landmark"`
	ZoneType       string `json:"zone_type"`

	// Pricing
	Price         float64 `json:"price"`
	PricePerUnit  float64 `json:"price_per_unit"`
	IsNegotiable  bool    `json:"is_negotiable"`
	BookingAmount float64 `json:"booking_amount"`
	LoanAvailable bool    `json:"loan_available"`
	LoanBanks     string  `json:"loan_banks"`
	GSTApplicable bool    `json:"gst_applicable"`

	// Amenities
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

	// Media
	Images              []string `json:"images"`
	ImageURL            string   `json:"image_url"`
	WalkthroughVideoURL string   `json:"walkthrough_video_url"`
	VirtualTour360URL   string   `json:"virtual_tour_360_url"`

	// Additional details
	AvailabilityStatus string `json:"availability_status"`
	PossessionTimeline string `json:"possession_timeline"`
	ReasonForSelling   string `json:"reason_for_selling"`
	Description        string `json:"description"`

	// Verification & boost
	IsPremiumListing bool `json:"is_premium_listing"`
	IsVerifiedOwner  bool `json:"is_verified_owner"`
	IsUrgentSale     bool `json:"is_urgent_sale"`
	IsVerified       bool `json:"is_verified"`

	// Lifecycle: listing_status drives status ('published'->'active', 'draft'->'draft')
	ListingStatus string `json:"listing_status"`
	Status        string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListingCard is the trimmed shape returned by browse endpoints.
type ListingCard struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	State      string    `json:"state"`
	Price      float64   `json:"price"`
	Area       string    `json:"area"`
	PlotType   string    `json:"plot_type"`
	PlotFacing string    `json:"plot_facing"`
	RoadWidth  string    `json:"road_width"`
	ImageURL   string    `json:"image_url"`
	SellerName string    `json:"seller_name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Card projects a listing onto its browse-card shape.
func (l *Listing) Card() ListingCard {
	imageURL := l.ImageURL
	if imageURL == "" && len(l.Images) > 0 {
		imageURL = l.Images[0]
	}
	return ListingCard{
		ID:         l.ID,
		Title:      l.Title,
		Location:   l.Location,
		State:      l.State,
		Price:      l.Price,
		Area:       l.Area,
		PlotType:   l.PlotType,
		PlotFacing: l.PlotFacing,
		RoadWidth:  l.RoadWidth,
		ImageURL:   imageURL,
		SellerName: l.SellerName,
		IsVerified: l.IsVerified,
		CreatedAt:  l.CreatedAt,
	}
}

// PopularCities is the seed list offered by the browse filter options endpoint.
// It is a starting set, not an exhaustive one: the location filter accepts any token.
var PopularCities = []string{
	"Pune", "Mumbai", "Nashik", "Nagpur", "Aurangabad", "Kolhapur", "Satara", "Solapur",
}

// PlotTypes enumerates the plot type selector values.
var PlotTypes = []string{
	"Residential", "Commercial", "Agricultural", "Industrial", "Farm Land", "NA Plot",
}
