package repository

import (
	"context"
	"errors"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("not found")

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

const listingColumns = `
	id, user_id,
	seller_type, seller_name, phone_primary, phone_secondary, seller_email,
	title, plot_type, plot_area_value, plot_area_unit, area, dimensions,
	plot_length, plot_width, plot_facing, plot_shape, road_access, road_width,
	is_gated, gated_project_name,
	land_classification, ownership_type, encumbrance_status, has_fencing,
	state, city, locality, taluka, location, exact_address, google_map_pin,
	geohash, nearby_landmark, zone_type,
	price, price_per_unit, is_negotiable, booking_amount, loan_available,
	loan_banks, gst_applicable,
	has_compound_wall, has_security_gate, has_internal_roads, has_electricity,
	has_water_supply, has_drainage, has_street_lights, has_garden,
	has_clubhouse, has_parking, has_cctv, has_rainwater_harvesting,
	images, image_url, walkthrough_video_url, virtual_tour_360_url,
	availability_status, possession_timeline, reason_for_selling, description,
	is_premium_listing, is_verified_owner, is_urgent_sale, is_verified,
	listing_status, status, created_at, updated_at`

func scanListing(row pgx.Row) (*model.Listing, error) {
	l := &model.Listing{}
	err := row.Scan(
		&l.ID, &l.UserID,
		&l.SellerType, &l.SellerName, &l.PhonePrimary, &l.PhoneSecondary, &l.SellerEmail,
		&l.Title, &l.PlotType, &l.PlotAreaValue, &l.PlotAreaUnit, &l.Area, &l.Dimensions,
		&l.PlotLength, &l.PlotWidth, &l.PlotFacing, &l.PlotShape, &l.RoadAccess, &l.RoadWidth,
		&l.IsGated, &l.GatedProjectName,
		&l.LandClassification, &l.OwnershipType, &l.EncumbranceStatus, &l.HasFencing,
		&l.State, &l.City, &l.Locality, &l.Taluka, &l.Location, &l.ExactAddress, &l.GoogleMapPin,
		&l.Geohash, &l.NearbyLandmark, &l.ZoneType,
		&l.Price, &l.PricePerUnit, &l.IsNegotiable, &l.BookingAmount, &l.LoanAvailable,
		&l.LoanBanks, &l.GSTApplicable,
		&l.HasCompoundWall, &l.HasSecurityGate, &l.HasInternalRoads, &l.HasElectricity,
		&l.HasWaterSupply, &l.HasDrainage, &l.HasStreetLights, &l.HasGarden,
		&l.HasClubhouse, &l.HasParking, &l.HasCCTV, &l.HasRainwaterHarvesting,
		&l.Images, &l.ImageURL, &l.WalkthroughVideoURL, &l.VirtualTour360URL,
		&l.AvailabilityStatus, &l.PossessionTimeline, &l.ReasonForSelling, &l.Description,
		&l.IsPremiumListing, &l.IsVerifiedOwner, &l.IsUrgentSale, &l.IsVerified,
		&l.ListingStatus, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func listingArgs(l *model.Listing) []any {
	return []any{
		l.UserID,
		l.SellerType, l.SellerName, l.PhonePrimary, l.PhoneSecondary, l.SellerEmail,
		l.Title, l.PlotType, l.PlotAreaValue, l.PlotAreaUnit, l.Area, l.Dimensions,
		l.PlotLength, l.PlotWidth, l.PlotFacing, l.PlotShape, l.RoadAccess, l.RoadWidth,
		l.IsGated, l.GatedProjectName,
		l.LandClassification, l.OwnershipType, l.EncumbranceStatus, l.HasFencing,
		l.State, l.City, l.Locality, l.Taluka, l.Location, l.ExactAddress, l.GoogleMapPin,
		l.Geohash, l.NearbyLandmark, l.ZoneType,
		l.Price, l.PricePerUnit, l.IsNegotiable, l.BookingAmount, l.LoanAvailable,
		l.LoanBanks, l.GSTApplicable,
		l.HasCompoundWall, l.HasSecurityGate, l.HasInternalRoads, l.HasElectricity,
		l.HasWaterSupply, l.HasDrainage, l.HasStreetLights, l.HasGarden,
		l.HasClubhouse, l.HasParking, l.HasCCTV, l.HasRainwaterHarvesting,
		l.Images, l.ImageURL, l.WalkthroughVideoURL, l.VirtualTour360URL,
		l.AvailabilityStatus, l.PossessionTimeline, l.ReasonForSelling, l.Description,
		l.IsPremiumListing, l.IsVerifiedOwner, l.IsUrgentSale,
		l.ListingStatus, l.Status,
	}
}

const insertListingSQL = `
	INSERT INTO plots (
		user_id,
		seller_type, seller_name, phone_primary, phone_secondary, seller_email,
		title, plot_type, plot_area_value, plot_area_unit, area, dimensions,
		plot_length, plot_width, plot_facing, plot_shape, road_access, road_width,
		is_gated, gated_project_name,
		land_classification, ownership_type, encumbrance_status, has_fencing,
		state, city, locality, taluka, location, exact_address, google_map_pin,
		geohash, nearby_landmark, zone_type,
		price, price_per_unit, is_negotiable, booking_amount, loan_available,
		loan_banks, gst_applicable,
		has_compound_wall, has_security_gate, has_internal_roads, has_electricity,
		has_water_supply, has_drainage, has_street_lights, has_garden,
		has_clubhouse, has_parking, has_cctv, has_rainwater_harvesting,
		images, image_url, walkthrough_video_url, virtual_tour_360_url,
		availability_status, possession_timeline, reason_for_selling, description,
		is_premium_listing, is_verified_owner, is_urgent_sale,
		listing_status, status
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43, $44,
		$45, $46, $47, $48, $49, $50, $51, $52, $53, $54, $55, $56, $57, $58,
		$59, $60, $61, $62, $63, $64, $65, $66
	)
	RETURNING id, created_at`

func (r *ListingRepository) Insert(ctx context.Context, l *model.Listing) error {
	return r.pool.QueryRow(ctx, insertListingSQL, listingArgs(l)...).Scan(&l.ID, &l.CreatedAt)
}

const updateListingSQL = `
	UPDATE plots SET
		seller_type = $3, seller_name = $4, phone_primary = $5, phone_secondary = $6,
		seller_email = $7, title = $8, plot_type = $9, plot_area_value = $10,
		plot_area_unit = $11, area = $12, dimensions = $13, plot_length = $14,
		plot_width = $15, plot_facing = $16, plot_shape = $17, road_access = $18,
		road_width = $19, is_gated = $20, gated_project_name = $21,
		land_classification = $22, ownership_type = $23, encumbrance_status = $24,
		has_fencing = $25, state = $26, city = $27, locality = $28, taluka = $29,
		location = $30, exact_address = $31, google_map_pin = $32, geohash = $33,
		nearby_landmark = $34, zone_type = $35, price = $36, price_per_unit = $37,
		is_negotiable = $38, booking_amount = $39, loan_available = $40,
		loan_banks = $41, gst_applicable = $42, has_compound_wall = $43,
		has_security_gate = $44, has_internal_roads = $45, has_electricity = $46,
		has_water_supply = $47, has_drainage = $48, has_street_lights = $49,
		has_garden = $50, has_clubhouse = $51, has_parking = $52, has_cctv = $53,
		has_rainwater_harvesting = $54, images = $55, image_url = $56,
		walkthrough_video_url = $57, virtual_tour_360_url = $58,
		availability_status = $59, possession_timeline = $60,
		reason_for_selling = $61, description = $62, is_premium_listing = $63,
		is_verified_owner = $64, is_urgent_sale = $65, listing_status = $66,
		status = $67, updated_at = NOW()
	WHERE id = $1 AND user_id = $2`

// Update rewrites an existing listing. Scoped to the owning user: editing
// someone else's listing reports ErrNotFound.
func (r *ListingRepository) Update(ctx context.Context, id string, l *model.Listing) error {
	args := append([]any{id}, listingArgs(l)...)
	tag, err := r.pool.Exec(ctx, updateListingSQL, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	return scanListing(r.pool.QueryRow(ctx, `SELECT`+listingColumns+` FROM plots WHERE id = $1`, id))
}

// GetOwned fetches a listing only when it belongs to userID (edit mode).
func (r *ListingRepository) GetOwned(ctx context.Context, id, userID string) (*model.Listing, error) {
	return scanListing(r.pool.QueryRow(ctx,
		`SELECT`+listingColumns+` FROM plots WHERE id = $1 AND user_id = $2`, id, userID))
}

// ListActive returns all publicly visible listings. Filtering and ordering
// happen in memory (internal/plot.View) so the browse semantics stay in one place.
func (r *ListingRepository) ListActive(ctx context.Context) ([]model.Listing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+listingColumns+` FROM plots WHERE status = 'active' ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

// ListByUser returns the seller's own listings, drafts included.
func (r *ListingRepository) ListByUser(ctx context.Context, userID string) ([]model.Listing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+listingColumns+` FROM plots WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

// ListAll returns everything for moderation, newest first.
func (r *ListingRepository) ListAll(ctx context.Context) ([]model.Listing, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT`+listingColumns+` FROM plots ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

// ListByIDs fetches listings preserving the order of the given ids
// (the compare view's order is the user's insertion order, not the DB's).
func (r *ListingRepository) ListByIDs(ctx context.Context, ids []string) ([]model.Listing, error) {
	if len(ids) == 0 {
		return []model.Listing{}, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT`+listingColumns+` FROM plots WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	found, err := collectListings(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Listing, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}
	ordered := make([]model.Listing, 0, len(ids))
	for _, id := range ids {
		if l, ok := byID[id]; ok {
			ordered = append(ordered, l)
		}
	}
	return ordered, nil
}

// LatestByUser returns the user's most recent listing, used to prefill
// seller details on a fresh wizard. ErrNotFound when the user has none.
func (r *ListingRepository) LatestByUser(ctx context.Context, userID string) (*model.Listing, error) {
	return scanListing(r.pool.QueryRow(ctx,
		`SELECT`+listingColumns+` FROM plots WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID))
}

func (r *ListingRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE plots SET is_verified = $2, updated_at = NOW() WHERE id = $1`, id, verified)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) SetStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE plots SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM plots WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) CountTotal(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM plots`).Scan(&n)
	return n, err
}

func (r *ListingRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM plots WHERE status = $1`, status).Scan(&n)
	return n, err
}

func collectListings(rows pgx.Rows) ([]model.Listing, error) {
	var out []model.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}
