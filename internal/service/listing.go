package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/discord"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/repository"

	"github.com/mmcloughlin/geohash"
)

var ErrListingNotFound = errors.New("listing not found")

type ListingService struct {
	listingRepo *repository.ListingRepository
	announcer   *discord.Announcer
}

func NewListingService(listingRepo *repository.ListingRepository, announcer *discord.Announcer) *ListingService {
	return &ListingService{listingRepo: listingRepo, announcer: announcer}
}

// Browse fetches the active listings and applies the in-memory filter/sort
// pipeline. The full record set stays server-side; callers get cards.
func (s *ListingService) Browse(ctx context.Context, criteria plot.Criteria) ([]model.ListingCard, error) {
	listings, err := s.listingRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	view := plot.View(listings, criteria)
	cards := make([]model.ListingCard, 0, len(view))
	for i := range view {
		cards = append(cards, view[i].Card())
	}
	return cards, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*model.Listing, error) {
	l, err := s.listingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

// GetForCompare resolves the comparison view from explicit ids, preserving
// their order. Unknown ids are silently dropped, so a stale shared link still
// renders whatever remains.
func (s *ListingService) GetForCompare(ctx context.Context, ids []string) ([]model.Listing, error) {
	if len(ids) > plot.MaxCompare {
		ids = ids[:plot.MaxCompare]
	}
	return s.listingRepo.ListByIDs(ctx, ids)
}

// ListOwn returns the seller's dashboard rows, drafts included.
func (s *ListingService) ListOwn(ctx context.Context, userID string) ([]model.Listing, error) {
	return s.listingRepo.ListByUser(ctx, userID)
}

// Submit persists a completed wizard as a draft or published listing. The
// wizard must carry resolved image slots by this point. On success the
// stored listing is returned; on failure the caller keeps the wizard intact
// so the user can retry.
func (s *ListingService) Submit(ctx context.Context, userID string, w *plot.Wizard, lifecycle string) (*model.Listing, error) {
	l := w.Draft.ToListing(userID, w.ImageURLs(), lifecycle)
	l.Geohash = pinGeohash(w.Draft.GoogleMapPin)

	if w.EditID != "" {
		if err := s.listingRepo.Update(ctx, w.EditID, &l); err != nil {
			return nil, err
		}
		l.ID = w.EditID
	} else {
		if err := s.listingRepo.Insert(ctx, &l); err != nil {
			return nil, err
		}
	}

	if lifecycle == plot.StatusPublished {
		s.announcer.AnnounceListing(&l)
	}

	slog.Info("listing submitted", "id", l.ID, "user", userID, "lifecycle", lifecycle)
	return &l, nil
}

// Latest returns the user's most recent listing for seller prefill, or nil.
func (s *ListingService) Latest(ctx context.Context, userID string) (*model.Listing, error) {
	l, err := s.listingRepo.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

// GetOwned loads a listing for editing, scoped to its owner.
func (s *ListingService) GetOwned(ctx context.Context, id, userID string) (*model.Listing, error) {
	l, err := s.listingRepo.GetOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

// pinGeohash derives a geohash from a "lat,lng" map pin. Anything that does
// not parse yields an empty hash; the pin itself is stored untouched.
func pinGeohash(pin string) string {
	parts := strings.Split(pin, ",")
	if len(parts) != 2 {
		return ""
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ""
	}
	return geohash.Encode(lat, lng)
}
