package service

import (
	"context"
	"errors"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/repository"
)

// ErrCompareFull is returned when a fifth plot is added to the comparison.
var ErrCompareFull = errors.New("You can compare up to 4 plots only")

// CompareService keeps each user's compare set durable across sessions.
// Every mutation loads the stored set, applies the change through the
// domain type and writes the result back, so concurrent tabs converge on
// last-write-wins without any in-process cache going stale.
type CompareService struct {
	compareRepo *repository.CompareRepository
}

func NewCompareService(compareRepo *repository.CompareRepository) *CompareService {
	return &CompareService{compareRepo: compareRepo}
}

func (s *CompareService) load(ctx context.Context, userID string) (*plot.CompareSet, error) {
	data, err := s.compareRepo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return plot.CompareSetFromJSON(data), nil
}

// Get returns the user's current compare ids in insertion order.
func (s *CompareService) Get(ctx context.Context, userID string) ([]string, error) {
	set, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

// Add puts the listing into the user's set. Duplicates are accepted without
// growing the set; a full set rejects with ErrCompareFull.
func (s *CompareService) Add(ctx context.Context, userID, listingID string) ([]string, error) {
	set, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !set.Add(listingID) {
		return set.IDs(), ErrCompareFull
	}
	if err := s.compareRepo.Store(ctx, userID, set.JSON()); err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

// Remove drops the listing from the set, a no-op when absent.
func (s *CompareService) Remove(ctx context.Context, userID, listingID string) ([]string, error) {
	set, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	set.Remove(listingID)
	if err := s.compareRepo.Store(ctx, userID, set.JSON()); err != nil {
		return nil, err
	}
	return set.IDs(), nil
}

// Clear empties the set.
func (s *CompareService) Clear(ctx context.Context, userID string) error {
	set := plot.NewCompareSet()
	return s.compareRepo.Store(ctx, userID, set.JSON())
}
