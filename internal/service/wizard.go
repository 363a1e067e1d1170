package service

import (
	"context"
	"errors"
	"sync"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/model"
	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
)

var (
	ErrNoWizard      = errors.New("no wizard in progress")
	ErrBadLifecycle  = errors.New("lifecycle must be draft or published")
	ErrWizardBlocked = errors.New("current step has validation errors")
)

// WizardService holds one in-progress listing wizard per user. Sessions are
// in-memory: abandoning the browser abandons the draft, exactly like the form
// it models. All mutation goes through the domain state machine, and every
// method returns a snapshot taken under the lock, never the live session, so
// concurrent requests for the same user cannot race on the returned state.
type WizardService struct {
	listingSvc *ListingService

	mu       sync.Mutex
	sessions map[string]*plot.Wizard
}

func NewWizardService(listingSvc *ListingService) *WizardService {
	return &WizardService{
		listingSvc: listingSvc,
		sessions:   make(map[string]*plot.Wizard),
	}
}

// Start opens a wizard for the user. With editID the draft is hydrated from
// the stored listing (owner-scoped); otherwise seller details are prefilled
// from the user's most recent listing when one exists. Any previous session
// for the user is discarded.
func (s *WizardService) Start(ctx context.Context, userID, editID string) (*plot.Wizard, error) {
	w := plot.NewWizard()

	if editID != "" {
		l, err := s.listingSvc.GetOwned(ctx, editID, userID)
		if err != nil {
			return nil, err
		}
		w.HydrateForEdit(editID, plot.FromListing(l), l.Images)
	} else if prev, err := s.listingSvc.Latest(ctx, userID); err != nil {
		return nil, err
	} else if prev != nil {
		w.PrefillSeller(prev.SellerType, prev.SellerName, prev.PhonePrimary, prev.PhoneSecondary, prev.SellerEmail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = w
	return w.Clone(), nil
}

// Get returns a snapshot of the user's current wizard.
func (s *WizardService) Get(userID string) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	return w.Clone(), nil
}

// Change applies one field edit to the user's draft.
func (s *WizardService) Change(userID string, fc plot.FieldChange) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	if err := w.Change(fc); err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

// Next advances the wizard when the current step validates; the returned
// snapshot carries field errors when it does not.
func (s *WizardService) Next(userID string) (*plot.Wizard, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, false, ErrNoWizard
	}
	advanced := w.Next()
	return w.Clone(), advanced, nil
}

func (s *WizardService) Previous(userID string) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	w.Previous()
	return w.Clone(), nil
}

func (s *WizardService) Restart(userID string) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	w.Restart()
	return w.Clone(), nil
}

// SetSlot places an uploaded image into one of the four mandatory slots.
func (s *WizardService) SetSlot(userID string, i int, url string) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	if err := w.SetSlot(i, plot.ImageSlot{URL: url}); err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

// AddImages appends uploaded images to the additional list.
func (s *WizardService) AddImages(userID string, urls []string) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	slots := make([]plot.ImageSlot, len(urls))
	for i, u := range urls {
		slots[i] = plot.ImageSlot{URL: u}
	}
	if err := w.AddImages(slots...); err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

func (s *WizardService) RemoveImage(userID string, i int) (*plot.Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoWizard
	}
	if err := w.RemoveImage(i); err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

// Submit runs a final validation pass over every gated step, persists with
// the requested lifecycle and discards the session on success. On a
// validation block a snapshot is returned with its field errors; on any
// failure the session stays intact so the user can correct and retry.
// Persistence happens against a snapshot taken under the lock, so a racing
// edit cannot corrupt what gets stored.
func (s *WizardService) Submit(ctx context.Context, userID, lifecycle string) (*model.Listing, *plot.Wizard, error) {
	if lifecycle != plot.StatusDraft && lifecycle != plot.StatusPublished {
		return nil, nil, ErrBadLifecycle
	}

	s.mu.Lock()
	w, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, ErrNoWizard
	}

	// Publishing re-checks every validated step; saving a draft does not,
	// since drafts exist precisely to park incomplete data.
	if lifecycle == plot.StatusPublished {
		for _, step := range []plot.Step{plot.StepSellerDetails, plot.StepBasicDetails, plot.StepLocation, plot.StepPricing} {
			if res := plot.ValidateStep(step, &w.Draft); !res.OK {
				w.Errors = res.Errors
				blocked := w.Clone()
				s.mu.Unlock()
				return nil, blocked, ErrWizardBlocked
			}
		}
		if w.ImageCount() < plot.MandatoryImages {
			w.Errors = map[string]string{"images": "Please upload at least 4 images to continue"}
			blocked := w.Clone()
			s.mu.Unlock()
			return nil, blocked, ErrWizardBlocked
		}
	}

	snapshot := w.Clone()
	s.mu.Unlock()

	listing, err := s.listingSvc.Submit(ctx, userID, snapshot, lifecycle)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
	return listing, nil, nil
}

// Abandon drops the user's session without saving.
func (s *WizardService) Abandon(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}
