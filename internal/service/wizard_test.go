package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/PriyaKKarkare/Zaminbazzar-work/internal/plot"
)

func newTestWizardService(userID string) *WizardService {
	s := NewWizardService(nil)
	s.sessions[userID] = plot.NewWizard()
	return s
}

func TestWizardServiceReturnsSnapshots(t *testing.T) {
	s := newTestWizardService("u1")

	first, err := s.Change("u1", plot.FieldChange{Field: "title", Value: "Corner plot near ring road"})
	if err != nil {
		t.Fatalf("change: %v", err)
	}

	// A later edit must not show through the earlier snapshot.
	if _, err := s.Change("u1", plot.FieldChange{Field: "title", Value: "Renamed listing title here"}); err != nil {
		t.Fatalf("second change: %v", err)
	}
	if first.Draft.Title != "Corner plot near ring road" {
		t.Fatalf("snapshot mutated by later edit: %q", first.Draft.Title)
	}

	// Same for validation errors produced after the snapshot was taken.
	blocked, advanced, err := s.Next("u1")
	if err != nil || advanced {
		t.Fatalf("expected blocked step 1, advanced=%v err=%v", advanced, err)
	}
	if len(blocked.Errors) == 0 {
		t.Fatal("expected field errors on blocked snapshot")
	}
	if len(first.Errors) != 0 {
		t.Fatalf("earlier snapshot picked up errors: %v", first.Errors)
	}
}

func TestWizardServiceConcurrentAccess(t *testing.T) {
	s := newTestWizardService("u1")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch i % 4 {
				case 0:
					_, _ = s.Change("u1", plot.FieldChange{Field: "title", Value: fmt.Sprintf("Listing title number %d-%d", i, j)})
				case 1:
					if w, err := s.Get("u1"); err == nil {
						_ = len(w.Errors)
						_ = w.Draft.Title
					}
				case 2:
					_, _, _ = s.Next("u1")
				case 3:
					_, _ = s.Previous("u1")
				}
			}
		}(i)
	}
	wg.Wait()

	if _, err := s.Get("u1"); err != nil {
		t.Fatalf("session lost under concurrency: %v", err)
	}
}
