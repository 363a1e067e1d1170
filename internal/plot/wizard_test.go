package plot

import "testing"

func wizardAtStep(t *testing.T, target Step) *Wizard {
	t.Helper()
	w := NewWizard()
	w.Draft = validStep1Draft()
	w.Draft.Title = "Prime corner plot near ring road"
	w.Draft.PlotType = "Residential"
	w.Draft.PlotAreaValue = "1200"
	w.Draft.State = "Maharashtra"
	w.Draft.City = "Pune"
	w.Draft.Locality = "Wagholi"
	w.Draft.Location = "Wagholi, Pune"
	w.Draft.Price = "450000"
	for i := 0; i < 4; i++ {
		if err := w.SetSlot(i, ImageSlot{URL: "https://img.example/p.jpg"}); err != nil {
			t.Fatalf("SetSlot: %v", err)
		}
	}
	for w.Step < target {
		if !w.Next() {
			t.Fatalf("Next failed at step %d: %v", w.Step, w.Errors)
		}
	}
	return w
}

func TestNextBlocksOnInvalidStep(t *testing.T) {
	w := NewWizard()
	w.Draft.SellerName = "P" // length 1, fails step 1

	if w.Next() {
		t.Fatal("expected Next to fail on invalid step 1")
	}
	if w.Step != StepSellerDetails {
		t.Fatalf("step changed to %d, want %d", w.Step, StepSellerDetails)
	}
	if len(w.Errors) == 0 {
		t.Fatal("expected at least one field error")
	}
}

func TestNextAdvancesAndClearsErrors(t *testing.T) {
	w := NewWizard()
	if w.Next() {
		t.Fatal("empty draft should not pass step 1")
	}

	w.Draft = validStep1Draft()
	if !w.Next() {
		t.Fatalf("expected advance, got %v", w.Errors)
	}
	if w.Step != StepBasicDetails {
		t.Fatalf("step = %d, want %d", w.Step, StepBasicDetails)
	}
	if len(w.Errors) != 0 {
		t.Fatalf("errors not cleared: %v", w.Errors)
	}
}

func TestAreaZeroFailsStepTwo(t *testing.T) {
	w := wizardAtStep(t, StepBasicDetails)
	w.Draft.PlotAreaValue = "0"

	if w.Next() {
		t.Fatal("expected Next to fail with zero area")
	}
	if w.Step != StepBasicDetails {
		t.Fatalf("step = %d, want %d", w.Step, StepBasicDetails)
	}
	if got := w.Errors["plot_area_value"]; got != "Plot area must be a positive number" {
		t.Fatalf("plot_area_value error = %q", got)
	}
}

func TestPreviousNeverValidates(t *testing.T) {
	w := wizardAtStep(t, StepPricing)
	w.Draft = NewDraft() // wreck the draft entirely

	w.Previous()
	if w.Step != StepLocation {
		t.Fatalf("step = %d, want %d", w.Step, StepLocation)
	}

	for w.Step > FirstStep {
		w.Previous()
	}
	w.Previous() // no-op at step 1
	if w.Step != FirstStep {
		t.Fatalf("step = %d, want %d", w.Step, FirstStep)
	}
}

func TestMediaStepRequiresFourImages(t *testing.T) {
	w := wizardAtStep(t, StepMedia)
	w.Images = w.Images[:0]
	for i := 0; i < 3; i++ {
		if err := w.SetSlot(i, ImageSlot{Pending: "local-3"}); err != nil {
			t.Fatalf("SetSlot: %v", err)
		}
	}

	if w.Next() {
		t.Fatal("expected media step to block with 3 images")
	}
	if w.Errors["images"] == "" {
		t.Fatal("expected images error message")
	}

	// Pending slots count toward the minimum just like resolved ones.
	if err := w.SetSlot(3, ImageSlot{Pending: "local-4"}); err != nil {
		t.Fatalf("SetSlot: %v", err)
	}
	if !w.Next() {
		t.Fatalf("expected advance with 4 images, got %v", w.Errors)
	}
	if w.Step != StepAdditional {
		t.Fatalf("step = %d, want %d", w.Step, StepAdditional)
	}
}

func TestNextCapsAtFinalStep(t *testing.T) {
	w := wizardAtStep(t, StepReview)
	if !w.Next() {
		t.Fatalf("review step should validate clean: %v", w.Errors)
	}
	if w.Step != StepReview {
		t.Fatalf("step advanced past final: %d", w.Step)
	}
}

func TestImageSlotCompaction(t *testing.T) {
	w := NewWizard()
	for i := 0; i < 4; i++ {
		if err := w.SetSlot(i, ImageSlot{URL: string(rune('a' + i))}); err != nil {
			t.Fatalf("SetSlot: %v", err)
		}
	}
	if err := w.AddImages(ImageSlot{URL: "e"}, ImageSlot{URL: "f"}); err != nil {
		t.Fatalf("AddImages: %v", err)
	}

	if err := w.RemoveImage(1); err != nil {
		t.Fatalf("RemoveImage: %v", err)
	}
	want := []string{"a", "c", "d", "e", "f"}
	got := w.ImageURLs()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d = %q, want %q (no gaps allowed)", i, got[i], want[i])
		}
	}
}

func TestImageCapTwenty(t *testing.T) {
	w := NewWizard()
	slots := make([]ImageSlot, MaxImages)
	for i := range slots {
		slots[i] = ImageSlot{URL: "u"}
	}
	if err := w.AddImages(slots...); err != nil {
		t.Fatalf("filling to cap should succeed: %v", err)
	}
	if err := w.AddImages(ImageSlot{URL: "overflow"}); err != ErrTooManyImages {
		t.Fatalf("expected ErrTooManyImages, got %v", err)
	}
	if w.ImageCount() != MaxImages {
		t.Fatalf("count = %d, want %d", w.ImageCount(), MaxImages)
	}
}

func TestSetSlotRejectsGaps(t *testing.T) {
	w := NewWizard()
	if err := w.SetSlot(2, ImageSlot{URL: "x"}); err != ErrBadSlot {
		t.Fatalf("expected ErrBadSlot for gapped index, got %v", err)
	}
	if err := w.SetSlot(4, ImageSlot{URL: "x"}); err != ErrBadSlot {
		t.Fatalf("index 4 is not a mandatory slot, got %v", err)
	}
}

func TestPrefillSellerSkipsToStepTwo(t *testing.T) {
	w := NewWizard()
	w.PrefillSeller("Owner", "Priya Karkare", "+91 98765 43210", "", "priya@example.com")
	if w.Step != StepBasicDetails {
		t.Fatalf("step = %d, want %d", w.Step, StepBasicDetails)
	}

	// Incomplete identity keeps the wizard on step 1.
	w2 := NewWizard()
	w2.PrefillSeller("Owner", "", "+91 98765 43210", "", "")
	if w2.Step != StepSellerDetails {
		t.Fatalf("step = %d, want %d", w2.Step, StepSellerDetails)
	}
}

func TestHydrateForEdit(t *testing.T) {
	w := NewWizard()
	d := validStep1Draft()
	d.Title = "Edited listing title here"
	w.HydrateForEdit("plot-1", d, []string{"u1", "u2"})

	if w.EditID != "plot-1" {
		t.Fatalf("edit id = %q", w.EditID)
	}
	if w.Draft.Title != "Edited listing title here" {
		t.Fatalf("draft not hydrated: %q", w.Draft.Title)
	}
	if w.ImageCount() != 2 || w.PendingCount() != 0 {
		t.Fatalf("expected 2 resolved slots, got count=%d pending=%d", w.ImageCount(), w.PendingCount())
	}
}

func TestCloneIsIndependent(t *testing.T) {
	w := NewWizard()
	w.Errors["seller_name"] = "Name must be at least 2 characters"
	if err := w.SetSlot(0, ImageSlot{URL: "u0"}); err != nil {
		t.Fatalf("set slot: %v", err)
	}

	c := w.Clone()

	w.Errors["seller_type"] = "Please select seller type"
	delete(w.Errors, "seller_name")
	w.Images[0] = ImageSlot{URL: "changed"}
	w.Draft.Title = "A different plot title here"
	w.Step = StepPricing

	if c.Errors["seller_name"] != "Name must be at least 2 characters" || len(c.Errors) != 1 {
		t.Fatalf("clone errors mutated: %v", c.Errors)
	}
	if c.Images[0].URL != "u0" {
		t.Fatalf("clone images mutated: %v", c.Images)
	}
	if c.Draft.Title != "" || c.Step != FirstStep {
		t.Fatalf("clone draft/step mutated: %q step %d", c.Draft.Title, c.Step)
	}
}

func TestPendingSlotResolution(t *testing.T) {
	w := NewWizard()
	if err := w.SetSlot(0, ImageSlot{Pending: "front.jpg"}); err != nil {
		t.Fatalf("set pending slot: %v", err)
	}
	if w.PendingCount() != 1 {
		t.Fatalf("pending = %d, want 1", w.PendingCount())
	}
	// A pending slot counts toward the media step requirement but yields no URL.
	if got := len(w.ImageURLs()); got != 0 {
		t.Fatalf("unresolved slot leaked a URL, got %d", got)
	}

	if err := w.ResolveSlot(0, "https://cdn.example/front.jpg"); err != nil {
		t.Fatalf("resolve slot: %v", err)
	}
	if w.PendingCount() != 0 {
		t.Fatalf("pending = %d after resolve, want 0", w.PendingCount())
	}
	if urls := w.ImageURLs(); len(urls) != 1 || urls[0] != "https://cdn.example/front.jpg" {
		t.Fatalf("urls = %v", urls)
	}

	if err := w.ResolveSlot(3, "u"); err != ErrBadSlot {
		t.Fatalf("resolving an empty index should fail, got %v", err)
	}
}
