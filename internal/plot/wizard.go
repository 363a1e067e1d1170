package plot

import (
	"errors"
)

// Step is one of the ten wizard sections, in fixed order.
type Step int

const (
	StepSellerDetails Step = iota + 1
	StepBasicDetails
	StepLegality
	StepLocation
	StepPricing
	StepAmenities
	StepMedia
	StepAdditional
	StepBoost
	StepReview

	FirstStep = StepSellerDetails
	LastStep  = StepReview
)

// Image slot limits: four mandatory slots plus an open-ended additional list.
const (
	MandatoryImages = 4
	MaxImages       = 20
)

var (
	ErrTooManyImages = errors.New("Maximum 20 images allowed")
	ErrBadSlot       = errors.New("invalid image slot")
)

func (s Step) Title() string {
	switch s {
	case StepSellerDetails:
		return "Seller Details"
	case StepBasicDetails:
		return "Basic Plot Details"
	case StepLegality:
		return "Land Legality & Documents"
	case StepLocation:
		return "Location Details"
	case StepPricing:
		return "Pricing Details"
	case StepAmenities:
		return "Amenities & Features"
	case StepMedia:
		return "Photos & Media"
	case StepAdditional:
		return "Additional Details"
	case StepBoost:
		return "Verification & Boost Options"
	case StepReview:
		return "Final Review & Publish"
	default:
		return ""
	}
}

func (s Step) Subtitle() string {
	switch s {
	case StepSellerDetails:
		return "Provide your contact and verification details"
	case StepBasicDetails:
		return "Enter basic information about the plot"
	case StepLegality:
		return "Upload legal documents and ownership details"
	case StepLocation:
		return "Specify the exact location"
	case StepPricing:
		return "Set your pricing and payment terms"
	case StepAmenities:
		return "Select available amenities"
	case StepMedia:
		return "Upload property images and media"
	case StepAdditional:
		return "Add any additional information"
	case StepBoost:
		return "Boost your listing visibility"
	case StepReview:
		return "Review and publish your listing"
	default:
		return ""
	}
}

// ImageSlot is one entry of the wizard's image list: either an already
// uploaded remote reference (URL set) or a pending local file (Pending set).
type ImageSlot struct {
	URL     string `json:"url,omitempty"`
	Pending string `json:"pending,omitempty"`
}

func (s ImageSlot) Empty() bool { return s.URL == "" && s.Pending == "" }

// Wizard drives the ten-step listing form: a linear state machine whose only
// transitions are Next (validated) and Previous (unconditional).
type Wizard struct {
	Step   Step              `json:"step"`
	Draft  Draft             `json:"draft"`
	Errors map[string]string `json:"errors"`
	Images []ImageSlot       `json:"images"`

	// EditID is set when the wizard edits an existing listing.
	EditID string `json:"edit_id,omitempty"`
}

// NewWizard opens a fresh wizard at step 1 with an empty draft.
func NewWizard() *Wizard {
	return &Wizard{
		Step:   FirstStep,
		Draft:  NewDraft(),
		Errors: map[string]string{},
	}
}

// Clone returns an independent copy. Draft is a plain value; the errors map
// and image slice are duplicated so the copy is safe to read while the
// original keeps mutating.
func (w *Wizard) Clone() *Wizard {
	c := *w
	c.Errors = make(map[string]string, len(w.Errors))
	for k, v := range w.Errors {
		c.Errors[k] = v
	}
	c.Images = append([]ImageSlot(nil), w.Images...)
	return &c
}

// HydrateForEdit loads a stored listing into the wizard: full draft plus the
// existing media references as already-resolved slots.
func (w *Wizard) HydrateForEdit(editID string, d Draft, imageURLs []string) {
	w.EditID = editID
	w.Draft = d
	w.Images = w.Images[:0]
	for _, u := range imageURLs {
		w.Images = append(w.Images, ImageSlot{URL: u})
	}
}

// PrefillSeller copies seller identity from the user's most recent listing.
// When type, name and phone are all present the wizard opens directly at the
// basic details step, since step 1 would only repeat known information.
func (w *Wizard) PrefillSeller(sellerType, name, phonePrimary, phoneSecondary, email string) {
	w.Draft.SellerType = sellerType
	w.Draft.SellerName = name
	w.Draft.PhonePrimary = phonePrimary
	w.Draft.PhoneSecondary = phoneSecondary
	w.Draft.SellerEmail = email

	if sellerType != "" && name != "" && phonePrimary != "" {
		w.Step = StepBasicDetails
	}
}

// Change applies a single field edit to the draft.
func (w *Wizard) Change(fc FieldChange) error {
	d, err := Apply(w.Draft, fc)
	if err != nil {
		return err
	}
	w.Draft = d
	return nil
}

// Next validates the current step and advances on success. On failure the
// wizard stays put and Errors carries the per-field messages. The media step
// additionally requires at least four image slots (pending or resolved).
func (w *Wizard) Next() bool {
	res := ValidateStep(w.Step, &w.Draft)
	if !res.OK {
		w.Errors = res.Errors
		return false
	}

	if w.Step == StepMedia && w.ImageCount() < MandatoryImages {
		w.Errors = map[string]string{
			"images": "Please upload at least 4 images to continue",
		}
		return false
	}

	w.Errors = map[string]string{}
	if w.Step < LastStep {
		w.Step++
	}
	return true
}

// Previous moves back one step. Never validated: backward navigation cannot
// be blocked. A no-op at step 1.
func (w *Wizard) Previous() {
	if w.Step > FirstStep {
		w.Step--
	}
}

// Restart jumps back to step 1 for corrections, keeping all entered data.
func (w *Wizard) Restart() {
	w.Step = FirstStep
	w.Errors = map[string]string{}
}

// SetSlot fills or replaces one of the four mandatory slots. A slot may only
// be set at an occupied index or immediately after the last occupied one, so
// the list never holds gaps.
func (w *Wizard) SetSlot(i int, slot ImageSlot) error {
	if i < 0 || i >= MandatoryImages {
		return ErrBadSlot
	}
	if slot.Empty() {
		return ErrBadSlot
	}
	switch {
	case i < len(w.Images):
		w.Images[i] = slot
	case i == len(w.Images):
		w.Images = append(w.Images, slot)
	default:
		return ErrBadSlot
	}
	return nil
}

// AddImages appends to the open-ended additional list, enforcing the overall
// cap across both groups. On overflow nothing is added.
func (w *Wizard) AddImages(slots ...ImageSlot) error {
	if len(w.Images)+len(slots) > MaxImages {
		return ErrTooManyImages
	}
	for _, s := range slots {
		if s.Empty() {
			return ErrBadSlot
		}
	}
	w.Images = append(w.Images, slots...)
	return nil
}

// RemoveImage deletes the slot at i and compacts the list.
func (w *Wizard) RemoveImage(i int) error {
	if i < 0 || i >= len(w.Images) {
		return ErrBadSlot
	}
	w.Images = append(w.Images[:i], w.Images[i+1:]...)
	return nil
}

// ImageCount counts filled slots, pending and resolved alike.
func (w *Wizard) ImageCount() int {
	return len(w.Images)
}

// ResolveSlot marks a pending slot as uploaded.
func (w *Wizard) ResolveSlot(i int, url string) error {
	if i < 0 || i >= len(w.Images) {
		return ErrBadSlot
	}
	w.Images[i] = ImageSlot{URL: url}
	return nil
}

// ImageURLs returns the resolved remote references in slot order.
func (w *Wizard) ImageURLs() []string {
	urls := make([]string, 0, len(w.Images))
	for _, s := range w.Images {
		if s.URL != "" {
			urls = append(urls, s.URL)
		}
	}
	return urls
}

// PendingCount reports how many slots still await upload.
func (w *Wizard) PendingCount() int {
	n := 0
	for _, s := range w.Images {
		if s.Pending != "" && s.URL == "" {
			n++
		}
	}
	return n
}
