package wizard

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"webmart-io/store/internal/validators"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/services"
	"webmart-io/store/pkg/util"
)

// Sell step indexes.
const (
	SellStepDetails     = 1
	SellStepPrice       = 2
	SellStepDescription = 3
	SellStepPhotos      = 4
	SellStepShipping    = 5
	SellStepReview      = 6

	SellSteps = 6
)

// AUTOSAVE_WAIT is the draft autosave quiet period.
const AUTOSAVE_WAIT = 350 * time.Millisecond

var ErrPhotoLimit = errors.New("listings carry 1 to 8 photos")

// Sell drives the 6-step listing flow over a working NewListing. Edits are
// autosaved as a draft through a coalescing timer; publishing clears the
// draft.
type Sell struct {
	machine  *Machine
	listings services.ListingService
	autosave *util.Debouncer

	Listing models.NewListing
}

// NewSell wires the sell wizard over the listing service.
func NewSell(listings services.ListingService) *Sell {
	s := &Sell{
		listings: listings,
		autosave: util.NewDebouncer(AUTOSAVE_WAIT),
	}
	s.machine = NewMachine(SellSteps, map[int]Gate{
		SellStepDetails:     s.gateDetails,
		SellStepPrice:       s.gatePrice,
		SellStepDescription: s.gateDescription,
		SellStepPhotos:      s.gatePhotos,
		SellStepShipping:    s.gateShipping,
	})
	return s
}

func (s *Sell) Step() int                                { return s.machine.Step() }
func (s *Sell) Next(ctx context.Context) error           { return s.machine.Next(ctx) }
func (s *Sell) Prev()                                    { s.machine.Prev() }
func (s *Sell) JumpTo(ctx context.Context, st int) error { return s.machine.JumpTo(ctx, st) }

// Update applies an edit to the working listing and schedules a draft
// autosave; rapid edits coalesce into one write.
func (s *Sell) Update(ctx context.Context, edit func(*models.NewListing)) {
	edit(&s.Listing)
	snapshot := s.Listing
	s.autosave.Trigger(func() {
		if err := s.listings.SaveDraft(ctx, models.Draft{Listing: snapshot}); err != nil {
			util.LogError("draft autosave failed", err)
		}
	})
}

// RestoreDraft loads a previously autosaved draft into the working copy.
func (s *Sell) RestoreDraft(ctx context.Context) bool {
	draft, ok := s.listings.LoadDraft(ctx)
	if ok {
		s.Listing = draft.Listing
	}
	return ok
}

// ClearDraft drops the working copy and the saved draft.
func (s *Sell) ClearDraft(ctx context.Context) {
	s.autosave.Stop()
	s.Listing = models.NewListing{}
	s.listings.ClearDraft(ctx)
	s.machine.Reset()
}

// AddPhoto appends a photo reference; adds beyond the cap are rejected and
// the prior set is unchanged.
func (s *Sell) AddPhoto(ctx context.Context, name, ref string) error {
	if len(s.Listing.Photos) >= services.PHOTO_MAX {
		return ErrPhotoLimit
	}
	s.Update(ctx, func(nl *models.NewListing) {
		nl.Photos = append(nl.Photos, models.Photo{ID: util.NewID("img"), Name: name, Ref: ref})
	})
	return nil
}

func (s *Sell) RemovePhoto(ctx context.Context, photoID string) {
	s.Update(ctx, func(nl *models.NewListing) {
		kept := nl.Photos[:0]
		for _, p := range nl.Photos {
			if p.ID != photoID {
				kept = append(kept, p)
			}
		}
		nl.Photos = kept
	})
}

// PromoteCover moves a photo to the front; the first photo is the cover.
func (s *Sell) PromoteCover(ctx context.Context, photoID string) {
	s.Update(ctx, func(nl *models.NewListing) {
		for i, p := range nl.Photos {
			if p.ID == photoID && i > 0 {
				nl.Photos = append([]models.Photo{p}, append(nl.Photos[:i:i], nl.Photos[i+1:]...)...)
				return
			}
		}
	})
}

func (s *Sell) gateDetails(_ context.Context) error {
	specs := []validators.FieldSpec{
		{Name: "title", Required: true, MinLength: 8},
		{Name: "category", Required: true},
		{Name: "condition", Required: true},
		{Name: "location", Required: true},
	}
	values := map[string]string{
		"title":     s.Listing.Title,
		"category":  s.Listing.Category,
		"condition": string(s.Listing.Condition),
		"location":  s.Listing.Location,
	}
	if errs := validators.CheckAll(specs, values); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (s *Sell) gatePrice(_ context.Context) error {
	min := 1.0
	spec := validators.FieldSpec{Name: "price", Required: true, Min: &min}
	raw := ""
	if s.Listing.Price > 0 {
		raw = strconv.FormatFloat(s.Listing.Price, 'f', -1, 64)
	}
	return spec.Check(raw)
}

func (s *Sell) gateDescription(_ context.Context) error {
	spec := validators.FieldSpec{Name: "description", Required: true, MinLength: 40}
	return spec.Check(s.Listing.Description)
}

func (s *Sell) gatePhotos(_ context.Context) error {
	n := len(s.Listing.Photos)
	if n < services.PHOTO_MIN || n > services.PHOTO_MAX {
		return ErrPhotoLimit
	}
	return nil
}

func (s *Sell) gateShipping(_ context.Context) error {
	if len(s.Listing.Shipping) == 0 {
		return errors.New("select at least one shipping option")
	}
	return nil
}

// Publish finalizes the listing: every step's gate is re-validated, the
// record is created, and the draft is cleared. The wizard resets for the
// next listing.
func (s *Sell) Publish(ctx context.Context, sellerName string) (*models.Listing, error) {
	if err := s.machine.ValidateAll(ctx); err != nil {
		return nil, err
	}
	s.autosave.Stop()
	listing, err := s.listings.Publish(ctx, s.Listing, sellerName)
	if err != nil {
		return nil, err
	}
	s.Listing = models.NewListing{}
	s.machine.Reset()
	return listing, nil
}
