package services

import (
	"context"
	"time"

	slug2 "github.com/gosimple/slug"
	"github.com/pkg/errors"

	"webmart-io/store/internal/validators"
	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/util"
)

// ListingServiceImpl implements the ListingService interface. Published
// listings live in the durable scope; the autosaved draft in the session
// scope.
type ListingServiceImpl struct {
	durable kv.Store
	session kv.Store
	now     func() time.Time
}

// NewListingService creates a new instance of ListingService.
func NewListingService(durable, session kv.Store) ListingService {
	return &ListingServiceImpl{durable: durable, session: session, now: time.Now}
}

// Publish validates the working listing, mints id and slug, and prepends
// the new record. The draft is cleared on success.
func (ls *ListingServiceImpl) Publish(ctx context.Context, nl models.NewListing, sellerName string) (*models.Listing, error) {
	if err := validators.Validate.Struct(&nl); err != nil {
		return nil, errors.Wrap(err, "invalid listing")
	}

	now := ls.now()
	listing := models.Listing{
		ID:         util.NewID("l"),
		Slug:       slug2.Make(nl.Title),
		Status:     models.ListingStateActive,
		CreatedAt:  now,
		UpdatedAt:  now,
		NewListing: nl,
		SellerName: sellerName,
	}

	all := append([]models.Listing{listing}, ls.Listings(ctx)...)
	if err := ls.durable.Set(ctx, LISTINGS_KEY, all); err != nil {
		return nil, errors.Wrap(err, "failed to persist listing")
	}
	ls.ClearDraft(ctx)
	return &listing, nil
}

// Listings returns published listings, most recent first.
func (ls *ListingServiceImpl) Listings(ctx context.Context) []models.Listing {
	var listings []models.Listing
	if !ls.durable.Get(ctx, LISTINGS_KEY, &listings) {
		return []models.Listing{}
	}
	return listings
}

// DeleteListing removes a listing by id.
func (ls *ListingServiceImpl) DeleteListing(ctx context.Context, id string) error {
	all := ls.Listings(ctx)
	kept := all[:0]
	for _, l := range all {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(all) {
		return ErrNotFound
	}
	return ls.durable.Set(ctx, LISTINGS_KEY, kept)
}

// SaveDraft overwrites the single draft snapshot.
func (ls *ListingServiceImpl) SaveDraft(ctx context.Context, draft models.Draft) error {
	draft.SavedAt = ls.now()
	return ls.session.Set(ctx, DRAFT_KEY, draft)
}

// LoadDraft reports the saved draft, if any. Corrupt drafts read as absent.
func (ls *ListingServiceImpl) LoadDraft(ctx context.Context) (models.Draft, bool) {
	var draft models.Draft
	ok := ls.session.Get(ctx, DRAFT_KEY, &draft)
	return draft, ok
}

func (ls *ListingServiceImpl) ClearDraft(ctx context.Context) {
	if err := ls.session.Delete(ctx, DRAFT_KEY); err != nil {
		util.LogError("failed to clear draft", err)
	}
}
