package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
)

func validNewListing() models.NewListing {
	return models.NewListing{
		Title:       "Vintage road bike, recently tuned",
		Category:    "sports",
		Condition:   models.ConditionGood,
		Location:    "Austin, TX",
		Price:       320,
		Description: "A well-kept steel frame road bike with fresh tires, new chain, and a recent full tune-up.",
		Shipping:    []models.ShippingOption{models.ShippingOptionPickup},
		Photos:      []models.Photo{{ID: "img_1", Name: "bike.jpg", Ref: "images/bike.jpg"}},
	}
}

func TestPublishMintsIDAndSlug(t *testing.T) {
	ls := NewListingService(kv.NewMemory(), kv.NewMemory())
	ctx := context.Background()

	listing, err := ls.Publish(ctx, validNewListing(), "Maya C.")
	require.NoError(t, err)

	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "vintage-road-bike-recently-tuned", listing.Slug)
	assert.Equal(t, models.ListingStateActive, listing.Status)
	assert.Equal(t, "Maya C.", listing.SellerName)
	assert.False(t, listing.CreatedAt.IsZero())
}

func TestPublishRejectsInvalidListing(t *testing.T) {
	ls := NewListingService(kv.NewMemory(), kv.NewMemory())
	ctx := context.Background()

	nl := validNewListing()
	nl.Description = "too short"
	_, err := ls.Publish(ctx, nl, "Maya C.")
	assert.Error(t, err)
	assert.Empty(t, ls.Listings(ctx))
}

func TestPublishClearsDraft(t *testing.T) {
	ls := NewListingService(kv.NewMemory(), kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, ls.SaveDraft(ctx, models.Draft{Listing: validNewListing()}))
	_, ok := ls.LoadDraft(ctx)
	require.True(t, ok)

	_, err := ls.Publish(ctx, validNewListing(), "Maya C.")
	require.NoError(t, err)

	_, ok = ls.LoadDraft(ctx)
	assert.False(t, ok)
}

func TestListingsMostRecentFirst(t *testing.T) {
	ls := NewListingService(kv.NewMemory(), kv.NewMemory())
	ctx := context.Background()

	first, err := ls.Publish(ctx, validNewListing(), "A")
	require.NoError(t, err)
	second, err := ls.Publish(ctx, validNewListing(), "B")
	require.NoError(t, err)

	all := ls.Listings(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestDeleteListing(t *testing.T) {
	ls := NewListingService(kv.NewMemory(), kv.NewMemory())
	ctx := context.Background()

	listing, err := ls.Publish(ctx, validNewListing(), "A")
	require.NoError(t, err)

	require.NoError(t, ls.DeleteListing(ctx, listing.ID))
	assert.Empty(t, ls.Listings(ctx))

	assert.ErrorIs(t, ls.DeleteListing(ctx, listing.ID), ErrNotFound)
}

func TestDraftRoundTrip(t *testing.T) {
	ls := NewListingService(kv.NewMemory(), kv.NewMemory())
	ctx := context.Background()

	nl := validNewListing()
	require.NoError(t, ls.SaveDraft(ctx, models.Draft{Listing: nl}))

	draft, ok := ls.LoadDraft(ctx)
	require.True(t, ok)
	assert.Equal(t, nl.Title, draft.Listing.Title)
	assert.False(t, draft.SavedAt.IsZero())

	ls.ClearDraft(ctx)
	_, ok = ls.LoadDraft(ctx)
	assert.False(t, ok)
}
