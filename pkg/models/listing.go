package models

import (
	"errors"
	"fmt"
	"time"
)

type ListingStateType string

const (
	ListingStateActive  ListingStateType = "active"
	ListingStateSold    ListingStateType = "sold"
	ListingStatePaused  ListingStateType = "paused"
	ListingStateRemoved ListingStateType = "removed"
)

func (ListingStateType) ParseListingStateType(state string) (ListingStateType, error) {
	switch state {
	case "active":
		return ListingStateActive, nil
	case "sold":
		return ListingStateSold, nil
	case "paused":
		return ListingStatePaused, nil
	case "removed":
		return ListingStateRemoved, nil
	}

	err := fmt.Sprintf("Invalid listing state from request: %v", state)

	return ListingStateActive, errors.New(err)
}

// Photo is an opaque ordered reference; upload/encoding is a collaborator
// concern. The first photo is the cover.
type Photo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Ref  string `json:"ref"`
}

// NewListing is the sell wizard's working data.
type NewListing struct {
	Title          string           `json:"title" validate:"required,min=8"`
	Category       string           `json:"category" validate:"required"`
	Condition      ConditionType    `json:"condition" validate:"required"`
	Location       string           `json:"location" validate:"required"`
	Price          float64          `json:"price" validate:"required,gt=0"`
	OfferMin       float64          `json:"offerMin,omitempty"`
	AcceptOffers   bool             `json:"acceptOffers"`
	Description    string           `json:"description" validate:"required,min=40"`
	Shipping       []ShippingOption `json:"shipping" validate:"min=1"`
	DeliveryRadius string           `json:"deliveryRadius,omitempty"`
	Photos         []Photo          `json:"photos" validate:"min=1,max=8"`
}

// Listing is a published record; mutable only via explicit delete.
type Listing struct {
	ID        string           `json:"id"`
	Slug      string           `json:"slug"`
	Status    ListingStateType `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
	NewListing
	SellerName string `json:"sellerName"`
}

// Draft is the single autosaved sell-wizard snapshot, overwritten on each
// autosave tick and deleted on publish or explicit clear.
type Draft struct {
	Listing NewListing `json:"listing"`
	SavedAt time.Time  `json:"savedAt"`
}
