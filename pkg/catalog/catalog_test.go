package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webmart-io/store/pkg/models"
)

func TestSeedShape(t *testing.T) {
	cat := Seed()

	assert.Len(t, cat.Products(), 18)
	assert.Len(t, cat.Categories(), 10)
	assert.Len(t, cat.Conditions(), 4)
}

func TestByID(t *testing.T) {
	cat := Seed()

	p := cat.ByID("p001")
	require.NotNil(t, p)
	assert.Equal(t, 799.0, p.Price)

	assert.Nil(t, cat.ByID("p999"))
}

func TestCategoryName(t *testing.T) {
	cat := Seed()

	assert.Equal(t, "Electronics", cat.CategoryName("electronics"))
	assert.Equal(t, "Home & Garden", cat.CategoryName("home"))
	assert.Equal(t, "", cat.CategoryName("nope"))
}

func TestShippingLabel(t *testing.T) {
	cat := Seed()

	// p001 ships and offers pickup; p002 only ships; p005 pickup only.
	assert.Equal(t, "Ship or pickup", ShippingLabel(cat.ByID("p001")))
	assert.Equal(t, "Ships", ShippingLabel(cat.ByID("p002")))
	assert.Equal(t, string(models.ShippingOptionPickup), ShippingLabel(cat.ByID("p005")))

	assert.Equal(t, "Pickup", ShippingLabel(nil))
	assert.Equal(t, "Pickup", ShippingLabel(&models.Product{}))
}

func TestShippingLabelDelivery(t *testing.T) {
	p := &models.Product{Shipping: []models.ShippingOption{models.ShippingOptionDelivery}}
	assert.Equal(t, "Local delivery", ShippingLabel(p))
}
