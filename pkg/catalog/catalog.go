// Package catalog holds the static product/category/condition reference
// data. It is seeded once and never mutated; consumers receive it by
// injection so tests can run against synthetic catalogs.
package catalog

import (
	"webmart-io/store/pkg/models"
)

type Catalog struct {
	products   []models.Product
	categories []models.Category
	conditions []models.ConditionType
	byID       map[string]*models.Product
	catName    map[string]string
}

// New builds a catalog over the given reference data.
func New(products []models.Product, categories []models.Category, conditions []models.ConditionType) *Catalog {
	c := &Catalog{
		products:   products,
		categories: categories,
		conditions: conditions,
		byID:       make(map[string]*models.Product, len(products)),
		catName:    make(map[string]string, len(categories)),
	}
	for i := range c.products {
		c.byID[c.products[i].ID] = &c.products[i]
	}
	for _, cat := range categories {
		c.catName[cat.ID] = cat.Name
	}
	return c
}

// Products returns the catalog in seed order.
func (c *Catalog) Products() []models.Product {
	return c.products
}

func (c *Catalog) Categories() []models.Category {
	return c.categories
}

func (c *Catalog) Conditions() []models.ConditionType {
	return c.conditions
}

// ByID resolves a product or nil when the id is unknown.
func (c *Catalog) ByID(id string) *models.Product {
	return c.byID[id]
}

// CategoryName resolves a category id to its display name, empty when
// unknown.
func (c *Catalog) CategoryName(id string) string {
	return c.catName[id]
}

// ShippingLabel summarizes a product's shipping options for display.
func ShippingLabel(p *models.Product) string {
	if p == nil || len(p.Shipping) == 0 {
		return "Pickup"
	}
	ships := false
	pickup := false
	for _, s := range p.Shipping {
		switch s {
		case models.ShippingOptionShip:
			ships = true
		case models.ShippingOptionPickup:
			pickup = true
		}
	}
	switch {
	case ships && pickup:
		return "Ship or pickup"
	case ships:
		return "Ships"
	}
	for _, s := range p.Shipping {
		if s == models.ShippingOptionDelivery {
			return "Local delivery"
		}
	}
	return string(p.Shipping[0])
}
