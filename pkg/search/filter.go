package search

import (
	"sort"
	"strings"

	"webmart-io/store/pkg/catalog"
	"webmart-io/store/pkg/models"
)

// Filter applies the criteria as a conjunction over the catalog and returns
// a new ordered slice; the catalog is never mutated. An empty criteria set
// returns the catalog in seed order.
func Filter(cat *catalog.Catalog, c Criteria) []models.Product {
	out := make([]models.Product, len(cat.Products()))
	copy(out, cat.Products())

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		out = keep(out, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Title), q) ||
				strings.Contains(strings.ToLower(p.Description), q) ||
				strings.Contains(strings.ToLower(cat.CategoryName(p.Category)), q)
		})
	}
	if len(c.Categories) > 0 {
		set := toSet(c.Categories)
		out = keep(out, func(p models.Product) bool { return set[p.Category] })
	}
	if len(c.Conditions) > 0 {
		set := toSet(c.Conditions)
		out = keep(out, func(p models.Product) bool { return set[string(p.Condition)] })
	}
	if c.MinPrice != nil {
		min := *c.MinPrice
		out = keep(out, func(p models.Product) bool { return p.Price >= min })
	}
	if c.MaxPrice != nil {
		max := *c.MaxPrice
		out = keep(out, func(p models.Product) bool { return p.Price <= max })
	}
	if loc := strings.ToLower(strings.TrimSpace(c.Location)); loc != "" {
		out = keep(out, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Location), loc)
		})
	}
	if c.MinRating != nil {
		min := *c.MinRating
		out = keep(out, func(p models.Product) bool { return p.Rating >= min })
	}

	sortProducts(out, c.Sort)
	return out
}

// sortProducts is stable: ties preserve the prior relative order, and
// relevance leaves catalog order untouched.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	case SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return float64(products[i].Reviews)*products[i].Rating > float64(products[j].Reviews)*products[j].Rating
		})
	}
}

func keep(in []models.Product, pred func(models.Product) bool) []models.Product {
	out := in[:0]
	for _, p := range in {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
