package search

import (
	"strings"

	"webmart-io/store/pkg/catalog"
)

// SUGGESTION_LIMIT caps the autocomplete dropdown.
const SUGGESTION_LIMIT = 6

// Suggestion is one autocomplete entry for search-as-you-type.
type Suggestion struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
}

// Index is the precomputed suggestion list, built once per catalog.
type Index struct {
	items []Suggestion
}

// BuildIndex flattens the catalog for suggestion matching.
func BuildIndex(cat *catalog.Catalog) *Index {
	items := make([]Suggestion, 0, len(cat.Products()))
	for _, p := range cat.Products() {
		name := cat.CategoryName(p.Category)
		if name == "" {
			name = "Other"
		}
		items = append(items, Suggestion{
			ID:       p.ID,
			Title:    p.Title,
			Category: name,
			Price:    p.Price,
			Location: p.Location,
		})
	}
	return &Index{items: items}
}

// Suggest matches the query against title or category name, case
// insensitively. Empty queries yield nothing.
func (ix *Index) Suggest(query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Suggestion
	for _, it := range ix.items {
		if strings.Contains(strings.ToLower(it.Title), q) || strings.Contains(strings.ToLower(it.Category), q) {
			out = append(out, it)
			if len(out) == SUGGESTION_LIMIT {
				break
			}
		}
	}
	return out
}
