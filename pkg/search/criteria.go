// Package search is the catalog query engine: pure filtering, stable
// sorting, pagination slicing, and the flat criteria wire format used for
// shareable browse state.
package search

import (
	"net/url"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
	SortNewest     SortKey = "newest"
	SortPopular    SortKey = "popular"
)

// ParseSortKey maps free text onto a known sort key, defaulting to
// relevance.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNewest, SortPopular:
		return SortKey(s)
	}
	return SortRelevance
}

// Criteria describes one browse/search request. Every field is optional;
// the zero value matches the whole catalog in seed order.
type Criteria struct {
	Query      string
	Categories []string
	Conditions []string
	MinPrice   *float64
	MaxPrice   *float64
	Location   string
	MinRating  *float64
	Sort       SortKey
	Page       int
}

// Encode flattens criteria into string-keyed form. Absent and default
// values are omitted rather than written as empty.
func (c Criteria) Encode() url.Values {
	v := url.Values{}
	if q := strings.TrimSpace(c.Query); q != "" {
		v.Set("q", q)
	}
	if len(c.Categories) > 0 {
		v.Set("category", strings.Join(c.Categories, ","))
	}
	if len(c.Conditions) > 0 {
		v.Set("condition", strings.Join(c.Conditions, ","))
	}
	if c.MinPrice != nil {
		v.Set("minPrice", formatNumber(*c.MinPrice))
	}
	if c.MaxPrice != nil {
		v.Set("maxPrice", formatNumber(*c.MaxPrice))
	}
	if loc := strings.TrimSpace(c.Location); loc != "" {
		v.Set("location", loc)
	}
	if c.MinRating != nil {
		v.Set("minRating", formatNumber(*c.MinRating))
	}
	if c.Sort != "" && c.Sort != SortRelevance {
		v.Set("sort", string(c.Sort))
	}
	if c.Page > 1 {
		v.Set("page", strconv.Itoa(c.Page))
	}
	return v
}

// DecodeCriteria rebuilds criteria from the flat form. Unparseable numeric
// values are treated as absent, never as errors.
func DecodeCriteria(v url.Values) Criteria {
	c := Criteria{
		Query:    v.Get("q"),
		Location: v.Get("location"),
		Sort:     ParseSortKey(v.Get("sort")),
		Page:     1,
	}
	if raw := v.Get("category"); raw != "" {
		c.Categories = splitSet(raw)
	}
	if raw := v.Get("condition"); raw != "" {
		c.Conditions = splitSet(raw)
	}
	c.MinPrice = parseNumber(v.Get("minPrice"))
	c.MaxPrice = parseNumber(v.Get("maxPrice"))
	c.MinRating = parseNumber(v.Get("minRating"))
	if p, err := strconv.Atoi(v.Get("page")); err == nil && p > 1 {
		c.Page = p
	}
	return c
}

func splitSet(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseNumber(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
