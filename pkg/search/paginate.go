package search

import "webmart-io/store/pkg/models"

// PAGE_SIZE is the browse grid page size.
const PAGE_SIZE = 9

// Page slices one page out of a filtered result set. Pages are 1-based;
// out-of-range pages return an empty slice.
func Page(products []models.Product, page, size int) []models.Product {
	if size <= 0 {
		size = PAGE_SIZE
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(products) {
		return nil
	}
	end := start + size
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// PageCount reports how many pages a result set spans, at least 1.
func PageCount(total, size int) int {
	if size <= 0 {
		size = PAGE_SIZE
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}
