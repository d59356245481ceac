// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recipe

// NumPages returns how many pages of size pageSize hold n items.
func NumPages(n, pageSize int) int {
	if n <= 0 || pageSize <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Page returns the 1-based page of items. Pages past the end are empty.
func Page[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return nil
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// ClampPage keeps page within [1, NumPages(n, pageSize)]. It returns 1 when
// there are no pages.
func ClampPage(page, n, pageSize int) int {
	last := NumPages(n, pageSize)
	if page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}
