package catalog

import "souq/internal/domain"

func categoryOf(p domain.Product) string {
	if p.Category == "" {
		return "Other"
	}
	return p.Category
}

// InterleaveByCategory reorders one fetched page round-robin by category so
// adjacent items differ in category wherever bucket sizes allow. The output
// is always a permutation of the input: nothing is dropped or duplicated.
// Once the smaller buckets run dry an over-represented category will repeat
// adjacently; that is accepted, not worked around.
func InterleaveByCategory(products []domain.Product) []domain.Product {
	if len(products) < 2 {
		return products
	}

	var order []string
	buckets := map[string][]domain.Product{}
	for _, p := range products {
		cat := categoryOf(p)
		if _, seen := buckets[cat]; !seen {
			order = append(order, cat)
		}
		buckets[cat] = append(buckets[cat], p)
	}

	out := make([]domain.Product, 0, len(products))
	for len(out) < len(products) {
		for _, cat := range order {
			if b := buckets[cat]; len(b) > 0 {
				out = append(out, b[0])
				buckets[cat] = b[1:]
			}
		}
	}
	return out
}

// RotateToAvoidRepeat rotates a freshly interleaved page so its first item's
// category differs from the accumulated feed's last item. Relative order is
// preserved; a page that is entirely one category comes back unchanged since
// no rotation can fix the seam.
func RotateToAvoidRepeat(prevTail *domain.Product, page []domain.Product) []domain.Product {
	if len(page) == 0 || prevTail == nil {
		return page
	}
	seam := categoryOf(*prevTail)
	if categoryOf(page[0]) != seam {
		return page
	}
	for i := 1; i < len(page); i++ {
		if categoryOf(page[i]) != seam {
			rotated := make([]domain.Product, 0, len(page))
			rotated = append(rotated, page[i:]...)
			rotated = append(rotated, page[:i]...)
			return rotated
		}
	}
	return page
}
