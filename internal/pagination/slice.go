package pagination

// TotalPages returns ceil(totalRecords / pageSize).
// Zero records give zero pages; callers that render use DisplayPages.
func TotalPages(totalRecords, pageSize int) int {
	if totalRecords <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalRecords + pageSize - 1) / pageSize
}

// DisplayPages is TotalPages with an empty set counted as one page.
func DisplayPages(totalRecords, pageSize int) int {
	if pages := TotalPages(totalRecords, pageSize); pages > 0 {
		return pages
	}
	return 1
}

// VisibleSlice returns records[(page-1)*pageSize : page*pageSize], cut short
// on the last page. A page outside the record set yields an empty slice.
// The result is capacity-limited so appending to it cannot overwrite the
// records that follow.
func VisibleSlice[T any](records []T, pageSize, page int) []T {
	if pageSize <= 0 || page < MinPage {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []T{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}

	return records[start:end:end]
}
