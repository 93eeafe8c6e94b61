package pagination

// Normalize clamps a (page, limit) pair to sane values. Page numbers start at 1.
func Normalize(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// Offset is the number of rows to skip for the given window.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

// Pages is ceil(total/limit). A request past the last page is still valid and
// yields an empty item list with the same total.
func Pages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
