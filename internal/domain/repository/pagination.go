package repository

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageWindow is a normalized pagination request.
type PageWindow struct {
	Page   int
	Limit  int
	Offset int
}

// CountOnly reports a zero limit: callers return no rows but still count.
func (w PageWindow) CountOnly() bool {
	return w.Limit == 0
}

// NormalizePage is the clamping policy every UserRepository applies:
// page below 1 or absent becomes 1, limit absent or negative becomes
// DefaultLimit, limit 0 requests only the total, and limit is capped at MaxLimit.
// An offset that would overflow int is pinned to math.MaxInt.
func NormalizePage(page, limit *int) PageWindow {
	p := DefaultPage
	if page != nil && *page > 1 {
		p = *page
	}

	l := DefaultLimit
	if limit != nil && *limit >= 0 {
		l = min(*limit, MaxLimit)
	}

	offset := (p - 1) * l
	if l > 0 && p-1 > math.MaxInt/l {
		// Past any storable row; the window is empty.
		offset = math.MaxInt
	}

	return PageWindow{
		Page:   p,
		Limit:  l,
		Offset: offset,
	}
}

// TotalPages is the number of pages of size limit needed for total rows.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}

	return (total + int64(limit) - 1) / int64(limit)
}
