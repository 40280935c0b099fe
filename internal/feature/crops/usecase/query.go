package usecase

import (
	"strconv"
	"strings"

	"cropscience_backend/internal/feature/crops/domain/entity"
)

// Pagination defaults and bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// orderFields maps accepted ordering keys to column names. Anything else
// silently falls back to the default ordering.
var orderFields = map[string]string{
	"name":                 "name",
	"created_at":           "created_at",
	"growth_duration_days": "growth_duration_days",
}

// CropQuery is a normalized crop list query. Build one with NewCropQuery;
// every field is safe to hand to the repository as-is.
type CropQuery struct {
	// CategoryID filters on the exact category; nil imposes no constraint.
	CategoryID *uint

	// WaterRequirements filters on the exact stored value; empty imposes
	// no constraint. Unknown values are passed through and match nothing.
	WaterRequirements entity.WaterRequirement

	// Search is a case-insensitive substring matched against name OR
	// scientific name; empty imposes no constraint.
	Search string

	// OrderField is one of the whitelisted column names.
	OrderField string
	OrderDesc  bool

	// Page is 1-based. PageSize is clamped to MaxPageSize.
	Page     int
	PageSize int
}

// NewCropQuery normalizes raw query parameters into a CropQuery. The
// parsing is deliberately permissive: malformed or unrecognized values
// degrade to defaults instead of erroring.
func NewCropQuery(category, water, search, ordering, page, pageSize string) CropQuery {
	q := CropQuery{
		WaterRequirements: entity.WaterRequirement(water),
		Search:            strings.TrimSpace(search),
		OrderField:        "name",
		Page:              1,
		PageSize:          DefaultPageSize,
	}

	if id, err := strconv.ParseUint(category, 10, 32); err == nil {
		cid := uint(id)
		q.CategoryID = &cid
	}

	field := ordering
	desc := false
	if strings.HasPrefix(field, "-") {
		field = strings.TrimPrefix(field, "-")
		desc = true
	}
	if col, ok := orderFields[field]; ok {
		q.OrderField = col
		q.OrderDesc = desc
	}

	if n, err := strconv.Atoi(page); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(pageSize); err == nil && n > 0 {
		if n > MaxPageSize {
			n = MaxPageSize
		}
		q.PageSize = n
	}

	return q
}

// Offset returns the row offset of the requested page.
func (q CropQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// CropPage is one page of an ordered, filtered crop listing.
type CropPage struct {
	Items []entity.Crop
	Total int64
	Query CropQuery
}

// HasNext reports whether a later page exists.
func (p CropPage) HasNext() bool {
	return int64(p.Query.Page*p.Query.PageSize) < p.Total
}

// HasPrevious reports whether an earlier page exists.
func (p CropPage) HasPrevious() bool {
	return p.Query.Page > 1
}

// PreviousPage returns the page a previous link should point to. For a
// request past the end of the listing it clamps to the last populated page
// instead of the (equally empty) page before the requested one.
func (p CropPage) PreviousPage() int {
	prev := p.Query.Page - 1
	if last := p.lastPage(); prev > last {
		prev = last
	}
	return prev
}

// lastPage returns the number of the last populated page, at least 1.
func (p CropPage) lastPage() int {
	if p.Query.PageSize <= 0 {
		return 1
	}
	last := int((p.Total + int64(p.Query.PageSize) - 1) / int64(p.Query.PageSize))
	if last < 1 {
		last = 1
	}
	return last
}
