package models

import "math"

const (
	// DefaultPageLimit is used when a ListRequest carries no limit.
	DefaultPageLimit = 10
	// MaxPageLimit caps the number of records returned by one page.
	MaxPageLimit = 100
	// MaxPage keeps Offset within int for every accepted limit.
	MaxPage = math.MaxInt / MaxPageLimit
)

// ListRequest describes one page of a filtered user listing.
// Zero-valued filters are not applied.
type ListRequest struct {
	// Query is a free-text search over email, name, role and verification.
	Query string `json:"q,omitempty"`

	// Role restricts the listing to one role.
	Role Role `json:"role,omitempty"`

	// Verified restricts the listing by verification state when non-nil.
	Verified *bool `json:"verified,omitempty"`

	// Page is 1-based.
	Page int `json:"page"`

	// Limit is the page size.
	Limit int `json:"limit"`
}

// Normalize clamps Page and Limit into their accepted ranges.
func (r ListRequest) Normalize() ListRequest {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Page > MaxPage {
		r.Page = MaxPage
	}
	if r.Limit < 1 {
		r.Limit = DefaultPageLimit
	}
	if r.Limit > MaxPageLimit {
		r.Limit = MaxPageLimit
	}
	return r
}

// Offset returns the number of records skipped before this page.
func (r ListRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Page is one page of users together with paging metadata.
type Page struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Pages int    `json:"pages"`
}

// NewPage builds a Page for req, computing the page count from total.
func NewPage(users []User, total int64, req ListRequest) Page {
	pages := 0
	if req.Limit > 0 {
		pages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}
	if users == nil {
		users = []User{}
	}

	return Page{
		Users: users,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
		Pages: pages,
	}
}
