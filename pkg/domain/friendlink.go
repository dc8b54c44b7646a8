package domain

import "time"

// FriendLink is a link to a friend's site shown on the blog once approved.
type FriendLink struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
	Email       string `json:"email,omitempty"`

	Approved   bool  `json:"isApproved"`
	SortOrder  int   `json:"sortOrder"`
	ClickCount int64 `json:"clickCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NeedsPreview reports whether the link lacks data that a URL preview can fill.
func (f FriendLink) NeedsPreview() bool {
	return f.Logo == "" || f.Description == ""
}
