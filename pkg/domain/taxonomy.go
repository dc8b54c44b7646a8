package domain

import "time"

// Category groups articles. Every article belongs to at most one category.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	// Color is a hex color such as #1E90FF used by the frontend.
	Color string `json:"color,omitempty"`
	// ArticleCount is the number of articles in the category. It is maintained
	// by the storage layer whenever articles change.
	ArticleCount int64 `json:"articleCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Tag labels articles. Articles and tags are in a many-to-many relation.
type Tag struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Color        string `json:"color,omitempty"`
	ArticleCount int64  `json:"articleCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
