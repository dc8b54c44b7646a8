package domain

import "time"

// Article is a blog post.
type Article struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary,omitempty"`
	Content    string `json:"content"`
	Slug       string `json:"slug"`
	CoverImage string `json:"coverImage,omitempty"`

	Published bool `json:"isPublished"`
	Pinned    bool `json:"isPinned"`

	ViewCount    int64 `json:"viewCount"`
	LikeCount    int64 `json:"likeCount"`
	CommentCount int64 `json:"commentCount"`

	// CategoryID references the article's category, nil when uncategorized.
	CategoryID *int64 `json:"-"`
	// Category is populated on reads when CategoryID is set.
	Category *Category `json:"category,omitempty"`
	// TagIDs is used on writes to replace the article's tag set.
	TagIDs []int64 `json:"-"`
	// Tags is populated on reads.
	Tags []Tag `json:"tags"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}
