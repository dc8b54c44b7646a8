package domain

import "time"

// Board selects where a Message is posted.
type Board string

const (
	// BoardComments holds comments attached to articles.
	BoardComments Board = "comments"
	// BoardGuestbook holds guestbook messages, which have no article.
	BoardGuestbook Board = "guestbook"
)

// Message is a visitor-submitted comment or guestbook entry. Both boards
// share the same shape; only comments carry an ArticleID.
type Message struct {
	ID        int64  `json:"id"`
	ArticleID *int64 `json:"articleId,omitempty"`
	Author    string `json:"author"`
	Email     string `json:"email,omitempty"`
	Website   string `json:"website,omitempty"`
	// Content is stored sanitized.
	Content string `json:"content"`
	// ParentID references the message this one replies to.
	ParentID *int64 `json:"parentId,omitempty"`

	Approved  bool  `json:"isApproved"`
	LikeCount int64 `json:"likeCount"`

	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
