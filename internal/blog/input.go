package blog

// CategoryInput is the editable part of a category.
type CategoryInput struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Slug        string `json:"slug"        validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color"       validate:"omitempty,color"`
}

// TagInput is the editable part of a tag.
type TagInput struct {
	Name  string `json:"name"  validate:"required,max=50"`
	Slug  string `json:"slug"  validate:"max=50"`
	Color string `json:"color" validate:"omitempty,color"`
}

// ArticleInput is the editable part of an article.
type ArticleInput struct {
	Title      string  `json:"title"       validate:"required,max=200"`
	Summary    string  `json:"summary"     validate:"max=500"`
	Content    string  `json:"content"     validate:"required"`
	Slug       string  `json:"slug"        validate:"max=200"`
	CoverImage string  `json:"coverImage"  validate:"omitempty,url,max=500"`
	Published  bool    `json:"isPublished"`
	Pinned     bool    `json:"isPinned"`
	CategoryID *int64  `json:"categoryId"`
	TagIDs     []int64 `json:"tagIds"`
}

// MessageInput is what a visitor submits as a comment or guestbook message.
type MessageInput struct {
	// ArticleID is required for comments and ignored by the guestbook.
	ArticleID *int64 `json:"articleId"`
	ParentID  *int64 `json:"parentId"`
	Author    string `json:"author"    validate:"required,max=50"`
	Email     string `json:"email"     validate:"omitempty,email,max=100"`
	Website   string `json:"website"   validate:"omitempty,url,max=200"`
	Content   string `json:"content"   validate:"required,max=2000"`
}

// ClientInfo describes the visitor that posted a message.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// FriendLinkInput is the editable part of a friend link.
type FriendLinkInput struct {
	Name        string `json:"name"        validate:"required,max=100"`
	URL         string `json:"url"         validate:"required,url,max=500"`
	Description string `json:"description" validate:"max=500"`
	Logo        string `json:"logo"        validate:"omitempty,url,max=500"`
	Email       string `json:"email"       validate:"omitempty,email,max=100"`
	SortOrder   int    `json:"sortOrder"`
	// Approved is honored on updates only.
	Approved bool `json:"isApproved"`
}

// SettingInput is the editable part of a system setting.
type SettingInput struct {
	Key         string `json:"key"          validate:"required,max=100"`
	Value       string `json:"value"`
	Description string `json:"description"  validate:"max=500"`
	Type        string `json:"settingType"  validate:"max=20"`
	Public      bool   `json:"isPublic"`
}
