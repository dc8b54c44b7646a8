package postgres

import (
	"database/sql"
	"myblog/pkg/domain"
	"time"
)

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64

	return &out
}

func timePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	out := v.Time

	return &out
}

type PgCategory struct {
	ID           int64     `db:"id"            goqu:"skipinsert"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Description  string    `db:"description"`
	Color        string    `db:"color"`
	ArticleCount int64     `db:"article_count" goqu:"skipinsert"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    time.Time `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgCategory) ToDomain() *domain.Category {
	return &domain.Category{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Color:        p.Color,
		ArticleCount: p.ArticleCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgCategory) FromDomain(c domain.Category) {
	*p = PgCategory{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
	}
}

type PgTag struct {
	ID           int64     `db:"id"            goqu:"skipinsert"`
	Name         string    `db:"name"`
	Slug         string    `db:"slug"`
	Color        string    `db:"color"`
	ArticleCount int64     `db:"article_count" goqu:"skipinsert"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    time.Time `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgTag) ToDomain() *domain.Tag {
	return &domain.Tag{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Color:        p.Color,
		ArticleCount: p.ArticleCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgTag) FromDomain(t domain.Tag) {
	*p = PgTag{ID: t.ID, Name: t.Name, Slug: t.Slug, Color: t.Color}
}

// PgArticleTag is one row of the article/tag relation joined with the tag.
type PgArticleTag struct {
	ArticleID int64 `db:"article_id"`
	PgTag
}

type PgArticle struct {
	ID           int64         `db:"id"            goqu:"skipinsert"`
	Title        string        `db:"title"`
	Summary      string        `db:"summary"`
	Content      string        `db:"content"`
	Slug         string        `db:"slug"`
	CoverImage   string        `db:"cover_image"`
	Published    bool          `db:"is_published"`
	Pinned       bool          `db:"is_pinned"`
	ViewCount    int64         `db:"view_count"    goqu:"skipinsert"`
	LikeCount    int64         `db:"like_count"    goqu:"skipinsert"`
	CommentCount int64         `db:"comment_count" goqu:"skipinsert"`
	CategoryID   sql.NullInt64 `db:"category_id"`
	CreatedAt    time.Time     `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    time.Time     `db:"updated_at"    goqu:"skipinsert"`
	PublishedAt  sql.NullTime  `db:"published_at"`
}

// ToDomain converts the row without relations; see hydrateArticles.
func (p *PgArticle) ToDomain() *domain.Article {
	return &domain.Article{
		ID:           p.ID,
		Title:        p.Title,
		Summary:      p.Summary,
		Content:      p.Content,
		Slug:         p.Slug,
		CoverImage:   p.CoverImage,
		Published:    p.Published,
		Pinned:       p.Pinned,
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount,
		CategoryID:   int64Ptr(p.CategoryID),
		Tags:         []domain.Tag{},
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		PublishedAt:  timePtr(p.PublishedAt),
	}
}

func (p *PgArticle) FromDomain(a domain.Article) {
	*p = PgArticle{
		ID:         a.ID,
		Title:      a.Title,
		Summary:    a.Summary,
		Content:    a.Content,
		Slug:       a.Slug,
		CoverImage: a.CoverImage,
		Published:  a.Published,
		Pinned:     a.Pinned,
		CategoryID: nullInt64(a.CategoryID),
	}
	if a.PublishedAt != nil {
		p.PublishedAt = sql.NullTime{Time: *a.PublishedAt, Valid: true}
	}
}

// PgMessage maps both message tables. Guestbook rows select NULL as article_id.
type PgMessage struct {
	ID        int64         `db:"id"`
	ArticleID sql.NullInt64 `db:"article_id"`
	Author    string        `db:"author"`
	Email     string        `db:"email"`
	Website   string        `db:"website"`
	Content   string        `db:"content"`
	ParentID  sql.NullInt64 `db:"parent_id"`
	Approved  bool          `db:"is_approved"`
	LikeCount int64         `db:"like_count"`
	IPAddress string        `db:"ip_address"`
	UserAgent string        `db:"user_agent"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func (p *PgMessage) ToDomain() *domain.Message {
	return &domain.Message{
		ID:        p.ID,
		ArticleID: int64Ptr(p.ArticleID),
		Author:    p.Author,
		Email:     p.Email,
		Website:   p.Website,
		Content:   p.Content,
		ParentID:  int64Ptr(p.ParentID),
		Approved:  p.Approved,
		LikeCount: p.LikeCount,
		IPAddress: p.IPAddress,
		UserAgent: p.UserAgent,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type PgFriendLink struct {
	ID          int64     `db:"id"          goqu:"skipinsert"`
	Name        string    `db:"name"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	Logo        string    `db:"logo"`
	Email       string    `db:"email"`
	Approved    bool      `db:"is_approved"`
	SortOrder   int       `db:"sort_order"`
	ClickCount  int64     `db:"click_count" goqu:"skipinsert"`
	CreatedAt   time.Time `db:"created_at"  goqu:"skipinsert"`
	UpdatedAt   time.Time `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgFriendLink) ToDomain() *domain.FriendLink {
	return &domain.FriendLink{
		ID:          p.ID,
		Name:        p.Name,
		URL:         p.URL,
		Description: p.Description,
		Logo:        p.Logo,
		Email:       p.Email,
		Approved:    p.Approved,
		SortOrder:   p.SortOrder,
		ClickCount:  p.ClickCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgFriendLink) FromDomain(f domain.FriendLink) {
	*p = PgFriendLink{
		ID:          f.ID,
		Name:        f.Name,
		URL:         f.URL,
		Description: f.Description,
		Logo:        f.Logo,
		Email:       f.Email,
		Approved:    f.Approved,
		SortOrder:   f.SortOrder,
	}
}

type PgSetting struct {
	ID          int64     `db:"id"           goqu:"skipinsert"`
	Key         string    `db:"setting_key"`
	Value       string    `db:"value"`
	Description string    `db:"description"`
	Type        string    `db:"setting_type"`
	Public      bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   time.Time `db:"updated_at"   goqu:"skipinsert"`
}

func (p *PgSetting) ToDomain() *domain.Setting {
	return &domain.Setting{
		ID:          p.ID,
		Key:         p.Key,
		Value:       p.Value,
		Description: p.Description,
		Type:        p.Type,
		Public:      p.Public,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgSetting) FromDomain(s domain.Setting) {
	*p = PgSetting{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		Type:        s.Type,
		Public:      s.Public,
	}
	if p.Type == "" {
		p.Type = domain.DefaultSettingType
	}
}

type PgUser struct {
	ID          int64        `db:"id"            goqu:"skipinsert"`
	Username    string       `db:"username"`
	Password    string       `db:"password"`
	Email       string       `db:"email"`
	Nickname    string       `db:"nickname"`
	Avatar      string       `db:"avatar"`
	Bio         string       `db:"bio"`
	Enabled     bool         `db:"is_enabled"`
	LastLoginAt sql.NullTime `db:"last_login_at" goqu:"skipinsert"`
	CreatedAt   time.Time    `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt   time.Time    `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           p.ID,
		Username:     p.Username,
		PasswordHash: p.Password,
		Email:        p.Email,
		Nickname:     p.Nickname,
		Avatar:       p.Avatar,
		Bio:          p.Bio,
		Enabled:      p.Enabled,
		LastLoginAt:  timePtr(p.LastLoginAt),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:       u.ID,
		Username: u.Username,
		Password: u.PasswordHash,
		Email:    u.Email,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Bio:      u.Bio,
		Enabled:  u.Enabled,
	}
}
