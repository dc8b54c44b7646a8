package blog

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/serrors"
	"myblog/pkg/storage"
	"unicode/utf8"
)

type messages struct {
	storage storage.Storage
	board   domain.Board
}

// NewComments creates the Messages service of article comments.
func NewComments(storage storage.Storage) Messages {
	return &messages{storage: storage, board: domain.BoardComments}
}

// NewGuestbook creates the Messages service of the guestbook.
func NewGuestbook(storage storage.Storage) Messages {
	return &messages{storage: storage, board: domain.BoardGuestbook}
}

func (m *messages) Board() domain.Board { return m.board }

func (m *messages) what() string {
	if m.board == domain.BoardComments {
		return "comment"
	}

	return "message"
}

// normalize sanitizes in first so the length limits apply to what is stored.
func (m *messages) normalize(in MessageInput) (domain.Message, error) {
	in.Author = cleanText(in.Author)
	in.Content = cleanContent(in.Content)
	if err := check(in); err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		Author:   in.Author,
		Email:    in.Email,
		Website:  in.Website,
		Content:  in.Content,
		ParentID: in.ParentID,
	}
	if m.board == domain.BoardComments {
		msg.ArticleID = in.ArticleID
	}

	return msg, nil
}

func (m *messages) Post(ctx context.Context, in MessageInput, client ClientInfo) (*domain.Message, error) {
	msg, err := m.normalize(in)
	if err != nil {
		return nil, err
	}
	msg.IPAddress = clip(client.IPAddress, maxIPAddressLen)
	msg.UserAgent = clip(client.UserAgent, maxUserAgentLen)

	if m.board == domain.BoardComments {
		if msg.ArticleID == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "articleId is required")
		}
		article, err := m.storage.ArticleByID(ctx, *msg.ArticleID)
		if err != nil {
			return nil, fmt.Errorf("could not get article: %w", err)
		}
		if article == nil || !article.Published {
			return nil, notFound("article")
		}
	}

	if msg.ParentID != nil {
		parent, err := m.storage.MessageByID(ctx, m.board, *msg.ParentID)
		if err != nil {
			return nil, fmt.Errorf("could not get parent %s: %w", m.what(), err)
		}
		if parent == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "parent %s not found", m.what())
		}
		if m.board == domain.BoardComments && (parent.ArticleID == nil || *parent.ArticleID != *msg.ArticleID) {
			return nil, serrors.With(serrors.ErrBadRequest, "parent comment belongs to another article")
		}
	}

	created, err := m.storage.CreateMessage(ctx, m.board, msg)
	if err != nil {
		return nil, storeErr(err, "create", m.what())
	}

	return created, nil
}

func (m *messages) Update(ctx context.Context, id int64, in MessageInput) (*domain.Message, error) {
	msg, err := m.normalize(in)
	if err != nil {
		return nil, err
	}
	msg.ID = id

	updated, err := m.storage.UpdateMessage(ctx, m.board, msg)
	if err != nil {
		return nil, storeErr(err, "update", m.what())
	}
	if updated == nil {
		return nil, notFound(m.what())
	}

	return updated, nil
}

func (m *messages) Delete(ctx context.Context, id int64) error {
	deleted, err := m.storage.DeleteMessage(ctx, m.board, id)
	if err != nil {
		return fmt.Errorf("could not delete %s: %w", m.what(), err)
	}
	if !deleted {
		return notFound(m.what())
	}

	return nil
}

func (m *messages) ByID(ctx context.Context, id int64) (*domain.Message, error) {
	msg, err := m.storage.MessageByID(ctx, m.board, id)
	if err != nil {
		return nil, fmt.Errorf("could not get %s: %w", m.what(), err)
	}
	if msg == nil {
		return nil, notFound(m.what())
	}

	return msg, nil
}

func (m *messages) List(
	ctx context.Context,
	filter storage.MessageFilter,
	q PageQuery,
) (*domain.Page[domain.Message], error) {
	req, err := q.request("likeCount", "updatedAt")
	if err != nil {
		return nil, err
	}

	items, total, err := m.storage.Messages(ctx, m.board, filter, req)
	if err != nil {
		return nil, fmt.Errorf("could not list %ss: %w", m.what(), err)
	}

	return newPage(items, req, total), nil
}

func (m *messages) SetApproved(ctx context.Context, id int64, approved bool) (*domain.Message, error) {
	msg, err := m.storage.SetMessageApproved(ctx, m.board, id, approved)
	if err != nil {
		return nil, fmt.Errorf("could not moderate %s: %w", m.what(), err)
	}
	if msg == nil {
		return nil, notFound(m.what())
	}

	return msg, nil
}

func (m *messages) Like(ctx context.Context, id int64) error {
	found, err := m.storage.LikeMessage(ctx, m.board, id)
	if err != nil {
		return fmt.Errorf("could not like %s: %w", m.what(), err)
	}
	if !found {
		return notFound(m.what())
	}

	return nil
}

const (
	maxIPAddressLen = 45
	maxUserAgentLen = 500
)

// clip cuts s to at most n runes so it fits its column.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}
