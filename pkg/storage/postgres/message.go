package postgres

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	commentsTable  = "comments"
	guestbookTable = "guestbook_messages"
)

func messageTable(board domain.Board) (string, error) {
	switch board {
	case domain.BoardComments:
		return commentsTable, nil
	case domain.BoardGuestbook:
		return guestbookTable, nil
	default:
		return "", fmt.Errorf("unknown message board %q", board)
	}
}

// messageColumns lists the columns of PgMessage for board. The guestbook has
// no article so the column is selected as NULL.
func messageColumns(board domain.Board) []interface{} {
	articleID := interface{}(goqu.I("article_id"))
	if board == domain.BoardGuestbook {
		articleID = goqu.L("NULL::bigint").As("article_id")
	}

	return []interface{}{
		goqu.I("id"), articleID, goqu.I("author"), goqu.I("email"), goqu.I("website"),
		goqu.I("content"), goqu.I("parent_id"), goqu.I("is_approved"), goqu.I("like_count"),
		goqu.I("ip_address"), goqu.I("user_agent"), goqu.I("created_at"), goqu.I("updated_at"),
	}
}

func (p *PgSQL) CreateMessage(ctx context.Context, board domain.Board, m domain.Message) (*domain.Message, error) {
	table, err := messageTable(board)
	if err != nil {
		return nil, err
	}

	record := goqu.Record{
		"author":      m.Author,
		"email":       m.Email,
		"website":     m.Website,
		"content":     m.Content,
		"parent_id":   nullInt64(m.ParentID),
		"is_approved": m.Approved,
		"ip_address":  m.IPAddress,
		"user_agent":  m.UserAgent,
	}
	if board == domain.BoardComments {
		record["article_id"] = nullInt64(m.ArticleID)
	}

	var row PgMessage
	err = p.atomically(ctx, func(tx *PgSQL) error {
		if _, err := tx.Builder.Insert(table).
			Rows(record).
			Returning(messageColumns(board)...).
			Executor().ScanStructContext(ctx, &row); err != nil {
			return fmt.Errorf("could not store message into pg: %w", mapError(err))
		}
		if board == domain.BoardComments && row.Approved {
			return tx.refreshCommentCount(ctx, row.ArticleID.Int64)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateMessage(ctx context.Context, board domain.Board, m domain.Message) (*domain.Message, error) {
	table, err := messageTable(board)
	if err != nil {
		return nil, err
	}

	var row PgMessage
	found, err := p.Builder.Update(table).
		Set(goqu.Record{
			"author":     m.Author,
			"email":      m.Email,
			"website":    m.Website,
			"content":    m.Content,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(m.ID)).
		Returning(messageColumns(board)...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update message in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteMessage(ctx context.Context, board domain.Board, id int64) (bool, error) {
	table, err := messageTable(board)
	if err != nil {
		return false, err
	}
	if board != domain.BoardComments {
		return p.deleteByID(ctx, table, id)
	}

	var deleted bool
	err = p.atomically(ctx, func(tx *PgSQL) error {
		existing, err := tx.MessageByID(ctx, board, id)
		if err != nil || existing == nil {
			return err
		}
		if deleted, err = tx.deleteByID(ctx, table, id); err != nil {
			return err
		}

		return tx.refreshCommentCount(ctx, *existing.ArticleID)
	})

	return deleted, err
}

func (p *PgSQL) MessageByID(ctx context.Context, board domain.Board, id int64) (*domain.Message, error) {
	table, err := messageTable(board)
	if err != nil {
		return nil, err
	}

	var row PgMessage
	found, err := p.Builder.From(table).
		Select(messageColumns(board)...).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch message from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Messages(
	ctx context.Context,
	board domain.Board,
	filter storage.MessageFilter,
	page storage.PageRequest,
) ([]domain.Message, int64, error) {
	table, err := messageTable(board)
	if err != nil {
		return nil, 0, err
	}

	ds := p.Builder.From(table)
	if filter.ArticleID != nil && board == domain.BoardComments {
		ds = ds.Where(goqu.I("article_id").Eq(*filter.ArticleID))
	}
	if filter.ParentID != nil {
		if *filter.ParentID == 0 {
			ds = ds.Where(goqu.I("parent_id").IsNull())
		} else {
			ds = ds.Where(goqu.I("parent_id").Eq(*filter.ParentID))
		}
	}
	if filter.Approved != nil {
		ds = ds.Where(goqu.I("is_approved").Eq(*filter.Approved))
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count messages in pg: %w", err)
	}

	var rows []PgMessage
	if err := paginate(ds.Select(messageColumns(board)...).Order(order(page, "created_at")...), page).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch messages from pg: %w", err)
	}

	out := make([]domain.Message, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, total, nil
}

func (p *PgSQL) SetMessageApproved(
	ctx context.Context,
	board domain.Board,
	id int64,
	approved bool,
) (*domain.Message, error) {
	table, err := messageTable(board)
	if err != nil {
		return nil, err
	}

	var (
		row   PgMessage
		found bool
	)
	err = p.atomically(ctx, func(tx *PgSQL) error {
		var err error
		found, err = tx.Builder.Update(table).
			Set(goqu.Record{"is_approved": approved, "updated_at": goqu.L("CURRENT_TIMESTAMP")}).
			Where(goqu.I("id").Eq(id)).
			Returning(messageColumns(board)...).
			Executor().ScanStructContext(ctx, &row)
		if err != nil {
			return fmt.Errorf("could not update message approval in pg: %w", err)
		}
		if !found || board != domain.BoardComments {
			return nil
		}

		return tx.refreshCommentCount(ctx, row.ArticleID.Int64)
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LikeMessage(ctx context.Context, board domain.Board, id int64) (bool, error) {
	table, err := messageTable(board)
	if err != nil {
		return false, err
	}

	res, err := p.Builder.Update(table).
		Set(goqu.Record{"like_count": goqu.L("like_count + 1")}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not like message in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// refreshCommentCount sets the comment count of an article to its number of
// approved comments.
func (p *PgSQL) refreshCommentCount(ctx context.Context, articleID int64) error {
	if _, err := p.Builder.Update(articlesTable).
		Set(goqu.Record{
			"comment_count": goqu.L("(SELECT COUNT(*) FROM comments c WHERE c.article_id = articles.id AND c.is_approved)"),
		}).
		Where(goqu.I("id").Eq(articleID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not refresh comment count: %w", err)
	}

	return nil
}
