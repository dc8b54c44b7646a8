package postgres

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const friendLinksTable = "friend_links"

func (p *PgSQL) CreateFriendLink(ctx context.Context, f domain.FriendLink) (*domain.FriendLink, error) {
	var row PgFriendLink
	row.FromDomain(f)
	if _, err := p.Builder.Insert(friendLinksTable).
		Rows(row).
		Returning(&PgFriendLink{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store friend link into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateFriendLink(ctx context.Context, f domain.FriendLink) (*domain.FriendLink, error) {
	return p.updateFriendLink(ctx, f.ID, goqu.Record{
		"name":        f.Name,
		"url":         f.URL,
		"description": f.Description,
		"logo":        f.Logo,
		"email":       f.Email,
		"is_approved": f.Approved,
		"sort_order":  f.SortOrder,
	})
}

func (p *PgSQL) updateFriendLink(ctx context.Context, id int64, record goqu.Record) (*domain.FriendLink, error) {
	record["updated_at"] = goqu.L("CURRENT_TIMESTAMP")

	var row PgFriendLink
	found, err := p.Builder.Update(friendLinksTable).
		Set(record).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgFriendLink{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update friend link in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteFriendLink(ctx context.Context, id int64) (bool, error) {
	return p.deleteByID(ctx, friendLinksTable, id)
}

func (p *PgSQL) FriendLinkByID(ctx context.Context, id int64) (*domain.FriendLink, error) {
	var row PgFriendLink
	found, err := p.Builder.From(friendLinksTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch friend link from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) FriendLinks(
	ctx context.Context,
	approved *bool,
	page storage.PageRequest,
) ([]domain.FriendLink, int64, error) {
	ds := p.Builder.From(friendLinksTable)
	if approved != nil {
		ds = ds.Where(goqu.I("is_approved").Eq(*approved))
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count friend links in pg: %w", err)
	}

	var rows []PgFriendLink
	if err := paginate(ds.Order(order(page, "created_at")...), page).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch friend links from pg: %w", err)
	}

	return pgFriendLinksToDomain(rows), total, nil
}

func (p *PgSQL) ApprovedFriendLinks(ctx context.Context) ([]domain.FriendLink, error) {
	var rows []PgFriendLink
	if err := p.Builder.From(friendLinksTable).
		Where(goqu.I("is_approved").IsTrue()).
		Order(goqu.I("sort_order").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch approved friend links from pg: %w", err)
	}

	return pgFriendLinksToDomain(rows), nil
}

func (p *PgSQL) SetFriendLinkApproved(ctx context.Context, id int64, approved bool) (*domain.FriendLink, error) {
	return p.updateFriendLink(ctx, id, goqu.Record{"is_approved": approved})
}

func (p *PgSQL) ClickFriendLink(ctx context.Context, id int64) (bool, error) {
	res, err := p.Builder.Update(friendLinksTable).
		Set(goqu.Record{"click_count": goqu.L("click_count + 1")}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not count friend link click in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) FillFriendLinkPreview(
	ctx context.Context,
	id int64,
	logo, description string,
) (*domain.FriendLink, error) {
	return p.updateFriendLink(ctx, id, goqu.Record{
		"logo":        goqu.L("CASE WHEN logo = '' THEN ? ELSE logo END", logo),
		"description": goqu.L("CASE WHEN description = '' THEN ? ELSE description END", description),
	})
}

func pgFriendLinksToDomain(rows []PgFriendLink) []domain.FriendLink {
	out := make([]domain.FriendLink, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
