package postgres

import (
	"context"
	"fmt"
	"myblog/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const usersTable = "users"

func (p *PgSQL) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpsertUser(ctx context.Context, u domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(u)
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("username", goqu.Record{
			"password":   goqu.L("EXCLUDED.password"),
			"email":      goqu.L("EXCLUDED.email"),
			"nickname":   goqu.L("EXCLUDED.nickname"),
			"avatar":     goqu.L("EXCLUDED.avatar"),
			"bio":        goqu.L("EXCLUDED.bio"),
			"is_enabled": goqu.L("EXCLUDED.is_enabled"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not upsert user into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TouchUserLogin(ctx context.Context, id int64) error {
	if _, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"last_login_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update user login time in pg: %w", err)
	}

	return nil
}
