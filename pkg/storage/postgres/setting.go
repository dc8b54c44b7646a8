package postgres

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const settingsTable = "system_settings"

func (p *PgSQL) CreateSetting(ctx context.Context, s domain.Setting) (*domain.Setting, error) {
	var row PgSetting
	row.FromDomain(s)
	if _, err := p.Builder.Insert(settingsTable).
		Rows(row).
		Returning(&PgSetting{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store setting into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateSetting(ctx context.Context, s domain.Setting) (*domain.Setting, error) {
	var row PgSetting
	row.FromDomain(s)
	found, err := p.Builder.Update(settingsTable).
		Set(goqu.Record{
			"setting_key":  row.Key,
			"value":        row.Value,
			"description":  row.Description,
			"setting_type": row.Type,
			"is_public":    row.Public,
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(s.ID)).
		Returning(&PgSetting{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update setting in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteSetting(ctx context.Context, id int64) (bool, error) {
	return p.deleteByID(ctx, settingsTable, id)
}

func (p *PgSQL) SettingByID(ctx context.Context, id int64) (*domain.Setting, error) {
	return p.settingWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) SettingByKey(ctx context.Context, key string) (*domain.Setting, error) {
	return p.settingWhere(ctx, goqu.I("setting_key").Eq(key))
}

func (p *PgSQL) settingWhere(ctx context.Context, where goqu.Expression) (*domain.Setting, error) {
	var row PgSetting
	found, err := p.Builder.From(settingsTable).Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch setting from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Settings(ctx context.Context, filter storage.SettingFilter) ([]domain.Setting, error) {
	ds := p.Builder.From(settingsTable).Order(goqu.I("setting_key").Asc())
	if filter.PublicOnly {
		ds = ds.Where(goqu.I("is_public").IsTrue())
	}
	if filter.Type != "" {
		ds = ds.Where(goqu.I("setting_type").Eq(filter.Type))
	}

	var rows []PgSetting
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch settings from pg: %w", err)
	}

	out := make([]domain.Setting, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpsertSetting(ctx context.Context, s domain.Setting) (*domain.Setting, error) {
	var row PgSetting
	row.FromDomain(s)
	if _, err := p.Builder.Insert(settingsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("setting_key", goqu.Record{
			"value":        goqu.L("EXCLUDED.value"),
			"description":  goqu.L("EXCLUDED.description"),
			"setting_type": goqu.L("EXCLUDED.setting_type"),
			"is_public":    goqu.L("EXCLUDED.is_public"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgSetting{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not upsert setting into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}
