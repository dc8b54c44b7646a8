package postgres

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	categoriesTable = "categories"
	tagsTable       = "tags"
)

func (p *PgSQL) CreateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	var row PgCategory
	row.FromDomain(c)
	if _, err := p.Builder.Insert(categoriesTable).
		Rows(row).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store category into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateCategory(ctx context.Context, c domain.Category) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.Update(categoriesTable).
		Set(goqu.Record{
			"name":        c.Name,
			"slug":        c.Slug,
			"description": c.Description,
			"color":       c.Color,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(c.ID)).
		Returning(&PgCategory{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update category in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	return p.deleteByID(ctx, categoriesTable, id)
}

func (p *PgSQL) CategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	return p.categoryWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) CategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return p.categoryWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) categoryWhere(ctx context.Context, where goqu.Expression) (*domain.Category, error) {
	var row PgCategory
	found, err := p.Builder.From(categoriesTable).Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch category from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Categories(ctx context.Context, page storage.PageRequest) ([]domain.Category, int64, error) {
	ds := p.Builder.From(categoriesTable)
	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count categories in pg: %w", err)
	}

	var rows []PgCategory
	if err := paginate(ds.Order(order(page, "created_at")...), page).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	return pgCategoriesToDomain(rows), total, nil
}

func (p *PgSQL) AllCategories(ctx context.Context, withArticlesOnly bool) ([]domain.Category, error) {
	ds := p.Builder.From(categoriesTable).Order(goqu.I("name").Asc())
	if withArticlesOnly {
		ds = ds.Where(goqu.I("article_count").Gt(0))
	}

	var rows []PgCategory
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch categories from pg: %w", err)
	}

	return pgCategoriesToDomain(rows), nil
}

func pgCategoriesToDomain(rows []PgCategory) []domain.Category {
	out := make([]domain.Category, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func (p *PgSQL) CreateTag(ctx context.Context, t domain.Tag) (*domain.Tag, error) {
	var row PgTag
	row.FromDomain(t)
	if _, err := p.Builder.Insert(tagsTable).
		Rows(row).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store tag into pg: %w", mapError(err))
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateTag(ctx context.Context, t domain.Tag) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.Update(tagsTable).
		Set(goqu.Record{
			"name":       t.Name,
			"slug":       t.Slug,
			"color":      t.Color,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(t.ID)).
		Returning(&PgTag{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update tag in pg: %w", mapError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteTag(ctx context.Context, id int64) (bool, error) {
	return p.deleteByID(ctx, tagsTable, id)
}

func (p *PgSQL) TagByID(ctx context.Context, id int64) (*domain.Tag, error) {
	return p.tagWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) TagBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	return p.tagWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) tagWhere(ctx context.Context, where goqu.Expression) (*domain.Tag, error) {
	var row PgTag
	found, err := p.Builder.From(tagsTable).Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Tags(ctx context.Context, page storage.PageRequest) ([]domain.Tag, int64, error) {
	ds := p.Builder.From(tagsTable)
	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count tags in pg: %w", err)
	}

	var rows []PgTag
	if err := paginate(ds.Order(order(page, "created_at")...), page).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), total, nil
}

func (p *PgSQL) AllTags(ctx context.Context, withArticlesOnly bool) ([]domain.Tag, error) {
	ds := p.Builder.From(tagsTable).Order(goqu.I("name").Asc())
	if withArticlesOnly {
		ds = ds.Where(goqu.I("article_count").Gt(0))
	}

	var rows []PgTag
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func (p *PgSQL) PopularTags(ctx context.Context, limit uint) ([]domain.Tag, error) {
	var rows []PgTag
	if err := p.Builder.From(tagsTable).
		Where(goqu.I("article_count").Gt(0)).
		Order(goqu.I("article_count").Desc(), goqu.I("name").Asc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch popular tags from pg: %w", err)
	}

	return pgTagsToDomain(rows), nil
}

func pgTagsToDomain(rows []PgTag) []domain.Tag {
	out := make([]domain.Tag, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

// deleteByID hard deletes the row with id from table.
func (p *PgSQL) deleteByID(ctx context.Context, table string, id int64) (bool, error) {
	res, err := p.Builder.Delete(table).Where(goqu.I("id").Eq(id)).Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete from %s in pg: %w", table, mapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

// refreshTaxonomyCounts recomputes article counts of all categories and tags.
func (p *PgSQL) refreshTaxonomyCounts(ctx context.Context) error {
	if _, err := p.Builder.Update(categoriesTable).Set(goqu.Record{
		"article_count": goqu.L("(SELECT COUNT(*) FROM articles a WHERE a.category_id = categories.id)"),
	}).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not refresh category counts: %w", err)
	}
	if _, err := p.Builder.Update(tagsTable).Set(goqu.Record{
		"article_count": goqu.L("(SELECT COUNT(*) FROM article_tags t WHERE t.tag_id = tags.id)"),
	}).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not refresh tag counts: %w", err)
	}

	return nil
}
