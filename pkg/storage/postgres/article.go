package postgres

import (
	"context"
	"fmt"
	"myblog/pkg/domain"
	"myblog/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

const (
	articlesTable    = "articles"
	articleTagsTable = "article_tags"
)

// publishedAtOnPublish keeps the first publication time and sets it when an
// article is published for the first time.
func publishedAtOnPublish(published bool) exp.LiteralExpression {
	return goqu.L("CASE WHEN ? THEN COALESCE(published_at, CURRENT_TIMESTAMP) ELSE published_at END", published)
}

func (p *PgSQL) CreateArticle(ctx context.Context, a domain.Article) (*domain.Article, error) {
	var row PgArticle
	row.FromDomain(a)
	if row.Published && !row.PublishedAt.Valid {
		row.PublishedAt.Time, row.PublishedAt.Valid = time.Now(), true
	}

	var out *domain.Article
	err := p.atomically(ctx, func(tx *PgSQL) error {
		if _, err := tx.Builder.Insert(articlesTable).
			Rows(row).
			Returning(&PgArticle{}).
			Executor().ScanStructContext(ctx, &row); err != nil {
			return fmt.Errorf("could not store article into pg: %w", mapError(err))
		}
		if err := tx.setTags(ctx, row.ID, a.TagIDs); err != nil {
			return err
		}
		if err := tx.refreshTaxonomyCounts(ctx); err != nil {
			return err
		}

		var err error
		out, err = tx.ArticleByID(ctx, row.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PgSQL) UpdateArticle(ctx context.Context, a domain.Article) (*domain.Article, error) {
	var out *domain.Article
	err := p.atomically(ctx, func(tx *PgSQL) error {
		res, err := tx.Builder.Update(articlesTable).
			Set(goqu.Record{
				"title":        a.Title,
				"summary":      a.Summary,
				"content":      a.Content,
				"slug":         a.Slug,
				"cover_image":  a.CoverImage,
				"is_published": a.Published,
				"is_pinned":    a.Pinned,
				"category_id":  nullInt64(a.CategoryID),
				"published_at": publishedAtOnPublish(a.Published),
				"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
			}).
			Where(goqu.I("id").Eq(a.ID)).
			Executor().ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("could not update article in pg: %w", mapError(err))
		}
		if n, err := res.RowsAffected(); err != nil || n == 0 {
			return err //nolint: wrapcheck
		}
		if err := tx.setTags(ctx, a.ID, a.TagIDs); err != nil {
			return err
		}
		if err := tx.refreshTaxonomyCounts(ctx); err != nil {
			return err
		}
		out, err = tx.ArticleByID(ctx, a.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (p *PgSQL) DeleteArticle(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := p.atomically(ctx, func(tx *PgSQL) error {
		var err error
		if deleted, err = tx.deleteByID(ctx, articlesTable, id); err != nil || !deleted {
			return err
		}

		return tx.refreshTaxonomyCounts(ctx)
	})

	return deleted, err
}

func (p *PgSQL) ArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	return p.articleWhere(ctx, goqu.I("id").Eq(id))
}

func (p *PgSQL) ArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	return p.articleWhere(ctx, goqu.I("slug").Eq(slug))
}

func (p *PgSQL) articleWhere(ctx context.Context, where goqu.Expression) (*domain.Article, error) {
	var row PgArticle
	found, err := p.Builder.From(articlesTable).Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch article from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	articles, err := p.hydrateArticles(ctx, []PgArticle{row})
	if err != nil {
		return nil, err
	}

	return &articles[0], nil
}

func (p *PgSQL) Articles(
	ctx context.Context,
	filter storage.ArticleFilter,
	page storage.PageRequest,
) ([]domain.Article, int64, error) {
	ds := p.Builder.From(articlesTable)
	if filter.PublishedOnly {
		ds = ds.Where(goqu.I("is_published").IsTrue())
	}
	if filter.PinnedOnly {
		ds = ds.Where(goqu.I("is_pinned").IsTrue())
	}
	if filter.CategoryID > 0 {
		ds = ds.Where(goqu.I("category_id").Eq(filter.CategoryID))
	}
	if filter.TagID > 0 {
		ds = ds.Where(goqu.I("id").In(
			p.Builder.From(articleTagsTable).Select("article_id").Where(goqu.I("tag_id").Eq(filter.TagID)),
		))
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		ds = ds.Where(goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.I("summary").ILike(pattern),
			goqu.I("content").ILike(pattern),
		))
	}

	total, err := ds.CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count articles in pg: %w", err)
	}

	var rows []PgArticle
	if err := paginate(ds.Order(order(page, "created_at")...), page).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not fetch articles from pg: %w", err)
	}

	articles, err := p.hydrateArticles(ctx, rows)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (p *PgSQL) IncrementArticleCounter(ctx context.Context, id int64, counter storage.ArticleCounter) (bool, error) {
	if counter != storage.ArticleViews && counter != storage.ArticleLikes {
		return false, fmt.Errorf("unknown article counter %q", counter)
	}
	col := string(counter)
	res, err := p.Builder.Update(articlesTable).
		Set(goqu.Record{col: goqu.L("? + 1", goqu.I(col))}).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not increment article %s in pg: %w", col, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}

func (p *PgSQL) SetArticleFlags(ctx context.Context, id int64, flags storage.ArticleFlags) (*domain.Article, error) {
	record := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	if flags.Published != nil {
		record["is_published"] = *flags.Published
		record["published_at"] = publishedAtOnPublish(*flags.Published)
	}
	if flags.Pinned != nil {
		record["is_pinned"] = *flags.Pinned
	}

	if _, err := p.Builder.Update(articlesTable).
		Set(record).
		Where(goqu.I("id").Eq(id)).
		Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not update article flags in pg: %w", err)
	}

	return p.ArticleByID(ctx, id)
}

// setTags replaces the tag set of an article.
func (p *PgSQL) setTags(ctx context.Context, articleID int64, tagIDs []int64) error {
	if _, err := p.Builder.Delete(articleTagsTable).
		Where(goqu.I("article_id").Eq(articleID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear article tags in pg: %w", err)
	}

	seen := make(map[int64]struct{}, len(tagIDs))
	rows := make([]interface{}, 0, len(tagIDs))
	for _, id := range tagIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, goqu.Record{"article_id": articleID, "tag_id": id})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(articleTagsTable).Rows(rows...).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store article tags into pg: %w", mapError(err))
	}

	return nil
}

// hydrateArticles converts rows and loads their categories and tags with one
// query each.
func (p *PgSQL) hydrateArticles(ctx context.Context, rows []PgArticle) ([]domain.Article, error) {
	out := make([]domain.Article, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]int64, 0, len(rows))
	var categoryIDs []int64
	for i := range rows {
		ids = append(ids, rows[i].ID)
		if rows[i].CategoryID.Valid {
			categoryIDs = append(categoryIDs, rows[i].CategoryID.Int64)
		}
	}

	categories := map[int64]*domain.Category{}
	if len(categoryIDs) > 0 {
		var cats []PgCategory
		if err := p.Builder.From(categoriesTable).
			Where(goqu.I("id").In(categoryIDs)).
			Executor().ScanStructsContext(ctx, &cats); err != nil {
			return nil, fmt.Errorf("could not fetch article categories from pg: %w", err)
		}
		for i := range cats {
			categories[cats[i].ID] = cats[i].ToDomain()
		}
	}

	var links []PgArticleTag
	if err := p.Builder.From(goqu.T(articleTagsTable).As("at")).
		Join(goqu.T(tagsTable).As("t"), goqu.On(goqu.I("t.id").Eq(goqu.I("at.tag_id")))).
		Select(goqu.I("at.article_id"), goqu.T("t").All()).
		Where(goqu.I("at.article_id").In(ids)).
		Order(goqu.I("t.name").Asc()).
		Executor().ScanStructsContext(ctx, &links); err != nil {
		return nil, fmt.Errorf("could not fetch article tags from pg: %w", err)
	}
	tags := map[int64][]domain.Tag{}
	for i := range links {
		tags[links[i].ArticleID] = append(tags[links[i].ArticleID], *links[i].PgTag.ToDomain())
	}

	for i := range rows {
		a := rows[i].ToDomain()
		if a.CategoryID != nil {
			a.Category = categories[*a.CategoryID]
		}
		if t, ok := tags[a.ID]; ok {
			a.Tags = t
		}
		a.TagIDs = make([]int64, 0, len(a.Tags))
		for _, t := range a.Tags {
			a.TagIDs = append(a.TagIDs, t.ID)
		}
		out = append(out, *a)
	}

	return out, nil
}
