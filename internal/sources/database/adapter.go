// Package database reads content straight from a relational database through
// bun. Rows use the same column names as the REST gateway so both share one
// normalizer.
package database

import (
	"context"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-newsroom/internal/sources"
)

// Name identifies this tier in logs and status reports.
const Name = "database"

var columns = map[string]string{
	sources.FieldID:       "id",
	sources.FieldSlug:     "slug",
	sources.FieldName:     "name",
	sources.FieldFeatured: "is_featured",
	sources.FieldPosition: "position",
	sources.FieldActive:   "is_active",
}

var createdColumns = map[sources.Kind]string{
	sources.KindArticle:       "published_at",
	sources.KindCategory:      "created_at",
	sources.KindAuthor:        "created_at",
	sources.KindBreakingNews:  "timestamp",
	sources.KindAdvertisement: "created_at",
}

// Adapter implements sources.Adapter over a bun database handle.
type Adapter struct {
	db *bun.DB
}

var _ sources.Adapter = (*Adapter)(nil)

// NewAdapter wraps db. A nil handle leaves the tier unconfigured.
func NewAdapter(db *bun.DB) *Adapter {
	return &Adapter{db: db}
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) Configured() bool { return a != nil && a.db != nil }

// Fetch runs q as a select and returns RecordRow values.
func (a *Adapter) Fetch(ctx context.Context, q sources.Query) ([]sources.Row, error) {
	if !a.Configured() {
		return nil, sources.NotConfigured(Name)
	}

	var (
		rows []sources.Row
		err  error
	)
	switch q.Kind {
	case sources.KindArticle:
		rows, err = selectRows(ctx, a.db, q, func(query *bun.SelectQuery) *bun.SelectQuery {
			return query.Relation("Category").Relation("Author")
		}, (*articleModel).record)
	case sources.KindCategory:
		rows, err = selectRows(ctx, a.db, q, nil, (*categoryModel).record)
	case sources.KindAuthor:
		rows, err = selectRows(ctx, a.db, q, nil, (*authorModel).record)
	case sources.KindBreakingNews:
		rows, err = selectRows(ctx, a.db, q, nil, (*breakingNewsModel).record)
	case sources.KindAdvertisement:
		rows, err = selectRows(ctx, a.db, q, nil, (*advertisementModel).record)
	default:
		err = fmt.Errorf("%w: kind %q", sources.ErrUnsupportedFilter, q.Kind)
	}
	if err != nil {
		return nil, sources.TransportFailure(Name, err)
	}
	return rows, nil
}

func selectRows[T any](
	ctx context.Context,
	db *bun.DB,
	q sources.Query,
	prepare func(*bun.SelectQuery) *bun.SelectQuery,
	toRecord func(*T) map[string]any,
) ([]sources.Row, error) {
	var models []T
	query := db.NewSelect().Model(&models)
	if prepare != nil {
		query = prepare(query)
	}

	query, err := applyQuery(query, q)
	if err != nil {
		return nil, err
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}

	rows := make([]sources.Row, 0, len(models))
	for i := range models {
		rows = append(rows, sources.RecordRow(toRecord(&models[i])))
	}
	return rows, nil
}

func applyQuery(query *bun.SelectQuery, q sources.Query) (*bun.SelectQuery, error) {
	for _, filter := range q.Filters {
		switch filter.Op {
		case sources.OpEqual:
			column, ok := columns[filter.Field]
			if !ok {
				return nil, fmt.Errorf("%w: field %q", sources.ErrUnsupportedFilter, filter.Field)
			}
			value, err := filterValue(filter)
			if err != nil {
				return nil, err
			}
			query = query.Where("?TableAlias.? = ?", bun.Ident(column), value)
		case sources.OpRef:
			query = query.Where("?TableAlias.? = ?", bun.Ident(filter.Field+"_id"), filter.Value)
		default:
			return nil, fmt.Errorf("%w: %s on %s", sources.ErrUnsupportedFilter, filter.Op, filter.Field)
		}
	}

	if q.Order != nil {
		column := createdColumns[q.Kind]
		if q.Order.Field != sources.FieldCreatedAt {
			mapped, ok := columns[q.Order.Field]
			if !ok {
				return nil, fmt.Errorf("%w: order %q", sources.ErrUnsupportedFilter, q.Order.Field)
			}
			column = mapped
		}
		direction := "ASC"
		if q.Order.Descending {
			direction = "DESC"
		}
		query = query.OrderExpr("?TableAlias.? "+direction, bun.Ident(column))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	return query, nil
}

func filterValue(filter sources.Filter) (any, error) {
	switch filter.Field {
	case sources.FieldFeatured, sources.FieldActive:
		parsed, err := strconv.ParseBool(filter.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", sources.ErrUnsupportedFilter, filter.Field, filter.Value)
		}
		return parsed, nil
	default:
		return filter.Value, nil
	}
}
