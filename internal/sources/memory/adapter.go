// Package memory serves the bundled sample catalog as the last content tier.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/goliatone/go-newsroom/internal/sources"
)

// Name identifies this tier in logs and status reports.
const Name = "memory"

type record struct {
	fields  map[string]string
	created time.Time
	clone   func() any
}

// Adapter evaluates queries against an in-memory catalog. The catalog is
// fixed at construction and never mutated, so Fetch is safe for concurrent
// use.
type Adapter struct {
	enabled bool
	now     func() time.Time
	catalog *Catalog
	records map[sources.Kind][]record
}

var _ sources.Adapter = (*Adapter)(nil)

// Option configures the adapter.
type Option func(*Adapter)

// WithCatalog replaces the sample catalog.
func WithCatalog(catalog Catalog) Option {
	return func(a *Adapter) {
		a.catalog = &catalog
	}
}

// WithClock sets the clock used to date the sample catalog.
func WithClock(now func() time.Time) Option {
	return func(a *Adapter) {
		if now != nil {
			a.now = now
		}
	}
}

// New builds the adapter. A disabled adapter reports itself unconfigured.
func New(enabled bool, opts ...Option) *Adapter {
	a := &Adapter{enabled: enabled, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	if a.catalog == nil {
		sample := SampleCatalog(a.now())
		a.catalog = &sample
	}
	a.records = index(*a.catalog)
	return a
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) Configured() bool { return a != nil && a.enabled }

// Catalog returns the records served by the adapter.
func (a *Adapter) Catalog() Catalog { return *a.catalog }

// Fetch filters, orders and limits the catalog. Rows are RecordValue values
// holding copies of the stored records.
func (a *Adapter) Fetch(ctx context.Context, q sources.Query) ([]sources.Row, error) {
	if !a.Configured() {
		return nil, sources.NotConfigured(Name)
	}
	if err := ctx.Err(); err != nil {
		return nil, sources.TransportFailure(Name, err)
	}

	candidates, ok := a.records[q.Kind]
	if !ok {
		return nil, sources.TransportFailure(Name, fmt.Errorf("%w: kind %q", sources.ErrUnsupportedFilter, q.Kind))
	}

	matched := make([]record, 0, len(candidates))
	for _, rec := range candidates {
		keep, err := rec.matches(q.Filters)
		if err != nil {
			return nil, sources.TransportFailure(Name, err)
		}
		if keep {
			matched = append(matched, rec)
		}
	}

	if q.Order != nil {
		sortRecords(matched, *q.Order)
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	rows := make([]sources.Row, 0, len(matched))
	for _, rec := range matched {
		rows = append(rows, sources.RecordValue{Value: rec.clone()})
	}
	return rows, nil
}

func (r record) matches(filters []sources.Filter) (bool, error) {
	for _, filter := range filters {
		key := filter.Field
		if filter.Op == sources.OpRef {
			key += "." + sources.FieldID
		} else if filter.Op != sources.OpEqual {
			return false, fmt.Errorf("%w: %s on %s", sources.ErrUnsupportedFilter, filter.Op, filter.Field)
		}
		value, ok := r.fields[key]
		if !ok || value != filter.Value {
			return false, nil
		}
	}
	return true, nil
}

func sortRecords(records []record, order sources.Order) {
	slices.SortStableFunc(records, func(a, b record) int {
		var c int
		if order.Field == sources.FieldCreatedAt {
			c = a.created.Compare(b.created)
		} else {
			c = cmp.Compare(a.fields[order.Field], b.fields[order.Field])
		}
		if order.Descending {
			return -c
		}
		return c
	})
}

func index(catalog Catalog) map[sources.Kind][]record {
	out := map[sources.Kind][]record{}

	for _, c := range catalog.Categories {
		out[sources.KindCategory] = append(out[sources.KindCategory], record{
			fields: map[string]string{
				sources.FieldID:   c.ID,
				sources.FieldSlug: c.Slug,
				sources.FieldName: c.Name,
			},
			clone: func() any { copied := *c; return &copied },
		})
	}

	for _, au := range catalog.Authors {
		out[sources.KindAuthor] = append(out[sources.KindAuthor], record{
			fields: map[string]string{
				sources.FieldID:   au.ID,
				sources.FieldSlug: au.Slug,
				sources.FieldName: au.Name,
			},
			clone: func() any { copied := *au; return &copied },
		})
	}

	for _, ar := range catalog.Articles {
		fields := map[string]string{
			sources.FieldID:       ar.ID,
			sources.FieldSlug:     ar.Slug,
			sources.FieldName:     ar.Title,
			sources.FieldFeatured: strconv.FormatBool(ar.IsFeatured),
		}
		if ar.Category != nil {
			fields[sources.FieldCategory+"."+sources.FieldID] = ar.Category.ID
		}
		out[sources.KindArticle] = append(out[sources.KindArticle], record{
			fields:  fields,
			created: ar.PublishedAt,
			clone:   func() any { return ar.Clone() },
		})
	}

	for _, b := range catalog.BreakingNews {
		out[sources.KindBreakingNews] = append(out[sources.KindBreakingNews], record{
			fields:  map[string]string{sources.FieldID: b.ID},
			created: b.Timestamp,
			clone: func() any {
				copied := *b
				if b.URL != nil {
					url := *b.URL
					copied.URL = &url
				}
				return &copied
			},
		})
	}

	for _, ad := range catalog.Advertisements {
		out[sources.KindAdvertisement] = append(out[sources.KindAdvertisement], record{
			fields: map[string]string{
				sources.FieldID:       ad.ID,
				sources.FieldName:     ad.Name,
				sources.FieldPosition: string(ad.Position),
				sources.FieldActive:   strconv.FormatBool(ad.IsActive),
			},
			clone: func() any { copied := *ad; return &copied },
		})
	}

	return out
}
