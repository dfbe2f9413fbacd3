package postgrest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/goliatone/go-newsroom/internal/sources"
)

const (
	categorySelect = "id,name,slug,description,color"
	authorSelect   = "id,name,slug,avatar,bio,role"
	articleSelect  = "id,title,slug,excerpt,content,featured_image,published_at,updated_at,is_breaking,is_featured,read_time,tags," +
		"category:categories(" + categorySelect + ")," +
		"author:authors(" + authorSelect + ")"
	breakingSelect      = "id,headline,url,timestamp"
	advertisementSelect = "id,name,image,url,position,is_active,start_date,end_date,created_at"
)

type table struct {
	name      string
	selection string
	// createdAt is the column standing in for record creation time.
	createdAt string
}

var tables = map[sources.Kind]table{
	sources.KindArticle:       {name: "articles", selection: articleSelect, createdAt: "published_at"},
	sources.KindCategory:      {name: "categories", selection: categorySelect, createdAt: "created_at"},
	sources.KindAuthor:        {name: "authors", selection: authorSelect, createdAt: "created_at"},
	sources.KindBreakingNews:  {name: "breaking_news", selection: breakingSelect, createdAt: "timestamp"},
	sources.KindAdvertisement: {name: "advertisements", selection: advertisementSelect, createdAt: "created_at"},
}

var columns = map[string]string{
	sources.FieldID:       "id",
	sources.FieldSlug:     "slug",
	sources.FieldName:     "name",
	sources.FieldFeatured: "is_featured",
	sources.FieldPosition: "position",
	sources.FieldActive:   "is_active",
}

// Adapter implements sources.Adapter over a Client. It does not accept
// pattern filters.
type Adapter struct {
	client *Client
}

var _ sources.Adapter = (*Adapter)(nil)

// NewAdapter wraps client as a content tier.
func NewAdapter(client *Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) Configured() bool {
	return a != nil && a.client.Configured()
}

// Fetch translates q into a table request and returns RecordRow values.
func (a *Adapter) Fetch(ctx context.Context, q sources.Query) ([]sources.Row, error) {
	if !a.Configured() {
		return nil, sources.NotConfigured(Name)
	}

	tbl, params, err := buildParams(q)
	if err != nil {
		return nil, sources.TransportFailure(Name, err)
	}

	records, err := a.client.Select(ctx, tbl.name, params)
	if err != nil {
		return nil, sources.TransportFailure(Name, err)
	}

	rows := make([]sources.Row, 0, len(records))
	for _, record := range records {
		rows = append(rows, sources.RecordRow(record))
	}
	return rows, nil
}

func buildParams(q sources.Query) (table, url.Values, error) {
	tbl, ok := tables[q.Kind]
	if !ok {
		return table{}, nil, fmt.Errorf("%w: kind %q", sources.ErrUnsupportedFilter, q.Kind)
	}

	params := url.Values{}
	params.Set("select", tbl.selection)

	for _, filter := range q.Filters {
		switch filter.Op {
		case sources.OpEqual:
			column, ok := columns[filter.Field]
			if !ok {
				return table{}, nil, fmt.Errorf("%w: field %q", sources.ErrUnsupportedFilter, filter.Field)
			}
			params.Set(column, "eq."+filter.Value)
		case sources.OpRef:
			params.Set(filter.Field+"_id", "eq."+filter.Value)
		default:
			return table{}, nil, fmt.Errorf("%w: %s on %s", sources.ErrUnsupportedFilter, filter.Op, filter.Field)
		}
	}

	if q.Order != nil {
		column := tbl.createdAt
		if q.Order.Field != sources.FieldCreatedAt {
			mapped, ok := columns[q.Order.Field]
			if !ok {
				return table{}, nil, fmt.Errorf("%w: order %q", sources.ErrUnsupportedFilter, q.Order.Field)
			}
			column = mapped
		}
		dir := "asc"
		if q.Order.Descending {
			dir = "desc"
		}
		params.Set("order", column+"."+dir)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	return tbl, params, nil
}
