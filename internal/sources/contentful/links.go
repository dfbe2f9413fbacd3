package contentful

import (
	"time"

	"github.com/goliatone/go-newsroom/internal/sources"
)

type collection struct {
	Items    []entry `json:"items"`
	Includes struct {
		Entry []entry `json:"Entry"`
		Asset []asset `json:"Asset"`
	} `json:"includes"`
}

type sys struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	LinkType    string    `json:"linkType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ContentType *struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	} `json:"contentType"`
}

type entry struct {
	Sys    sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type asset struct {
	Sys    sys `json:"sys"`
	Fields struct {
		Title string `json:"title"`
		File  *struct {
			URL         string `json:"url"`
			ContentType string `json:"contentType"`
		} `json:"file"`
	} `json:"fields"`
}

// linkResolver replaces link objects with the entries and assets shipped in
// the response, bounded by the include depth.
type linkResolver struct {
	items   []entry
	entries map[string]entry
	assets  map[string]*sources.AssetRow
}

func newLinkResolver(payload *collection) *linkResolver {
	r := &linkResolver{
		items:   payload.Items,
		entries: make(map[string]entry, len(payload.Items)+len(payload.Includes.Entry)),
		assets:  make(map[string]*sources.AssetRow, len(payload.Includes.Asset)),
	}
	for _, e := range payload.Includes.Entry {
		r.entries[e.Sys.ID] = e
	}
	for _, e := range payload.Items {
		r.entries[e.Sys.ID] = e
	}
	for _, a := range payload.Includes.Asset {
		row := &sources.AssetRow{ID: a.Sys.ID, Title: a.Fields.Title}
		if a.Fields.File != nil {
			row.URL = a.Fields.File.URL
			row.ContentType = a.Fields.File.ContentType
		}
		r.assets[a.Sys.ID] = row
	}
	return r
}

func (r *linkResolver) rows(depth int) []sources.Row {
	out := make([]sources.Row, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, r.entryRow(item, depth))
	}
	return out
}

func (r *linkResolver) entryRow(e entry, depth int) *sources.EntryRow {
	row := &sources.EntryRow{
		ID:        e.Sys.ID,
		CreatedAt: e.Sys.CreatedAt,
		UpdatedAt: e.Sys.UpdatedAt,
		Fields:    make(map[string]any, len(e.Fields)),
	}
	if e.Sys.ContentType != nil {
		row.ContentType = e.Sys.ContentType.Sys.ID
	}
	for key, value := range e.Fields {
		row.Fields[key] = r.resolve(value, depth)
	}
	return row
}

func (r *linkResolver) resolve(value any, depth int) any {
	switch v := value.(type) {
	case map[string]any:
		linkType, id, ok := asLink(v)
		if !ok {
			// Plain objects such as rich text documents may embed links.
			out := make(map[string]any, len(v))
			for key, item := range v {
				out[key] = r.resolve(item, depth)
			}
			return out
		}
		if depth <= 0 {
			return nil
		}
		switch linkType {
		case "Entry":
			if linked, found := r.entries[id]; found {
				return r.entryRow(linked, depth-1)
			}
		case "Asset":
			if linked, found := r.assets[id]; found {
				copied := *linked
				return &copied
			}
		}
		return nil
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			if resolved := r.resolve(item, depth); resolved != nil {
				out = append(out, resolved)
			}
		}
		return out
	default:
		return v
	}
}

func asLink(value map[string]any) (linkType, id string, ok bool) {
	rawSys, found := value["sys"].(map[string]any)
	if !found {
		return "", "", false
	}
	if kind, _ := rawSys["type"].(string); kind != "Link" {
		return "", "", false
	}
	linkType, _ = rawSys["linkType"].(string)
	id, _ = rawSys["id"].(string)
	return linkType, id, id != ""
}
