package sources

import "time"

// Row is a raw record returned by an adapter. The concrete type tells the
// normalizer which backend shape it carries: EntryRow, RecordRow or
// RecordValue.
type Row interface {
	origin() string
}

// EntryRow is a headless CMS entry. Link fields are resolved in place to
// *EntryRow or *AssetRow up to the requested include depth; unresolved links
// are left as nil.
type EntryRow struct {
	ID          string
	ContentType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Fields      map[string]any
}

func (*EntryRow) origin() string { return "entry" }

// AssetRow is a CMS media asset.
type AssetRow struct {
	ID          string
	Title       string
	URL         string
	ContentType string
}

// RecordRow is a relational row keyed by column name. Embedded relations
// appear as nested map[string]any values.
type RecordRow map[string]any

func (RecordRow) origin() string { return "record" }

// RecordValue wraps an already canonical domain record, as served by the
// in-memory catalog.
type RecordValue struct {
	Value any
}

func (RecordValue) origin() string { return "value" }
