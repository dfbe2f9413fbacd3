package sources

import (
	"fmt"
	"strings"
)

// Kind names a logical content type independent of backend naming.
type Kind string

const (
	KindArticle       Kind = "article"
	KindCategory      Kind = "category"
	KindAuthor        Kind = "author"
	KindBreakingNews  Kind = "breaking_news"
	KindAdvertisement Kind = "advertisement"
)

// Logical field names understood by every adapter. Adapters translate them
// into their own column or field paths.
const (
	FieldID        = "id"
	FieldSlug      = "slug"
	FieldName      = "name"
	FieldFeatured  = "isFeatured"
	FieldCategory  = "category"
	FieldPosition  = "position"
	FieldActive    = "isActive"
	FieldCreatedAt = "createdAt"
)

// Op selects how a filter value is compared.
type Op int

const (
	// OpEqual is an exact match on a scalar field.
	OpEqual Op = iota
	// OpMatch is a backend-defined substring/full-text match.
	OpMatch
	// OpRef matches the backend id of a linked record.
	OpRef
)

func (o Op) String() string {
	switch o {
	case OpEqual:
		return "eq"
	case OpMatch:
		return "match"
	case OpRef:
		return "ref"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Filter restricts a query on one logical field.
type Filter struct {
	Field string
	Op    Op
	Value string
}

// Equal builds an exact-match filter.
func Equal(field, value string) Filter {
	return Filter{Field: field, Op: OpEqual, Value: value}
}

// Match builds a pattern filter. Only adapters implementing PatternMatcher
// accept it.
func Match(field, value string) Filter {
	return Filter{Field: field, Op: OpMatch, Value: value}
}

// Ref builds a filter on the id of a linked record.
func Ref(field, id string) Filter {
	return Filter{Field: field, Op: OpRef, Value: id}
}

// Order sorts results on one logical field.
type Order struct {
	Field      string
	Descending bool
}

// Query is the backend-agnostic request handed to adapters.
type Query struct {
	Kind    Kind
	Filters []Filter
	Order   *Order
	// Limit caps the number of rows; zero leaves it to the backend default.
	Limit int
	// Include is the relation expansion depth.
	Include int
}

// NewestFirst orders by record creation time, most recent first.
func NewestFirst() *Order {
	return &Order{Field: FieldCreatedAt, Descending: true}
}

// ByName orders alphabetically by name.
func ByName() *Order {
	return &Order{Field: FieldName}
}

// HasMatch reports whether the query carries any pattern filter.
func (q Query) HasMatch() bool {
	for _, f := range q.Filters {
		if f.Op == OpMatch {
			return true
		}
	}
	return false
}

func (q Query) String() string {
	parts := []string{string(q.Kind)}
	for _, f := range q.Filters {
		parts = append(parts, fmt.Sprintf("%s.%s=%s", f.Field, f.Op, f.Value))
	}
	if q.Order != nil {
		dir := "asc"
		if q.Order.Descending {
			dir = "desc"
		}
		parts = append(parts, "order="+q.Order.Field+"."+dir)
	}
	if q.Limit > 0 {
		parts = append(parts, fmt.Sprintf("limit=%d", q.Limit))
	}
	return strings.Join(parts, " ")
}
