package sources_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-newsroom/internal/sources"
)

type fakeAdapter struct {
	configured bool
	rows       []sources.Row
	err        error
}

func (f fakeAdapter) Name() string        { return "fake" }
func (f fakeAdapter) Configured() bool    { return f.configured }
func (f fakeAdapter) SupportsMatch() bool { return true }

func (f fakeAdapter) Fetch(context.Context, sources.Query) ([]sources.Row, error) {
	return f.rows, f.err
}

func TestExecuteClassifiesOutcomes(t *testing.T) {
	ctx := context.Background()
	q := sources.Query{Kind: sources.KindArticle}

	out := sources.Execute(ctx, fakeAdapter{}, q)
	if out.Status != sources.StatusNotConfigured || !sources.IsNotConfigured(out.Err) {
		t.Fatalf("expected not configured, got %v (%v)", out.Status, out.Err)
	}

	out = sources.Execute(ctx, fakeAdapter{configured: true, err: errors.New("dial tcp: refused")}, q)
	if out.Status != sources.StatusFailed || !sources.IsTransportFailure(out.Err) {
		t.Fatalf("expected transport failure, got %v (%v)", out.Status, out.Err)
	}

	out = sources.Execute(ctx, fakeAdapter{configured: true, err: context.DeadlineExceeded}, q)
	if out.Status != sources.StatusFailed {
		t.Fatalf("expected deadline to count as failure, got %v", out.Status)
	}

	rows := []sources.Row{sources.RecordRow{"id": "1"}}
	out = sources.Execute(ctx, fakeAdapter{configured: true, rows: rows}, q)
	if out.Status != sources.StatusOK || len(out.Rows) != 1 || out.Source != "fake" {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestTransportFailureIsIdempotent(t *testing.T) {
	base := &sources.StatusError{StatusCode: 502, Body: "bad gateway"}
	wrapped := sources.TransportFailure("postgrest", base)
	again := sources.TransportFailure("contentful", wrapped)

	if wrapped != again {
		t.Fatalf("expected already classified error to be returned as is")
	}
	var statusErr *sources.StatusError
	if !errors.As(again, &statusErr) || statusErr.StatusCode != 502 {
		t.Fatalf("expected StatusError to remain reachable, got %v", again)
	}
	if sources.IsNotConfigured(wrapped) {
		t.Fatalf("transport failure must not look unconfigured")
	}
}

func TestSupportsMatch(t *testing.T) {
	if !sources.SupportsMatch(fakeAdapter{}) {
		t.Fatal("expected fake adapter to support match")
	}
}

func TestQueryString(t *testing.T) {
	q := sources.Query{
		Kind:    sources.KindArticle,
		Filters: []sources.Filter{sources.Equal(sources.FieldSlug, "a-b")},
		Order:   sources.NewestFirst(),
		Limit:   1,
	}
	want := "article slug.eq=a-b order=createdAt.desc limit=1"
	if got := q.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if q.HasMatch() {
		t.Fatal("query has no match filter")
	}
}
