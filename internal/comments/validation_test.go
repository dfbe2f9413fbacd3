package comments_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-newsroom/internal/comments"
)

func TestCreateRequestValidate(t *testing.T) {
	valid := comments.CreateRequest{ArticleSlug: "budget-passes", AuthorName: "Al", Content: "Great read"}

	cases := []struct {
		name     string
		mutate   func(*comments.CreateRequest)
		wantCode string
	}{
		{name: "valid", mutate: func(*comments.CreateRequest) {}},
		{name: "missing slug", mutate: func(r *comments.CreateRequest) { r.ArticleSlug = "   " }, wantCode: comments.CodeArticleSlugRequired},
		{name: "one char name", mutate: func(r *comments.CreateRequest) { r.AuthorName = "A" }, wantCode: comments.CodeAuthorNameInvalid},
		{name: "padded one char name", mutate: func(r *comments.CreateRequest) { r.AuthorName = "  A  " }, wantCode: comments.CodeAuthorNameInvalid},
		{name: "two rune name", mutate: func(r *comments.CreateRequest) { r.AuthorName = "Ɛa" }},
		{name: "empty name", mutate: func(r *comments.CreateRequest) { r.AuthorName = "" }, wantCode: comments.CodeAuthorNameInvalid},
		{name: "short content", mutate: func(r *comments.CreateRequest) { r.Content = " ok " }, wantCode: comments.CodeContentInvalid},
		{name: "three char content", mutate: func(r *comments.CreateRequest) { r.Content = "yes" }},
		{name: "2000 chars", mutate: func(r *comments.CreateRequest) { r.Content = strings.Repeat("a", 2000) }},
		{name: "2000 chars padded", mutate: func(r *comments.CreateRequest) { r.Content = "  " + strings.Repeat("a", 2000) + "\n" }},
		{name: "2001 chars", mutate: func(r *comments.CreateRequest) { r.Content = strings.Repeat("a", 2001) }, wantCode: comments.CodeContentInvalid},
		{name: "first failing field wins", mutate: func(r *comments.CreateRequest) { r.ArticleSlug = ""; r.Content = "" }, wantCode: comments.CodeArticleSlugRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("expected valid request, got %v", err)
				}
				return
			}
			if !comments.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if got := comments.ErrorCode(err); got != tc.wantCode {
				t.Fatalf("code = %q, want %q", got, tc.wantCode)
			}
			if len(comments.FieldErrors(err)) == 0 {
				t.Fatalf("expected field errors")
			}
		})
	}
}

func TestCreateRequestNormalize(t *testing.T) {
	got := comments.CreateRequest{ArticleSlug: " a-b ", AuthorName: " Ama ", Content: "\tNice\n"}.Normalize()
	if got.ArticleSlug != "a-b" || got.AuthorName != "Ama" || got.Content != "Nice" {
		t.Fatalf("unexpected normalized request %+v", got)
	}
}

func TestCreateRequestNormalizeKeepsSlugCharacters(t *testing.T) {
	got := comments.CreateRequest{ArticleSlug: " Budget_2026 "}.Normalize()
	if got.ArticleSlug != "Budget_2026" {
		t.Fatalf("expected only trimming, got %q", got.ArticleSlug)
	}
}
