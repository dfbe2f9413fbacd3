package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-newsroom/internal/domain"
)

func TestAdvertisementEligibleAt(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	cases := []struct {
		name string
		ad   domain.Advertisement
		want bool
	}{
		{name: "active open ended", ad: domain.Advertisement{IsActive: true}, want: true},
		{name: "inactive", ad: domain.Advertisement{IsActive: false}, want: false},
		{name: "within window", ad: domain.Advertisement{IsActive: true, StartDate: &before, EndDate: &after}, want: true},
		{name: "not started", ad: domain.Advertisement{IsActive: true, StartDate: &after}, want: false},
		{name: "expired", ad: domain.Advertisement{IsActive: true, EndDate: &before}, want: false},
		{name: "starts exactly now", ad: domain.Advertisement{IsActive: true, StartDate: &now}, want: true},
		{name: "ends exactly now", ad: domain.Advertisement{IsActive: true, EndDate: &now}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ad.EligibleAt(now); got != tc.want {
				t.Fatalf("EligibleAt() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseAdPosition(t *testing.T) {
	got, err := domain.ParseAdPosition(" In_Article ")
	if err != nil {
		t.Fatalf("ParseAdPosition: %v", err)
	}
	if got != domain.AdPositionInArticle {
		t.Fatalf("expected %q got %q", domain.AdPositionInArticle, got)
	}

	if _, err := domain.ParseAdPosition("popup"); !errors.Is(err, domain.ErrUnknownAdPosition) {
		t.Fatalf("expected ErrUnknownAdPosition, got %v", err)
	}
}

func TestArticleCloneIsDeep(t *testing.T) {
	original := &domain.Article{
		ID:       "a1",
		Category: domain.UncategorizedCategory(),
		Author:   domain.StaffWriter(),
		Tags:     []string{"economy"},
	}

	copied := original.Clone()
	copied.Category.Name = "Changed"
	copied.Tags[0] = "changed"

	if original.Category.Name != "Uncategorized" {
		t.Fatalf("clone shares category pointer")
	}
	if original.Tags[0] != "economy" {
		t.Fatalf("clone shares tags backing array")
	}
}
