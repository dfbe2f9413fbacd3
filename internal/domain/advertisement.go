package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownAdPosition is returned when a placement slot name is not recognised.
var ErrUnknownAdPosition = errors.New("domain: unknown advertisement position")

// AdPosition names a placement slot on the rendered page.
type AdPosition string

const (
	AdPositionSidebar   AdPosition = "sidebar"
	AdPositionBanner    AdPosition = "banner"
	AdPositionInArticle AdPosition = "in-article"
	AdPositionHeader    AdPosition = "header"
	AdPositionFooter    AdPosition = "footer"
)

// AdPositions lists every supported slot in display order.
func AdPositions() []AdPosition {
	return []AdPosition{
		AdPositionSidebar,
		AdPositionBanner,
		AdPositionInArticle,
		AdPositionHeader,
		AdPositionFooter,
	}
}

// ParseAdPosition converts a raw slot name into an AdPosition. Matching is
// case-insensitive and tolerates the underscore spelling used by some
// backends ("in_article").
func ParseAdPosition(raw string) (AdPosition, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "_", "-")
	for _, position := range AdPositions() {
		if string(position) == key {
			return position, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAdPosition, raw)
}

// Advertisement is a sponsored placement.
type Advertisement struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Image     string     `json:"image"`
	URL       string     `json:"url"`
	Position  AdPosition `json:"position"`
	IsActive  bool       `json:"is_active"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// EligibleAt reports whether the advertisement may be displayed at the given
// instant. Missing bounds are open-ended.
func (a Advertisement) EligibleAt(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.StartDate != nil && now.Before(*a.StartDate) {
		return false
	}
	if a.EndDate != nil && now.After(*a.EndDate) {
		return false
	}
	return true
}
