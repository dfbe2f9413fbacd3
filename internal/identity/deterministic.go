// Package identity derives stable ids for seeded newsroom records.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must prefix keys by record kind to keep kinds from colliding.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func CategoryID(slug string) string {
	return keyed("category", strings.ToLower(slug))
}

func AuthorID(slug string) string {
	return keyed("author", strings.ToLower(slug))
}

func ArticleID(slug string) string {
	return keyed("article", strings.ToLower(slug))
}

func BreakingNewsID(headline string) string {
	return keyed("breaking_news", headline)
}

func AdvertisementID(name string) string {
	return keyed("advertisement", name)
}

// keyed returns "" for a blank key.
func keyed(kind, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	return UUID("newsroom:" + kind + ":" + key).String()
}
