package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/sources"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func stringValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func optionalString(value any) *string {
	s := stringValue(value)
	if s == "" {
		return nil
	}
	return &s
}

func boolValue(value any, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return parsed
		}
	}
	return fallback
}

func positiveInt(value any) *int {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) {
			return nil
		}
		n = int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}
	if n <= 0 || n > math.MaxInt32 {
		return nil
	}
	out := int(n)
	return &out
}

func timeValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return v.UTC(), !v.IsZero()
	case string:
		raw := strings.TrimSpace(v)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, raw); err == nil {
				return parsed.UTC(), true
			}
		}
	}
	return time.Time{}, false
}

func optionalTime(value any) *time.Time {
	t, ok := timeValue(value)
	if !ok {
		return nil
	}
	return &t
}

func stringList(value any) []string {
	out := []string{}
	switch v := value.(type) {
	case []string:
		for _, item := range v {
			if item != "" {
				out = append(out, item)
			}
		}
	case []any:
		for _, item := range v {
			if s := stringValue(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		var decoded []string
		if err := json.Unmarshal([]byte(v), &decoded); err == nil {
			return stringList(decoded)
		}
	}
	return out
}

// assetURL accepts a resolved asset, a plain URL string or an embedded map
// with a url key.
func assetURL(value any) string {
	switch v := value.(type) {
	case *sources.AssetRow:
		if v == nil {
			return ""
		}
		return AbsoluteURL(v.URL)
	case string:
		return AbsoluteURL(v)
	case map[string]any:
		return AbsoluteURL(stringValue(v["url"]))
	default:
		return ""
	}
}

func optionalAssetURL(value any) *string {
	url := assetURL(value)
	if url == "" {
		return nil
	}
	return &url
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}
