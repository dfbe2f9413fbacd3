// Package contentful reads entries from the Contentful Content Delivery API.
package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-newsroom/internal/logging"
	"github.com/goliatone/go-newsroom/internal/sources"
	"github.com/goliatone/go-newsroom/pkg/interfaces"
)

// Name identifies this tier in logs and status reports.
const Name = "contentful"

const (
	defaultBaseURL     = "https://cdn.contentful.com"
	defaultEnvironment = "master"
	maxResponseBytes   = 10 << 20
	maxIncludeDepth    = 10
)

var contentTypes = map[sources.Kind]string{
	sources.KindArticle:       "article",
	sources.KindCategory:      "category",
	sources.KindAuthor:        "author",
	sources.KindBreakingNews:  "breakingNews",
	sources.KindAdvertisement: "advertisement",
}

// Config carries the delivery API credentials.
type Config struct {
	SpaceID     string
	AccessToken string
	Environment string
	BaseURL     string
	Locale      string
}

// Adapter implements sources.Adapter over the delivery API.
type Adapter struct {
	cfg    Config
	client *http.Client
	logger interfaces.Logger
}

var (
	_ sources.Adapter        = (*Adapter)(nil)
	_ sources.PatternMatcher = (*Adapter)(nil)
)

// Option configures the adapter.
type Option func(*Adapter)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		if client != nil {
			a.client = client
		}
	}
}

// WithLogger sets the adapter logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New builds an adapter. Missing credentials are not an error: the adapter
// reports itself as unconfigured instead.
func New(cfg Config, opts ...Option) *Adapter {
	cfg.SpaceID = strings.TrimSpace(cfg.SpaceID)
	cfg.AccessToken = strings.TrimSpace(cfg.AccessToken)
	if strings.TrimSpace(cfg.Environment) == "" {
		cfg.Environment = defaultEnvironment
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	a := &Adapter{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

func (a *Adapter) Name() string { return Name }

func (a *Adapter) Configured() bool {
	return a != nil && a.cfg.SpaceID != "" && a.cfg.AccessToken != ""
}

func (a *Adapter) SupportsMatch() bool { return true }

// Fetch issues one entries request and returns items with links resolved.
func (a *Adapter) Fetch(ctx context.Context, q sources.Query) ([]sources.Row, error) {
	if !a.Configured() {
		return nil, sources.NotConfigured(Name)
	}

	params, err := buildParams(q)
	if err != nil {
		return nil, err
	}
	if a.cfg.Locale != "" {
		params.Set("locale", a.cfg.Locale)
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		a.cfg.BaseURL,
		url.PathEscape(a.cfg.SpaceID),
		url.PathEscape(a.cfg.Environment),
		params.Encode(),
	)

	started := time.Now()
	payload, err := a.get(ctx, endpoint)
	if err != nil {
		return nil, sources.TransportFailure(Name, err)
	}

	a.logger.WithContext(ctx).Debug("contentful.request",
		"query", q.String(),
		"items", len(payload.Items),
		"duration", time.Since(started),
	)

	return newLinkResolver(payload).rows(q.Include), nil
}

func (a *Adapter) get(ctx context.Context, endpoint string) (*collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &sources.StatusError{StatusCode: resp.StatusCode, Body: errorMessage(body)}
	}

	var payload collection
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return &payload, nil
}

func errorMessage(body []byte) string {
	var apiErr struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(body))
}

// buildParams translates a query into the delivery API search dialect.
func buildParams(q sources.Query) (url.Values, error) {
	contentType, ok := contentTypes[q.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: kind %q", sources.ErrUnsupportedFilter, q.Kind)
	}

	params := url.Values{}
	params.Set("content_type", contentType)

	for _, filter := range q.Filters {
		path := fieldPath(filter.Field)
		switch filter.Op {
		case sources.OpEqual:
			params.Set(path, filter.Value)
		case sources.OpMatch:
			params.Set(path+"[match]", filter.Value)
		case sources.OpRef:
			params.Set(path+".sys.id", filter.Value)
		default:
			return nil, fmt.Errorf("%w: %s", sources.ErrUnsupportedFilter, filter.Op)
		}
	}

	if q.Order != nil {
		order := fieldPath(q.Order.Field)
		if q.Order.Descending {
			order = "-" + order
		}
		params.Set("order", order)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Include > 0 {
		params.Set("include", strconv.Itoa(min(q.Include, maxIncludeDepth)))
	}
	return params, nil
}

func fieldPath(field string) string {
	switch field {
	case sources.FieldID:
		return "sys.id"
	case sources.FieldCreatedAt:
		return "sys.createdAt"
	default:
		return "fields." + field
	}
}
