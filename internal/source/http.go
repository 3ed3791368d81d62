package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/liftbook/internal/program"
)

// HTTPSource fetches program documents from a static web root.
type HTTPSource struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "liftbook/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewHTTP builds an HTTPSource rooted at base. Documents are requested from
// <base>/data/<id>.json. A zero timeout uses the default.
func NewHTTP(base string, timeout time.Duration) (*HTTPSource, error) {
	u, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSource{
		baseURL: u,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchProgram retrieves and decodes data/<id>.json.
func (s *HTTPSource) FetchProgram(ctx context.Context, id string) (*program.Document, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	if err := checkID(id); err != nil {
		return nil, err
	}

	rel := &url.URL{Path: DocumentPath(id, "json")}
	reqURL := s.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindFetch, ProgramID: id, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindFetch, ProgramID: id, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, &Error{Kind: KindFetch, ProgramID: id, Err: fmt.Errorf("%s returned status %d", rel.Path, resp.StatusCode)}
	}

	doc, err := program.Decode(resp.Body, program.FormatJSON)
	if err != nil {
		return nil, &Error{Kind: KindParse, ProgramID: id, Err: err}
	}
	return doc, nil
}

// parseBaseURL normalizes base into a directory URL so relative resolution
// keeps any path prefix ("https://host/site" resolves data/ under /site/).
func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("data url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse data url %q: %w", base, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("data url %q has no host", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
