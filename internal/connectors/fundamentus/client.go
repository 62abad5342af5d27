package fundamentus

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
	"github.com/custodia-labs/fundamentus-cli/internal/logger"
)

// MaxBodySize caps the bytes read from a response.
const MaxBodySize = 32 << 20

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

// Client fetches the screener page over HTTP. It never retries.
type Client struct {
	settings domain.SourceSettings
	http     *http.Client
	now      func() time.Time
}

// NewClient creates an HTTP fetcher. A zero timeout uses DefaultTimeout.
func NewClient(settings domain.SourceSettings) *Client {
	timeout := settings.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultTimeout
	}
	return &Client{
		settings: settings,
		http:     &http.Client{Timeout: timeout},
		now:      time.Now,
	}
}

// Source returns the page URL.
func (c *Client) Source() string {
	return c.settings.URL
}

// Fetch downloads the page. Status codes of 400 and above, transport
// failures and empty bodies are returned as *domain.FetchError.
func (c *Client) Fetch(ctx context.Context) (*domain.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.settings.URL, http.NoBody)
	if err != nil {
		return nil, &domain.FetchError{URL: c.settings.URL, Err: err}
	}
	c.setHeaders(req)

	logger.Debug("GET %s (timeout %s)", c.settings.URL, c.http.Timeout)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: c.settings.URL, Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("HTTP %d, Content-Type %q", resp.StatusCode, resp.Header.Get("Content-Type"))
	if resp.StatusCode >= http.StatusBadRequest {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxBodySize))
		return nil, &domain.FetchError{URL: c.settings.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, &domain.FetchError{URL: c.settings.URL, StatusCode: resp.StatusCode, Err: err}
	}
	if len(body) == 0 {
		return nil, &domain.FetchError{
			URL:        c.settings.URL,
			StatusCode: resp.StatusCode,
			Err:        errors.New("empty body"),
		}
	}
	logger.Debug("read %d bytes", len(body))

	return &domain.RawDocument{
		URI:       c.settings.URL,
		Charset:   CharsetFromContentType(resp.Header.Get("Content-Type")),
		Content:   body,
		FetchedAt: c.now(),
	}, nil
}

func (c *Client) setHeaders(req *http.Request) {
	set := func(key, value string) {
		if value != "" {
			req.Header.Set(key, value)
		}
	}
	set("User-Agent", c.settings.UserAgent)
	set("Accept", c.settings.Accept)
	set("Accept-Language", c.settings.AcceptLanguage)
	set("Cache-Control", "no-cache")
	set("Pragma", "no-cache")
	set("Cookie", c.settings.Cookie)
}

// CharsetFromContentType returns the lowercased charset parameter of a
// Content-Type header, or "" when absent or unparsable.
func CharsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		// Fall back to a plain scan for headers mime rejects.
		lower := strings.ToLower(contentType)
		i := strings.Index(lower, "charset=")
		if i < 0 {
			return ""
		}
		v := lower[i+len("charset="):]
		if j := strings.IndexByte(v, ';'); j >= 0 {
			v = v[:j]
		}
		return strings.Trim(strings.TrimSpace(v), `"'`)
	}
	return strings.ToLower(strings.TrimSpace(params["charset"]))
}
