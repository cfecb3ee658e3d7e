package fetch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrFetch reports a network or HTTP failure retrieving either data
// source. It is never retried; a failed fetch fails the run.
var ErrFetch = errors.New("fetch failed")

// Client wraps a resty client with the User-Agent and timeout policy
// shared by both data sources.
type Client struct {
	rest *resty.Client
}

func New(userAgent string, timeout time.Duration) *Client {
	rest := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	if userAgent != "" {
		rest.SetHeader("User-Agent", userAgent)
	}
	return &Client{rest: rest}
}

// Page fetches the statistics page. The content type must be HTML-ish so
// a misconfigured URL fails here instead of as an empty extraction.
func (c *Client) Page(ctx context.Context, url string) ([]byte, error) {
	body, ct, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	if !isHTMLContentType(ct) {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrFetch, ct)
	}
	return body, nil
}

// JSON fetches the secondary API payload.
func (c *Client) JSON(ctx context.Context, url string) ([]byte, error) {
	body, _, err := c.get(ctx, url)
	return body, err
}

func (c *Client) get(ctx context.Context, url string) ([]byte, string, error) {
	res, err := c.rest.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if res.StatusCode() < 200 || res.StatusCode() > 299 {
		return nil, "", fmt.Errorf("%w: unexpected status %d from %s", ErrFetch, res.StatusCode(), url)
	}
	return res.Body(), res.Header().Get("Content-Type"), nil
}

func isHTMLContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}
