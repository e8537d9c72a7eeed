package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
	"golang.org/x/net/proxy"
)

// cookieTransport wraps an http.RoundTripper to add cookie headers
type cookieTransport struct {
	transport http.RoundTripper
	cookie    string
	logger    *zap.Logger
}

func (t *cookieTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Cookie", "d="+t.cookie)
	t.logger.Debug("Slack request", zap.String("host", req.URL.Host), zap.String("path", req.URL.Path))
	return t.transport.RoundTrip(req)
}

// newCookieTransport creates a transport with cookie authentication
func newCookieTransport(cookie string, logger *zap.Logger) *cookieTransport {
	return &cookieTransport{
		transport: http.DefaultTransport,
		cookie:    cookie,
		logger:    logger,
	}
}

// newHTTPClient builds the HTTP client shared by API calls and downloads,
// routed through the configured proxy and carrying the cookie if any.
func newHTTPClient(cfg Config, logger *zap.Logger) (*http.Client, error) {
	base := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL: %w", err)
		}
		switch proxyURL.Scheme {
		case "socks5", "socks5h":
			dialer, err := proxy.FromURL(proxyURL, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
			}
			contextDialer, ok := dialer.(proxy.ContextDialer)
			if !ok {
				return nil, fmt.Errorf("SOCKS5 dialer does not support contexts")
			}
			base.Proxy = nil
			base.DialContext = contextDialer.DialContext
		case "http", "https":
			base.Proxy = http.ProxyURL(proxyURL)
		default:
			return nil, fmt.Errorf("unsupported proxy scheme %q", proxyURL.Scheme)
		}
		logger.Info("Using proxy for Slack requests", zap.String("scheme", proxyURL.Scheme), zap.String("host", proxyURL.Host))
	}

	var transport http.RoundTripper = base
	if cfg.Cookie != "" {
		logger.Info("Using cookie authentication for Slack client")
		ct := newCookieTransport(cfg.Cookie, logger)
		ct.transport = base
		transport = ct
	}
	return &http.Client{Transport: transport}, nil
}

// withRetry runs fn and retries it for as long as Slack answers with a rate
// limit, waiting for the Retry-After duration in between.
func withRetry(ctx context.Context, logger *zap.Logger, fn func() error) error {
	for {
		err := fn()
		var rateLimitErr *slack.RateLimitedError
		if !errors.As(err, &rateLimitErr) {
			return err
		}

		logger.Debug("Rate limited by Slack, waiting",
			zap.Duration("retry_after", rateLimitErr.RetryAfter))
		select {
		case <-time.After(rateLimitErr.RetryAfter):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
