package slack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/slack-go/slack"
	"go.mcconachie.co/slack-archive/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNoConnect is returned by operations that need the network when the
// client was created with NoConnect.
var ErrNoConnect = errors.New("slack connection disabled")

// SlackAPI defines the Slack API methods used by the client
//
//go:generate go tool mockgen -source=$GOFILE -destination=client_mocks.go -package=slack
type SlackAPI interface {
	GetEmojiContext(ctx context.Context) (map[string]string, error)
	GetTeamInfoContext(ctx context.Context) (*slack.TeamInfo, error)
	GetFileContext(ctx context.Context, downloadURL string, writer io.Writer) error
}

// Config holds configuration for the Slack client
type Config struct {
	Token              string  // Slack API token (required unless NoConnect)
	Cookie             string  // Slack cookie for xoxc token auth (optional)
	ProxyURL           string  // socks5:// or http(s):// proxy (optional)
	NoConnect          bool    // never touch the network
	DownloadsPerSecond float64 // 0 disables the download rate limit
	APIURL             string  // overrides the Slack API base URL (optional)
}

type Client struct {
	api       SlackAPI
	logger    *zap.Logger
	limiter   *rate.Limiter
	noConnect bool
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.NoConnect {
		logger.Info("Slack connection disabled, using empty emoji list and team")
		return &Client{logger: logger, noConnect: true}, nil
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("slack token is required")
	}

	httpClient, err := newHTTPClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	opts := []slack.Option{slack.OptionHTTPClient(httpClient)}
	if cfg.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(cfg.APIURL))
	}

	return newClientWithAPI(slack.New(cfg.Token, opts...), logger, newLimiter(cfg.DownloadsPerSecond)), nil
}

// newClientWithAPI creates a client with a given SlackAPI (for testing)
func newClientWithAPI(api SlackAPI, logger *zap.Logger, limiter *rate.Limiter) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		api:     api,
		logger:  logger,
		limiter: limiter,
	}
}

func newLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// CustomEmoji returns the workspace's custom emoji, name to URL or
// "alias:<name>". It is empty when the client does not connect.
func (c *Client) CustomEmoji(ctx context.Context) (map[string]string, error) {
	if c.noConnect {
		return map[string]string{}, nil
	}

	var list map[string]string
	err := c.call(ctx, "emoji.list", func() error {
		var e error
		list, e = c.api.GetEmojiContext(ctx)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list custom emoji: %w", err)
	}
	if list == nil {
		list = map[string]string{}
	}

	c.logger.Debug("Fetched custom emoji list", zap.Int("count", len(list)))
	return list, nil
}

// TeamInfo returns the workspace record. It is empty when the client does
// not connect.
func (c *Client) TeamInfo(ctx context.Context) (*slack.TeamInfo, error) {
	if c.noConnect {
		return &slack.TeamInfo{}, nil
	}

	var team *slack.TeamInfo
	err := c.call(ctx, "team.info", func() error {
		var e error
		team, e = c.api.GetTeamInfoContext(ctx)
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get team info: %w", err)
	}
	return team, nil
}

// DownloadURL fetches url with the client's credentials and writes it to
// destPath, replacing any existing file. The file appears only once the
// download is complete.
func (c *Client) DownloadURL(ctx context.Context, url, destPath string) error {
	if c.noConnect {
		return ErrNoConnect
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(destPath)+".*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	err = c.call(ctx, "files.download", func() error {
		if err := tmp.Truncate(0); err != nil {
			return err
		}
		if _, err := tmp.Seek(0, io.SeekStart); err != nil {
			return err
		}
		return c.api.GetFileContext(ctx, url, tmp)
	})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", url, err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// call runs fn with rate-limit retries and records the outcome.
func (c *Client) call(ctx context.Context, method string, fn func() error) error {
	err := withRetry(ctx, c.logger, func() error {
		err := fn()
		var rateLimitErr *slack.RateLimitedError
		if errors.As(err, &rateLimitErr) {
			metrics.SlackAPICalls.WithLabelValues(method, "rate_limited").Inc()
		}
		return err
	})
	metrics.SlackAPICalls.WithLabelValues(method, metrics.Status(err)).Inc()
	return err
}
