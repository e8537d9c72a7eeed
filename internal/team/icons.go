package team

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"sync"

	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	iconKeyFull  = "image_230"
	iconKeySmall = "image_44"
)

// ErrNoIcon is returned when the team record has no icon URL for a variant.
var ErrNoIcon = errors.New("team has no icon")

// Icon locates one team icon variant.
type Icon struct {
	URL          string `json:"url"`
	AbsolutePath string `json:"absolute_path"`
	RelativePath string `json:"relative_path"`
	Small        bool   `json:"small"`
}

// IconPaths picks the small (44px) or full (230px) icon of team and returns
// where it is stored under outDir: team<ext> or team_small<ext>.
func IconPaths(team *slack.TeamInfo, outDir string, small bool) (Icon, error) {
	key := iconKeyFull
	if small {
		key = iconKeySmall
	}

	var rawURL string
	if team != nil {
		rawURL, _ = team.Icon[key].(string)
	}
	if rawURL == "" {
		return Icon{}, fmt.Errorf("%w: missing %s", ErrNoIcon, key)
	}

	name := "team"
	if small {
		name = "team_small"
	}
	absolute := filepath.Join(outDir, name+extensionOf(rawURL))

	relative, err := filepath.Rel(outDir, absolute)
	if err != nil {
		return Icon{}, fmt.Errorf("failed to relativize icon path: %w", err)
	}

	return Icon{
		URL:          rawURL,
		AbsolutePath: absolute,
		RelativePath: filepath.ToSlash(relative),
		Small:        small,
	}, nil
}

func extensionOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Ext(rawURL)
	}
	return path.Ext(u.Path)
}

// Fetcher downloads a URL to a file, replacing an existing one.
type Fetcher interface {
	DownloadURL(ctx context.Context, url, destPath string) error
}

// Downloader stores the team icons in the output directory.
type Downloader struct {
	fetcher Fetcher
	outDir  string
	logger  *zap.Logger
}

// NewDownloader creates a Downloader writing into outDir.
func NewDownloader(fetcher Fetcher, outDir string, logger *zap.Logger) *Downloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Downloader{fetcher: fetcher, outDir: outDir, logger: logger}
}

// IconResult is the outcome for one icon variant.
type IconResult struct {
	Icon Icon
	Err  error
}

// DownloadIcons downloads the full and small icon concurrently. A failure of
// one variant does not stop the other; all failures are joined.
func (d *Downloader) DownloadIcons(ctx context.Context, team *slack.TeamInfo) ([]IconResult, error) {
	results := make([]IconResult, 2)

	var wg sync.WaitGroup
	for i, small := range []bool{false, true} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.downloadIcon(ctx, team, small)
		}()
	}
	wg.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) > 0 {
		d.logger.Warn("Downloaded team icons with errors", zap.Int("failed", len(errs)))
	} else {
		d.logger.Info("Downloaded team icons")
	}
	return results, errors.Join(errs...)
}

func (d *Downloader) downloadIcon(ctx context.Context, team *slack.TeamInfo, small bool) IconResult {
	icon, err := IconPaths(team, d.outDir, small)
	if err != nil {
		return IconResult{Icon: Icon{Small: small}, Err: err}
	}

	if err := d.fetcher.DownloadURL(ctx, icon.URL, icon.AbsolutePath); err != nil {
		d.logger.Warn("Unable to download team icon",
			zap.String("url", icon.URL),
			zap.Bool("small", small),
			zap.Error(err))
		return IconResult{Icon: icon, Err: fmt.Errorf("failed to download %s: %w", icon.RelativePath, err)}
	}
	return IconResult{Icon: icon}
}
