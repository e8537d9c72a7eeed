package emoji

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Kind tells custom and basic emoji apart.
type Kind string

const (
	KindCustom Kind = "custom"
	KindBasic  Kind = "basic"
)

// Downloader fetches a URL into destPath, replacing any existing file.
//
//go:generate go tool mockgen -source=$GOFILE -destination=materialize_mocks.go -package=emoji
type Downloader interface {
	DownloadURL(ctx context.Context, url, destPath string) error
}

// Result summarizes one Materialize call.
type Result struct {
	Total      int
	Downloaded int
	Copied     int
	Failures   []Failure // in input order
}

// Succeeded returns the number of names that ended up on disk.
func (r Result) Succeeded() int {
	return r.Downloaded + r.Copied
}

// Summary is the one-line report shown at the end of a run.
func (r Result) Summary() string {
	return fmt.Sprintf("Downloaded %d custom emoji and copied %d basic emoji (%d/%d)",
		r.Downloaded, r.Copied, r.Succeeded(), r.Total)
}

// Materializer puts the image of every referenced emoji on disk: custom emoji
// are downloaded, basic emoji are copied from the bundled table.
type Materializer struct {
	paths      Paths
	basic      *BasicTable
	downloader Downloader
	logger     *zap.Logger
	workers    int
}

// NewMaterializer creates a Materializer. workers below 1 means sequential.
func NewMaterializer(paths Paths, basic *BasicTable, downloader Downloader, logger *zap.Logger, workers int) *Materializer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Materializer{
		paths:      paths,
		basic:      basic,
		downloader: downloader,
		logger:     logger,
		workers:    workers,
	}
}

// Materialize processes every name independently. Failures are logged and
// collected; they never stop the remaining names.
func (m *Materializer) Materialize(ctx context.Context, names []string, list map[string]string) Result {
	if err := os.MkdirAll(m.paths.BasicDir, 0o755); err != nil {
		m.logger.Warn("Failed to create basic emoji directory",
			zap.String("dir", m.paths.BasicDir),
			zap.Error(err))
	}

	var downloaded, copied atomic.Int64
	failures := make([]*Failure, len(names))

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, name := range names {
		g.Go(func() error {
			kind, err := m.materializeOne(ctx, name, list)
			if err != nil {
				failures[i] = &Failure{Name: name, Kind: kind, Err: err}
				m.logFailure(failures[i])
				return nil
			}
			switch kind {
			case KindCustom:
				downloaded.Add(1)
			case KindBasic:
				copied.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := Result{
		Total:      len(names),
		Downloaded: int(downloaded.Load()),
		Copied:     int(copied.Load()),
	}
	for _, f := range failures {
		if f != nil {
			result.Failures = append(result.Failures, *f)
		}
	}

	if result.Succeeded() < result.Total {
		m.logger.Warn(result.Summary(), zap.Int("failed", len(result.Failures)))
	} else {
		m.logger.Info(result.Summary())
	}
	return result
}

func (m *Materializer) materializeOne(ctx context.Context, name string, list map[string]string) (Kind, error) {
	if list[name] != "" {
		return KindCustom, m.downloadCustom(ctx, name, list)
	}
	if err := ctx.Err(); err != nil {
		return KindBasic, err
	}

	entry, ok := m.basic.Lookup(name)
	if !ok {
		return KindBasic, ErrAssetNotFound
	}
	if err := m.basic.CopyImage(entry.Image, m.paths.BasicDir); err != nil {
		return KindBasic, err
	}
	return KindBasic, nil
}

func (m *Materializer) downloadCustom(ctx context.Context, name string, list map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	finalName, err := ResolveFinalName(name, list)
	if err != nil {
		return err
	}
	if strings.ContainsAny(finalName, `/\`) {
		return fmt.Errorf("%w: invalid emoji name %q", ErrUnresolvableReference, finalName)
	}

	rawURL := list[finalName]
	ext := extensionOf(rawURL)
	if ext == "" {
		return fmt.Errorf("%w: no file extension in %s", ErrDownloadFailed, rawURL)
	}

	dest, _ := m.paths.FilePath(finalName, ext, false)
	if err := m.downloader.DownloadURL(ctx, rawURL, dest); err != nil {
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	m.logger.Debug("Downloaded custom emoji",
		zap.String("emoji", name),
		zap.String("final_name", finalName),
		zap.String("path", dest))
	return nil
}

func (m *Materializer) logFailure(f *Failure) {
	if f.Kind == KindCustom {
		m.logger.Warn("Unable to download the emoji",
			zap.String("emoji", f.Name),
			zap.Error(f.Err))
		return
	}
	if errors.Is(f.Err, ErrAssetNotFound) {
		m.logger.Warn("Unable to find the emoji neither in custom nor basic emoji",
			zap.String("emoji", f.Name))
		return
	}
	m.logger.Warn("Unable to copy the basic emoji",
		zap.String("emoji", f.Name),
		zap.Error(f.Err))
}

// extensionOf returns the extension of the URL path, ignoring any query.
func extensionOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Ext(rawURL)
	}
	return path.Ext(u.Path)
}
