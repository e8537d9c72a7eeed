package archive

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/slack-go/slack"
	"go.mcconachie.co/slack-archive/internal/emoji"
	"go.mcconachie.co/slack-archive/internal/metrics"
	slackclient "go.mcconachie.co/slack-archive/internal/slack"
	"go.mcconachie.co/slack-archive/internal/store"
	"go.mcconachie.co/slack-archive/internal/team"
	"go.uber.org/zap"
)

// Source is the part of the Slack client the archiver needs.
//
//go:generate go tool mockgen -source=$GOFILE -destination=archive_mocks.go -package=archive
type Source interface {
	CustomEmoji(ctx context.Context) (map[string]string, error)
	TeamInfo(ctx context.Context) (*slack.TeamInfo, error)
	DownloadURL(ctx context.Context, url, destPath string) error
}

// IndexSaver persists a built index next to the JSON file.
type IndexSaver interface {
	SaveIndex(ctx context.Context, runID string, index emoji.Index) (store.Run, error)
}

// Options locates the archive on disk.
type Options struct {
	Paths       emoji.Paths
	OutDir      string
	IndexFile   string
	ResponseDir string
	Workers     int
}

// Archiver runs the emoji and team icon steps of an archive export.
type Archiver struct {
	source    Source
	basic     *emoji.BasicTable
	saver     IndexSaver
	opts      Options
	responses *FileResponseWriter
	logger    *zap.Logger
}

// New creates an Archiver. saver may be nil.
func New(source Source, basic *emoji.BasicTable, saver IndexSaver, opts Options, logger *zap.Logger) *Archiver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ResponseDir == "" {
		opts.ResponseDir = opts.Paths.DataDir
	}
	return &Archiver{
		source:    source,
		basic:     basic,
		saver:     saver,
		opts:      opts,
		responses: NewFileResponseWriter(opts.ResponseDir),
		logger:    logger,
	}
}

// Responses returns the writer used for tool output files.
func (a *Archiver) Responses() *FileResponseWriter {
	return a.responses
}

// IndexReport describes a written index.
type IndexReport struct {
	RunID    string           `json:"run_id"`
	File     FileRef          `json:"file"`
	Basic    int              `json:"basic"`
	Custom   int              `json:"custom"`
	Stats    emoji.IndexStats `json:"-"`
	Stored   bool             `json:"stored"`
	Warnings []string         `json:"warnings,omitempty"`
}

// EmojiReport describes one ArchiveEmoji run.
type EmojiReport struct {
	IndexReport
	Names   []string     `json:"names"`
	Result  emoji.Result `json:"-"`
	Summary string       `json:"summary"`
}

// ArchiveEmoji materializes every emoji used in messages and rewrites the
// index. Failures of single emoji are reported in the result; the returned
// error is set only when the index cannot be written.
func (a *Archiver) ArchiveEmoji(ctx context.Context, messages []emoji.ArchiveMessage) (EmojiReport, error) {
	runID := uuid.NewString()
	logger := a.logger.With(zap.String("run_id", runID))

	names := emoji.FindEmojis(messages)
	logger.Info("Found emoji in messages",
		zap.Int("messages", len(messages)),
		zap.Int("emoji", len(names)))

	list := a.customEmoji(ctx, logger)

	m := emoji.NewMaterializer(a.opts.Paths, a.basic, a.source, logger, a.opts.Workers)
	result := m.Materialize(ctx, names, list)
	recordMaterialized(result)

	index, err := a.writeIndex(ctx, runID, list, logger)
	return EmojiReport{
		IndexReport: index,
		Names:       names,
		Result:      result,
		Summary:     result.Summary(),
	}, err
}

// RebuildIndex rewrites the index from the assets already on disk.
func (a *Archiver) RebuildIndex(ctx context.Context) (IndexReport, error) {
	runID := uuid.NewString()
	logger := a.logger.With(zap.String("run_id", runID))

	list := a.customEmoji(ctx, logger)
	return a.writeIndex(ctx, runID, list, logger)
}

// ArchiveTeamIcons downloads the full and small team icon into the output
// directory. A team without icons is skipped.
func (a *Archiver) ArchiveTeamIcons(ctx context.Context) ([]team.IconResult, error) {
	logger := a.logger.With(zap.String("run_id", uuid.NewString()))

	info, err := a.source.TeamInfo(ctx)
	if err != nil {
		return nil, slackclient.WrapError(logger, "team.info", err)
	}
	if info == nil || len(info.Icon) == 0 {
		logger.Info("Team has no icons, skipping")
		return nil, nil
	}

	results, err := team.NewDownloader(a.source, a.opts.OutDir, logger).DownloadIcons(ctx, info)
	for _, r := range results {
		variant := "full"
		if r.Icon.Small {
			variant = "small"
		}
		metrics.TeamIconDownloads.WithLabelValues(variant, metrics.Status(r.Err)).Inc()
	}
	return results, err
}

// customEmoji fetches the custom emoji list. A failed fetch is logged and
// treated as an empty list so that basic emoji still get archived.
func (a *Archiver) customEmoji(ctx context.Context, logger *zap.Logger) map[string]string {
	list, err := a.source.CustomEmoji(ctx)
	if err != nil {
		logger.Warn("Unable to fetch custom emoji, continuing with basic emoji only",
			zap.Error(slackclient.WrapError(logger, "emoji.list", err)))
		return map[string]string{}
	}
	return list
}

func (a *Archiver) writeIndex(ctx context.Context, runID string, list map[string]string, logger *zap.Logger) (IndexReport, error) {
	index, stats := emoji.BuildIndex(a.basic, a.opts.Paths, list)
	metrics.IndexEntries.WithLabelValues(string(emoji.KindBasic)).Set(float64(len(index) - stats.Custom))
	metrics.IndexEntries.WithLabelValues(string(emoji.KindCustom)).Set(float64(stats.Custom))

	report := IndexReport{
		RunID:  runID,
		Basic:  len(index) - stats.Custom,
		Custom: stats.Custom,
		Stats:  stats,
	}
	if len(stats.Unresolved) > 0 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d custom emoji have no local asset", len(stats.Unresolved)))
	}

	ref, err := a.responses.WriteJSONNamed(a.indexFile(), index, len(index))
	if err != nil {
		return report, fmt.Errorf("failed to write emoji index: %w", err)
	}
	report.File = ref

	if a.saver != nil {
		if _, err := a.saver.SaveIndex(ctx, runID, index); err != nil {
			return report, fmt.Errorf("failed to store emoji index: %w", err)
		}
		report.Stored = true
	}

	logger.Info("Wrote emoji index",
		zap.String("path", ref.Path),
		zap.Int("basic", report.Basic),
		zap.Int("custom", report.Custom),
		zap.Int("unresolved", len(stats.Unresolved)))
	return report, nil
}

func (a *Archiver) indexFile() string {
	if a.opts.IndexFile != "" {
		return a.opts.IndexFile
	}
	return "emojis.json"
}

func recordMaterialized(r emoji.Result) {
	metrics.EmojiMaterialized.WithLabelValues(string(emoji.KindCustom), "success").Add(float64(r.Downloaded))
	metrics.EmojiMaterialized.WithLabelValues(string(emoji.KindBasic), "success").Add(float64(r.Copied))
	for _, f := range r.Failures {
		metrics.EmojiMaterialized.WithLabelValues(string(f.Kind), "error").Inc()
	}
}
