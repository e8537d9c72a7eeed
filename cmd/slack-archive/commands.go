package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.mcconachie.co/slack-archive/internal/archive"
	"go.mcconachie.co/slack-archive/internal/config"
	"go.mcconachie.co/slack-archive/internal/emoji"
	archivemcp "go.mcconachie.co/slack-archive/internal/mcp"
	"go.mcconachie.co/slack-archive/internal/metrics"
	slackclient "go.mcconachie.co/slack-archive/internal/slack"
	"go.mcconachie.co/slack-archive/internal/store"
	"go.uber.org/zap"
)

// app holds what the subcommands share once the config is loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
	metrics *http.Server
	store   *store.Store
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "slack-archive",
		Short:         "Archive the emoji and team icons of a Slack workspace",
		Long:          "slack-archive stores the custom and Unicode emoji used in archived Slack messages, the workspace icons and the emoji index used by the static export.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.slack-archive/config.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("out-dir", "slack-archive", "output directory of the archive")
	flags.Bool("no-slack-connect", false, "do not call the Slack API; custom emoji and team icons are skipped")
	flags.Int("workers", 4, "number of emoji processed concurrently")
	flags.String("index-db", "", "also store the emoji index in this SQLite database")

	root.AddCommand(
		newEmojiCmd(a),
		newIndexCmd(a),
		newTeamIconsCmd(a),
		newMCPCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	logger, err := initLogger(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("command", cmd.Name()))
	a.metrics = metrics.StartServer(cfg.MetricsAddr, a.logger)
	return nil
}

// close releases what setup and archiver opened. It is safe to call when
// setup never ran.
func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("Failed to close index database", zap.Error(err))
		}
	}
	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metrics.Shutdown(ctx); err != nil {
			a.logger.Warn("Failed to stop metrics server", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// archiver builds the Slack client and the Archiver. The basic emoji table
// is only loaded when withBasic is set.
func (a *app) archiver(withBasic bool) (*archive.Archiver, error) {
	cfg := a.cfg

	a.logger.Info("Creating Slack client", zap.Bool("no_slack_connect", cfg.NoSlackConnect))
	client, err := slackclient.NewClient(slackclient.Config{
		Token:              cfg.Token,
		Cookie:             cfg.Cookie,
		ProxyURL:           cfg.ProxyURL,
		NoConnect:          cfg.NoSlackConnect,
		DownloadsPerSecond: cfg.DownloadsPerSecond,
	}, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Slack client: %w", err)
	}

	var basic *emoji.BasicTable
	if withBasic {
		basic, err = emoji.LoadBasicTable(cfg.BasicTable, cfg.BasicImageDir)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("Loaded basic emoji table", zap.Int("entries", basic.Len()))
	}

	var saver archive.IndexSaver
	if cfg.IndexDB != "" {
		s, err := store.Open(cfg.IndexDB, a.logger)
		if err != nil {
			return nil, err
		}
		a.store = s
		saver = s
	}

	return archive.New(client, basic, saver, archive.Options{
		Paths: emoji.Paths{
			DataDir:  cfg.DataDir,
			EmojiDir: cfg.EmojiDir,
			BasicDir: cfg.BasicEmojiDir,
		},
		OutDir:      cfg.OutDir,
		IndexFile:   cfg.IndexFile,
		ResponseDir: filepath.Join(cfg.OutDir, "responses"),
		Workers:     cfg.Workers,
	}, a.logger), nil
}

func newEmojiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "emoji <messages.json|export.jsonl|dir>...",
		Short: "Download the emoji used in archived messages and write the emoji index",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var messages []emoji.ArchiveMessage
			for _, path := range args {
				msgs, err := archive.LoadMessages(path)
				if err != nil {
					return err
				}
				messages = append(messages, msgs...)
			}

			archiver, err := a.archiver(true)
			if err != nil {
				return err
			}

			report, err := archiver.ArchiveEmoji(cmd.Context(), messages)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Summary)
			for _, f := range report.Result.Failures {
				fmt.Fprintf(out, "  %s\n", f.Error())
			}
			fmt.Fprintf(out, "Wrote emoji index with %d entries to %s\n", report.File.Entries, report.File.Path)
			return nil
		},
	}
}

func newIndexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the emoji index from the emoji already on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archiver, err := a.archiver(true)
			if err != nil {
				return err
			}

			report, err := archiver.RebuildIndex(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Indexed %d basic and %d custom emoji to %s\n", report.Basic, report.Custom, report.File.Path)
			for _, w := range report.Warnings {
				fmt.Fprintf(out, "  %s\n", w)
			}
			return nil
		},
	}
}

func newTeamIconsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "team-icons",
		Short: "Download the workspace icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archiver, err := a.archiver(false)
			if err != nil {
				return err
			}

			results, err := archiver.ArchiveTeamIcons(cmd.Context())
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err == nil {
					fmt.Fprintf(out, "Saved %s\n", r.Icon.AbsolutePath)
				}
			}
			return err
		},
	}
}

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the archive tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archiver, err := a.archiver(true)
			if err != nil {
				return err
			}

			server := archivemcp.CreateServer(a.logger, archiver, version)
			if err := server.Run(cmd.Context(), &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("Server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
}
