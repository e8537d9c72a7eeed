package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	// EmojiMaterialized counts emoji put on disk or failed, by kind (custom, basic).
	EmojiMaterialized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_archive_emoji_materialized_total",
			Help: "Total number of emoji downloaded or copied into the archive.",
		},
		[]string{"kind", "status"}, // status: success, error
	)

	// TeamIconDownloads counts team icon downloads by variant (full, small).
	TeamIconDownloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_archive_team_icon_downloads_total",
			Help: "Total number of team icon downloads.",
		},
		[]string{"variant", "status"},
	)

	// SlackAPICalls counts Slack API calls.
	SlackAPICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slack_archive_slack_api_calls_total",
			Help: "Total number of Slack API calls.",
		},
		[]string{"method", "status"}, // status: success, error, rate_limited
	)

	// IndexEntries reports the size of the last emoji index built.
	IndexEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "slack_archive_emoji_index_entries",
			Help: "Number of entries in the last emoji index built.",
		},
		[]string{"kind"},
	)
)

// Status maps an error to the status label.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// StartServer serves /metrics on addr in the background. It returns nil when
// addr is empty.
func StartServer(addr string, logger *zap.Logger) *http.Server {
	if addr == "" {
		logger.Debug("Metrics address not configured, Prometheus endpoint disabled")
		return nil
	}

	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("Starting Prometheus metrics server", zap.String("address", addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Prometheus metrics server failed", zap.Error(err))
		}
	}()
	return srv
}
