// Package metrics exposes Prometheus collectors for a single collector
// run. The job is a short-lived batch process, so metrics live in a
// run-local registry and are shipped to a Pushgateway when one is
// configured instead of being scraped.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// RunMetrics holds the Prometheus collectors for one pipeline run.
type RunMetrics struct {
	registry *prometheus.Registry

	VideosFound       prometheus.Gauge
	ChannelsFetched   prometheus.Gauge
	ChannelsKept      prometheus.Gauge
	VideosKept        prometheus.Gauge
	ChannelsUpserted  prometheus.Gauge
	VideoRowsInserted prometheus.Gauge
	RunDurationSecs   prometheus.Gauge
}

// NewRunMetrics registers all run collectors on a fresh registry.
func NewRunMetrics() *RunMetrics {
	registry := prometheus.NewRegistry()

	m := &RunMetrics{
		registry: registry,
		VideosFound: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_videos_found",
			Help: "Search result items returned for the topic query.",
		}),
		ChannelsFetched: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_channels_fetched",
			Help: "Channel records fetched for the search results.",
		}),
		ChannelsKept: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_channels_kept",
			Help: "Channels that passed the minimum-subscriber filter.",
		}),
		VideosKept: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_videos_kept",
			Help: "Videos belonging to channels that passed the filter.",
		}),
		ChannelsUpserted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_channels_upserted",
			Help: "Channel rows reconciled into storage this run.",
		}),
		VideoRowsInserted: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_video_rows_inserted",
			Help: "Rows written across the video-family tables this run.",
		}),
		RunDurationSecs: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "youtube_collector_run_duration_seconds",
			Help: "Wall-clock duration of the pipeline run.",
		}),
	}

	registry.MustRegister(
		m.VideosFound,
		m.ChannelsFetched,
		m.ChannelsKept,
		m.VideosKept,
		m.ChannelsUpserted,
		m.VideoRowsInserted,
		m.RunDurationSecs,
	)

	return m
}

// Push ships the run metrics to the Pushgateway at gatewayURL, grouped
// by job name and run id. A missing gateway URL disables pushing.
func (m *RunMetrics) Push(gatewayURL, job, runID string) error {
	if gatewayURL == "" {
		return nil
	}

	return push.New(gatewayURL, job).
		Gatherer(m.registry).
		Grouping("run_id", runID).
		Push()
}
