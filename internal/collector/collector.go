// Package collector implements the daily YouTube ingestion pipeline:
// topic search, channel lookup, popularity filter, video-detail lookup,
// and persistence into the analytics schema. The stages form a fixed
// dependency graph and run strictly sequentially; the external
// scheduler owns the daily trigger and retries.
package collector

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/yt-analytics/youtube-data-collector/internal/db/models"
	"github.com/yt-analytics/youtube-data-collector/internal/db/repository"
	"github.com/yt-analytics/youtube-data-collector/internal/metrics"
	"github.com/yt-analytics/youtube-data-collector/pkg/logger"
)

// Fixed pipeline parameters. These are part of the job definition, not
// configuration.
const (
	// SearchQuery is the topic query issued against the search endpoint.
	SearchQuery = `"power bi"|"power query"`

	// MinRequiredSubs is the subscriber threshold; channels at or below
	// it are dropped (strict greater-than).
	MinRequiredSubs uint64 = 1000

	// searchWindow bounds publishedAfter to the previous day at the
	// job's daily cadence.
	searchWindow = 24 * time.Hour
)

// VideoAPI is the slice of the YouTube Data API the pipeline consumes.
type VideoAPI interface {
	SearchVideos(ctx context.Context, query string, publishedAfter time.Time) ([]*youtubeapi.SearchResult, error)
	ChannelsByID(ctx context.Context, channelIDs []string) ([]*youtubeapi.Channel, error)
	VideoDetails(ctx context.Context, videoIDs []string) ([]*youtubeapi.Video, error)
}

// Pipeline holds the collaborators for one run. Construct a fresh
// Pipeline per invocation and inject the API client and repositories
// explicitly; nothing is captured in package state.
type Pipeline struct {
	RunID string

	api      VideoAPI
	channels repository.ChannelRepository
	videos   repository.VideoRepository
	metrics  *metrics.RunMetrics
	log      *zap.Logger
	now      func() time.Time
}

// New creates a Pipeline for a single run. A nil RunMetrics gets a
// fresh registry.
func New(api VideoAPI, channels repository.ChannelRepository, videos repository.VideoRepository, m *metrics.RunMetrics) *Pipeline {
	if m == nil {
		m = metrics.NewRunMetrics()
	}

	log := zap.NewNop()
	if logger.Log != nil {
		log = logger.Log
	}

	runID := uuid.New().String()

	return &Pipeline{
		RunID:    runID,
		api:      api,
		channels: channels,
		videos:   videos,
		metrics:  m,
		log:      log.With(zap.String("runId", runID)),
		now:      time.Now,
	}
}

// SearchVideos issues the topic search for videos published in the last
// day. Only the first result page is consumed.
func (p *Pipeline) SearchVideos(ctx context.Context) ([]*youtubeapi.SearchResult, error) {
	publishedAfter := p.now().Add(-searchWindow)

	p.log.Info("Searching videos",
		zap.String("query", SearchQuery),
		zap.Time("publishedAfter", publishedAfter),
	)

	results, err := p.api.SearchVideos(ctx, SearchQuery, publishedAfter)
	if err != nil {
		return nil, err
	}

	p.metrics.VideosFound.Set(float64(len(results)))
	p.log.Info("Search finished", zap.Int("videos", len(results)))

	return results, nil
}

// LookupChannels fetches channel metadata and statistics for the
// channels referenced by the search results. The id list is passed
// through as the snippets reference them; duplicates are left for the
// API to collapse.
func (p *Pipeline) LookupChannels(ctx context.Context, results []*youtubeapi.SearchResult) ([]*youtubeapi.Channel, error) {
	ids := make([]string, 0, len(results))
	for _, result := range results {
		if result.Snippet == nil {
			continue
		}
		ids = append(ids, result.Snippet.ChannelId)
	}

	if len(ids) == 0 {
		p.log.Info("No channels to look up")
		return nil, nil
	}

	p.log.Info("Fetching channels", zap.Strings("channelIds", ids))

	channels, err := p.api.ChannelsByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	p.metrics.ChannelsFetched.Set(float64(len(channels)))
	p.log.Info("Channel lookup finished", zap.Int("channels", len(channels)))

	return channels, nil
}

// LookupVideoDetails fetches snippet, content details, and statistics
// for the filtered videos in one batched call. Ids the API does not
// return simply produce no records downstream.
func (p *Pipeline) LookupVideoDetails(ctx context.Context, filtered []*youtubeapi.SearchResult) ([]*youtubeapi.Video, error) {
	ids := make([]string, 0, len(filtered))
	for _, result := range filtered {
		if result.Id == nil {
			continue
		}
		ids = append(ids, result.Id.VideoId)
	}

	if len(ids) == 0 {
		p.log.Info("No videos to fetch details for")
		return nil, nil
	}

	p.log.Info("Fetching video details", zap.Strings("videoIds", ids))

	details, err := p.api.VideoDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	p.log.Info("Video detail lookup finished", zap.Int("videos", len(details)))

	return details, nil
}

// PersistChannels reconciles the filtered channels into storage in one
// transaction. Running the same batch twice updates rows in place
// rather than duplicating them.
func (p *Pipeline) PersistChannels(ctx context.Context, channels []*youtubeapi.Channel) error {
	records := make([]*models.Channel, 0, len(channels))
	for _, channel := range channels {
		var subscribers int64
		if channel.Statistics != nil {
			subscribers = int64(channel.Statistics.SubscriberCount)
		}
		var title string
		if channel.Snippet != nil {
			title = channel.Snippet.Title
		}
		records = append(records, models.NewChannel(channel.Id, title, subscribers))
	}

	if err := p.channels.UpsertChannels(ctx, records); err != nil {
		return err
	}

	p.metrics.ChannelsUpserted.Set(float64(len(records)))
	p.log.Info("Channels upserted", zap.Int("channels", len(records)))

	return nil
}

// PersistVideos transforms the detail items into the video-family
// records and inserts them in one transaction. No existence check is
// performed: re-running a batch duplicates the video-family rows.
func (p *Pipeline) PersistVideos(ctx context.Context, details []*youtubeapi.Video) error {
	batch, err := BuildVideoRecords(details)
	if err != nil {
		return err
	}

	if err := p.videos.InsertVideoRecords(ctx, batch); err != nil {
		return err
	}

	rows := len(batch.Videos) + len(batch.Details) + len(batch.Statistics) +
		len(batch.ContentDetails) + len(batch.Tags)
	p.metrics.VideoRowsInserted.Set(float64(rows))
	p.log.Info("Video records inserted",
		zap.Int("videos", len(batch.Videos)),
		zap.Int("tags", len(batch.Tags)),
		zap.Int("rows", rows),
	)

	return nil
}

// Run executes the whole pipeline once, in dependency order: search,
// channel lookup, filter, detail lookup, then the two independent
// writers (channels first, though the order between them is not
// load-bearing). Any stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context) error {
	start := p.now()

	results, err := p.SearchVideos(ctx)
	if err != nil {
		return err
	}

	channels, err := p.LookupChannels(ctx, results)
	if err != nil {
		return err
	}

	filteredVideos, filteredChannels := FilterByMinSubscribers(results, channels, MinRequiredSubs)
	p.metrics.ChannelsKept.Set(float64(len(filteredChannels)))
	p.metrics.VideosKept.Set(float64(len(filteredVideos)))
	p.log.Info("Applied subscriber filter",
		zap.Uint64("minSubscribers", MinRequiredSubs),
		zap.Int("channelsKept", len(filteredChannels)),
		zap.Int("videosKept", len(filteredVideos)),
	)

	details, err := p.LookupVideoDetails(ctx, filteredVideos)
	if err != nil {
		return err
	}

	if err := p.PersistChannels(ctx, filteredChannels); err != nil {
		return err
	}

	if err := p.PersistVideos(ctx, details); err != nil {
		return err
	}

	elapsed := p.now().Sub(start)
	p.metrics.RunDurationSecs.Set(elapsed.Seconds())
	p.log.Info("Run finished", zap.Duration("elapsed", elapsed))

	return nil
}
