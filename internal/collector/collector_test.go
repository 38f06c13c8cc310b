package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/yt-analytics/youtube-data-collector/internal/db/models"
	"github.com/yt-analytics/youtube-data-collector/internal/db/repository"
)

type stubAPI struct {
	searchResults []*youtubeapi.SearchResult
	channels      []*youtubeapi.Channel
	details       []*youtubeapi.Video

	searchErr   error
	channelsErr error
	detailsErr  error

	searchQuery        string
	publishedAfter     time.Time
	requestedChannels  []string
	requestedVideoIDs  []string
	videoDetailsCalled bool
}

func (s *stubAPI) SearchVideos(_ context.Context, query string, publishedAfter time.Time) ([]*youtubeapi.SearchResult, error) {
	s.searchQuery = query
	s.publishedAfter = publishedAfter
	return s.searchResults, s.searchErr
}

func (s *stubAPI) ChannelsByID(_ context.Context, channelIDs []string) ([]*youtubeapi.Channel, error) {
	s.requestedChannels = channelIDs
	return s.channels, s.channelsErr
}

func (s *stubAPI) VideoDetails(_ context.Context, videoIDs []string) ([]*youtubeapi.Video, error) {
	s.videoDetailsCalled = true
	s.requestedVideoIDs = videoIDs
	return s.details, s.detailsErr
}

type stubChannelRepo struct {
	upserted []*models.Channel
	err      error
}

func (s *stubChannelRepo) UpsertChannels(_ context.Context, channels []*models.Channel) error {
	s.upserted = channels
	return s.err
}

func (s *stubChannelRepo) GetChannelByID(context.Context, string) (*models.Channel, error) {
	return nil, errors.New("not implemented")
}

func (s *stubChannelRepo) ListChannels(context.Context, int, int) ([]*models.Channel, error) {
	return nil, errors.New("not implemented")
}

type stubVideoRepo struct {
	inserted *repository.VideoRecordBatch
	err      error
}

func (s *stubVideoRepo) InsertVideoRecords(_ context.Context, batch *repository.VideoRecordBatch) error {
	s.inserted = batch
	return s.err
}

func (s *stubVideoRepo) GetVideosByVideoID(context.Context, string) ([]*models.Video, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVideoRepo) GetDetailsByVideoID(context.Context, string) ([]*models.VideoDetail, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVideoRepo) GetStatisticsByVideoID(context.Context, string) ([]*models.VideoStatistics, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVideoRepo) GetContentDetailsByVideoID(context.Context, string) ([]*models.ContentDetails, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVideoRepo) GetTagsByVideoID(context.Context, string) ([]*models.Tag, error) {
	return nil, errors.New("not implemented")
}

func TestPipeline_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("full run persists only records for popular channels", func(t *testing.T) {
		api := &stubAPI{
			searchResults: []*youtubeapi.SearchResult{
				searchResult("v1", "UC-small"),
				searchResult("v2", "UC-big"),
				searchResult("v3", "UC-big"),
			},
			channels: []*youtubeapi.Channel{
				channel("UC-small", 999),
				channel("UC-big", 1001),
			},
			details: []*youtubeapi.Video{
				detailItem("v2"),
				detailItem("v3"),
			},
		}
		channelRepo := &stubChannelRepo{}
		videoRepo := &stubVideoRepo{}

		p := New(api, channelRepo, videoRepo, nil)
		require.NoError(t, p.Run(ctx))
		assert.NotEmpty(t, p.RunID)

		// Search used the fixed query and a one-day lookback.
		assert.Equal(t, SearchQuery, api.searchQuery)
		assert.WithinDuration(t, time.Now().Add(-24*time.Hour), api.publishedAfter, time.Minute)

		// Channel ids are passed through as referenced, duplicates included.
		assert.Equal(t, []string{"UC-small", "UC-big", "UC-big"}, api.requestedChannels)

		// Only videos from the kept channel reach the detail lookup.
		assert.Equal(t, []string{"v2", "v3"}, api.requestedVideoIDs)

		require.Len(t, channelRepo.upserted, 1)
		assert.Equal(t, "UC-big", channelRepo.upserted[0].ChannelID)
		assert.Equal(t, int64(1001), channelRepo.upserted[0].SubscribersCount)

		require.NotNil(t, videoRepo.inserted)
		assert.Len(t, videoRepo.inserted.Videos, 2)
		assert.Len(t, videoRepo.inserted.Statistics, 2)
		assert.Len(t, videoRepo.inserted.ContentDetails, 2)
	})

	t.Run("empty search result short-circuits the lookups", func(t *testing.T) {
		api := &stubAPI{}
		channelRepo := &stubChannelRepo{}
		videoRepo := &stubVideoRepo{}

		p := New(api, channelRepo, videoRepo, nil)
		require.NoError(t, p.Run(ctx))

		assert.False(t, api.videoDetailsCalled)
		assert.Empty(t, channelRepo.upserted)
	})

	t.Run("search error aborts the run", func(t *testing.T) {
		api := &stubAPI{searchErr: errors.New("quota exceeded")}

		p := New(api, &stubChannelRepo{}, &stubVideoRepo{}, nil)
		err := p.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("channel lookup error aborts the run", func(t *testing.T) {
		api := &stubAPI{
			searchResults: []*youtubeapi.SearchResult{searchResult("v1", "UC-a")},
			channelsErr:   errors.New("network failure"),
		}

		p := New(api, &stubChannelRepo{}, &stubVideoRepo{}, nil)
		require.Error(t, p.Run(ctx))
	})

	t.Run("transformation error aborts before the video write", func(t *testing.T) {
		bad := detailItem("v1")
		bad.ContentDetails.Duration = "not-a-duration"

		api := &stubAPI{
			searchResults: []*youtubeapi.SearchResult{searchResult("v1", "UC-big")},
			channels:      []*youtubeapi.Channel{channel("UC-big", 1001)},
			details:       []*youtubeapi.Video{bad},
		}
		videoRepo := &stubVideoRepo{}

		p := New(api, &stubChannelRepo{}, videoRepo, nil)
		require.Error(t, p.Run(ctx))
		assert.Nil(t, videoRepo.inserted)
	})

	t.Run("channel writer error leaves the video writer untouched", func(t *testing.T) {
		api := &stubAPI{
			searchResults: []*youtubeapi.SearchResult{searchResult("v1", "UC-big")},
			channels:      []*youtubeapi.Channel{channel("UC-big", 1001)},
			details:       []*youtubeapi.Video{detailItem("v1")},
		}
		channelRepo := &stubChannelRepo{err: errors.New("connection refused")}
		videoRepo := &stubVideoRepo{}

		p := New(api, channelRepo, videoRepo, nil)
		require.Error(t, p.Run(ctx))
		assert.Nil(t, videoRepo.inserted)
	})

	t.Run("video writer error surfaces", func(t *testing.T) {
		api := &stubAPI{
			searchResults: []*youtubeapi.SearchResult{searchResult("v1", "UC-big")},
			channels:      []*youtubeapi.Channel{channel("UC-big", 1001)},
			details:       []*youtubeapi.Video{detailItem("v1")},
		}
		videoRepo := &stubVideoRepo{err: errors.New("constraint violation")}

		p := New(api, &stubChannelRepo{}, videoRepo, nil)
		require.Error(t, p.Run(ctx))
	})
}
