package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yt-analytics/youtube-data-collector/internal/db/models"
	"github.com/yt-analytics/youtube-data-collector/internal/db/testutil"
)

func familyBatch(videoID, channelID string, tags ...string) *VideoRecordBatch {
	batch := &VideoRecordBatch{
		Videos:  []*models.Video{models.NewVideo(videoID, channelID, time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC))},
		Details: []*models.VideoDetail{models.NewVideoDetail(videoID, "A title", "A description", "28")},
		Statistics: []*models.VideoStatistics{
			models.NewVideoStatistics(videoID, 10, 2, 0),
		},
		ContentDetails: []*models.ContentDetails{
			models.NewContentDetails(videoID, "2d", "hd", true, false, 0.75, "rectangular"),
		},
	}
	for _, tag := range tags {
		batch.Tags = append(batch.Tags, models.NewTag(videoID, tag))
	}
	return batch
}

func TestVideoRepository_InsertVideoRecords(t *testing.T) {
	td := testutil.SetupTestDatabase(t)
	defer td.Cleanup(t)

	repo := NewVideoRepository(td.Pool)
	ctx := context.Background()

	t.Run("inserts the whole family together", func(t *testing.T) {
		td.TruncateTables(t)

		err := repo.InsertVideoRecords(ctx, familyBatch("vid-1", "UC111", "a", "b"))
		require.NoError(t, err)

		videos, err := repo.GetVideosByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		require.Len(t, videos, 1)
		assert.Equal(t, "UC111", videos[0].ChannelID)

		details, err := repo.GetDetailsByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "A title", details[0].Title)
		assert.Nil(t, details[0].LiveBroadcastContent)

		stats, err := repo.GetStatisticsByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, int64(10), stats[0].ViewCount)
		assert.Equal(t, int64(2), stats[0].LikeCount)
		assert.Equal(t, int64(0), stats[0].CommentCount)

		contents, err := repo.GetContentDetailsByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		require.Len(t, contents, 1)
		assert.InDelta(t, 0.75, contents[0].DurationMinutes, 1e-9)
		assert.True(t, contents[0].Caption)
		assert.False(t, contents[0].LicensedContent)

		tags, err := repo.GetTagsByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		require.Len(t, tags, 2)
		assert.Equal(t, "a", tags[0].Tag)
		assert.Equal(t, "b", tags[1].Tag)
	})

	t.Run("re-running the same batch duplicates video-family rows", func(t *testing.T) {
		td.TruncateTables(t)

		batch := familyBatch("vid-1", "UC111", "a")
		require.NoError(t, repo.InsertVideoRecords(ctx, batch))
		require.NoError(t, repo.InsertVideoRecords(ctx, batch))

		videos, err := repo.GetVideosByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		assert.Len(t, videos, 2)

		stats, err := repo.GetStatisticsByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		assert.Len(t, stats, 2)

		tags, err := repo.GetTagsByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		assert.Len(t, tags, 2)
	})

	t.Run("video with no tags produces zero tag rows", func(t *testing.T) {
		td.TruncateTables(t)

		require.NoError(t, repo.InsertVideoRecords(ctx, familyBatch("vid-2", "UC222")))

		tags, err := repo.GetTagsByVideoID(ctx, "vid-2")
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		td.TruncateTables(t)

		err := repo.InsertVideoRecords(ctx, &VideoRecordBatch{})
		require.NoError(t, err)

		err = repo.InsertVideoRecords(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("multiple videos in one batch", func(t *testing.T) {
		td.TruncateTables(t)

		batch := familyBatch("vid-1", "UC111", "x")
		other := familyBatch("vid-2", "UC222")
		batch.Videos = append(batch.Videos, other.Videos...)
		batch.Details = append(batch.Details, other.Details...)
		batch.Statistics = append(batch.Statistics, other.Statistics...)
		batch.ContentDetails = append(batch.ContentDetails, other.ContentDetails...)
		batch.Tags = append(batch.Tags, other.Tags...)

		require.NoError(t, repo.InsertVideoRecords(ctx, batch))

		first, err := repo.GetVideosByVideoID(ctx, "vid-1")
		require.NoError(t, err)
		assert.Len(t, first, 1)

		second, err := repo.GetVideosByVideoID(ctx, "vid-2")
		require.NoError(t, err)
		assert.Len(t, second, 1)
	})
}
