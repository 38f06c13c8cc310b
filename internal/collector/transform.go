package collector

import (
	"fmt"
	"strconv"
	"time"

	youtubeapi "google.golang.org/api/youtube/v3"

	"github.com/yt-analytics/youtube-data-collector/internal/db/models"
	"github.com/yt-analytics/youtube-data-collector/internal/db/repository"
	"github.com/yt-analytics/youtube-data-collector/internal/service/youtube"
)

// BuildVideoRecords converts a batch of video-detail items into the
// record kinds persisted for each video: the video row, its detail row,
// a statistics snapshot, content details, and zero or more tags. One
// malformed item aborts the whole batch; there is no per-record
// skip-and-continue. CreatedOn is stamped at construction time.
func BuildVideoRecords(items []*youtubeapi.Video) (*repository.VideoRecordBatch, error) {
	batch := &repository.VideoRecordBatch{}

	for _, item := range items {
		snippet := item.Snippet
		if snippet == nil {
			return nil, fmt.Errorf("video %s: missing snippet part", item.Id)
		}

		uploadDate, err := time.Parse(time.RFC3339, snippet.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("video %s: parse publishedAt %q: %w", item.Id, snippet.PublishedAt, err)
		}

		batch.Videos = append(batch.Videos, models.NewVideo(item.Id, snippet.ChannelId, uploadDate))
		batch.Details = append(batch.Details, models.NewVideoDetail(item.Id, snippet.Title, snippet.Description, snippet.CategoryId))

		stats := item.Statistics
		if stats == nil {
			return nil, fmt.Errorf("video %s: missing statistics part", item.Id)
		}
		batch.Statistics = append(batch.Statistics, models.NewVideoStatistics(
			item.Id,
			int64(stats.ViewCount),
			int64(stats.LikeCount),
			int64(stats.CommentCount),
		))

		content := item.ContentDetails
		if content == nil {
			return nil, fmt.Errorf("video %s: missing contentDetails part", item.Id)
		}
		duration, err := youtube.ParseDuration(content.Duration)
		if err != nil {
			return nil, fmt.Errorf("video %s: %w", item.Id, err)
		}
		caption, err := strconv.ParseBool(content.Caption)
		if err != nil {
			return nil, fmt.Errorf("video %s: parse caption %q: %w", item.Id, content.Caption, err)
		}
		batch.ContentDetails = append(batch.ContentDetails, models.NewContentDetails(
			item.Id,
			content.Dimension,
			content.Definition,
			caption,
			content.LicensedContent,
			duration.Minutes(),
			content.Projection,
		))

		for _, tag := range snippet.Tags {
			batch.Tags = append(batch.Tags, models.NewTag(item.Id, tag))
		}
	}

	return batch, nil
}
