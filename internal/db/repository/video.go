package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yt-analytics/youtube-data-collector/internal/db"
	"github.com/yt-analytics/youtube-data-collector/internal/db/models"
)

// VideoRecordBatch groups the record kinds built from one detail-fetch
// batch. All slices are inserted together in a single transaction: the
// video/detail/statistics/content quadruple for a given video id always
// lands atomically, alongside its tags.
type VideoRecordBatch struct {
	Videos         []*models.Video
	Details        []*models.VideoDetail
	Statistics     []*models.VideoStatistics
	ContentDetails []*models.ContentDetails
	Tags           []*models.Tag
}

// Empty reports whether the batch contains no records at all.
func (b *VideoRecordBatch) Empty() bool {
	return len(b.Videos) == 0 && len(b.Details) == 0 && len(b.Statistics) == 0 &&
		len(b.ContentDetails) == 0 && len(b.Tags) == 0
}

// VideoRepository defines operations for the append-only video-family tables.
type VideoRepository interface {
	// InsertVideoRecords inserts the whole batch in one transaction,
	// committed once at the end. There is no existence check: re-running
	// the same batch inserts a second set of rows for the same video ids.
	InsertVideoRecords(ctx context.Context, batch *VideoRecordBatch) error

	// GetVideosByVideoID retrieves the uploaded-video rows for a YouTube
	// video id. More than one row means the id was ingested by several runs.
	GetVideosByVideoID(ctx context.Context, videoID string) ([]*models.Video, error)

	// GetDetailsByVideoID retrieves the detail rows for a video id.
	GetDetailsByVideoID(ctx context.Context, videoID string) ([]*models.VideoDetail, error)

	// GetStatisticsByVideoID retrieves the statistics snapshots for a video id.
	GetStatisticsByVideoID(ctx context.Context, videoID string) ([]*models.VideoStatistics, error)

	// GetContentDetailsByVideoID retrieves the content-details rows for a video id.
	GetContentDetailsByVideoID(ctx context.Context, videoID string) ([]*models.ContentDetails, error)

	// GetTagsByVideoID retrieves the tags recorded for a video id.
	GetTagsByVideoID(ctx context.Context, videoID string) ([]*models.Tag, error)
}

type videoRepository struct {
	pool *pgxpool.Pool
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(pool *pgxpool.Pool) VideoRepository {
	return &videoRepository{pool: pool}
}

func (r *videoRepository) InsertVideoRecords(ctx context.Context, batch *VideoRecordBatch) error {
	if batch == nil || batch.Empty() {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return db.WrapError(err, "begin video records insert")
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	b := &pgx.Batch{}

	for _, video := range batch.Videos {
		b.Queue(
			`INSERT INTO youtube_analytics.uploaded_videos (video_id, channel_id, upload_date, created_on)
			 VALUES ($1, $2, $3, $4)`,
			video.VideoID, video.ChannelID, video.UploadDate, video.CreatedOn,
		)
	}

	for _, detail := range batch.Details {
		b.Queue(
			`INSERT INTO youtube_analytics.videos_details (video_id, title, description, category_id, live_broadcast_content, created_on)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			detail.VideoID, detail.Title, detail.Description, detail.CategoryID, detail.LiveBroadcastContent, detail.CreatedOn,
		)
	}

	for _, stats := range batch.Statistics {
		b.Queue(
			`INSERT INTO youtube_analytics.video_statistics (video_id, view_count, like_count, comment_count, created_on)
			 VALUES ($1, $2, $3, $4, $5)`,
			stats.VideoID, stats.ViewCount, stats.LikeCount, stats.CommentCount, stats.CreatedOn,
		)
	}

	for _, content := range batch.ContentDetails {
		b.Queue(
			`INSERT INTO youtube_analytics.content_details (video_id, dimension, definition, caption, licensed_content, duration, projection, created_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			content.VideoID, content.Dimension, content.Definition, content.Caption,
			content.LicensedContent, content.DurationMinutes, content.Projection, content.CreatedOn,
		)
	}

	for _, tag := range batch.Tags {
		b.Queue(
			`INSERT INTO youtube_analytics.tags (video_id, tag, created_on)
			 VALUES ($1, $2, $3)`,
			tag.VideoID, tag.Tag, tag.CreatedOn,
		)
	}

	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return db.WrapError(err, "insert video records")
	}

	if err := tx.Commit(ctx); err != nil {
		return db.WrapError(err, "commit video records insert")
	}

	return nil
}

func (r *videoRepository) GetVideosByVideoID(ctx context.Context, videoID string) ([]*models.Video, error) {
	query := `
		SELECT id, video_id, channel_id, upload_date, created_on
		FROM youtube_analytics.uploaded_videos
		WHERE video_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, db.WrapError(err, "get videos by video id")
	}
	defer rows.Close()

	var videos []*models.Video
	for rows.Next() {
		video := &models.Video{}
		if err := rows.Scan(&video.ID, &video.VideoID, &video.ChannelID, &video.UploadDate, &video.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}

	return videos, nil
}

func (r *videoRepository) GetDetailsByVideoID(ctx context.Context, videoID string) ([]*models.VideoDetail, error) {
	query := `
		SELECT id, video_id, title, description, category_id, live_broadcast_content, created_on
		FROM youtube_analytics.videos_details
		WHERE video_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, db.WrapError(err, "get details by video id")
	}
	defer rows.Close()

	var details []*models.VideoDetail
	for rows.Next() {
		detail := &models.VideoDetail{}
		if err := rows.Scan(&detail.ID, &detail.VideoID, &detail.Title, &detail.Description,
			&detail.CategoryID, &detail.LiveBroadcastContent, &detail.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan video detail: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video details: %w", err)
	}

	return details, nil
}

func (r *videoRepository) GetStatisticsByVideoID(ctx context.Context, videoID string) ([]*models.VideoStatistics, error) {
	query := `
		SELECT id, video_id, view_count, like_count, comment_count, created_on
		FROM youtube_analytics.video_statistics
		WHERE video_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, db.WrapError(err, "get statistics by video id")
	}
	defer rows.Close()

	var stats []*models.VideoStatistics
	for rows.Next() {
		s := &models.VideoStatistics{}
		if err := rows.Scan(&s.ID, &s.VideoID, &s.ViewCount, &s.LikeCount, &s.CommentCount, &s.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan video statistics: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate video statistics: %w", err)
	}

	return stats, nil
}

func (r *videoRepository) GetContentDetailsByVideoID(ctx context.Context, videoID string) ([]*models.ContentDetails, error) {
	query := `
		SELECT id, video_id, dimension, definition, caption, licensed_content, duration, projection, created_on
		FROM youtube_analytics.content_details
		WHERE video_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, db.WrapError(err, "get content details by video id")
	}
	defer rows.Close()

	var contents []*models.ContentDetails
	for rows.Next() {
		c := &models.ContentDetails{}
		if err := rows.Scan(&c.ID, &c.VideoID, &c.Dimension, &c.Definition, &c.Caption,
			&c.LicensedContent, &c.DurationMinutes, &c.Projection, &c.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan content details: %w", err)
		}
		contents = append(contents, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate content details: %w", err)
	}

	return contents, nil
}

func (r *videoRepository) GetTagsByVideoID(ctx context.Context, videoID string) ([]*models.Tag, error) {
	query := `
		SELECT id, video_id, tag, created_on
		FROM youtube_analytics.tags
		WHERE video_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, videoID)
	if err != nil {
		return nil, db.WrapError(err, "get tags by video id")
	}
	defer rows.Close()

	var tags []*models.Tag
	for rows.Next() {
		tag := &models.Tag{}
		if err := rows.Scan(&tag.ID, &tag.VideoID, &tag.Tag, &tag.CreatedOn); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	return tags, nil
}
