package models

import "time"

// VideoStatistics is a view/like/comment snapshot taken at fetch time.
// No history reconciliation happens: each run appends a new snapshot row.
type VideoStatistics struct {
	ID           int64     `db:"id"`
	VideoID      string    `db:"video_id"`
	ViewCount    int64     `db:"view_count"`
	LikeCount    int64     `db:"like_count"`
	CommentCount int64     `db:"comment_count"`
	CreatedOn    time.Time `db:"created_on"`
}

// NewVideoStatistics creates a new VideoStatistics snapshot.
func NewVideoStatistics(videoID string, viewCount, likeCount, commentCount int64) *VideoStatistics {
	return &VideoStatistics{
		VideoID:      videoID,
		ViewCount:    viewCount,
		LikeCount:    likeCount,
		CommentCount: commentCount,
		CreatedOn:    time.Now(),
	}
}
