package models

import "time"

// VideoDetail carries the descriptive metadata of a video.
// LiveBroadcastContent is declared in the schema but never populated by
// the transformation, so it stays NULL.
type VideoDetail struct {
	ID                   int64     `db:"id"`
	VideoID              string    `db:"video_id"`
	Title                string    `db:"title"`
	Description          string    `db:"description"`
	CategoryID           string    `db:"category_id"`
	LiveBroadcastContent *bool     `db:"live_broadcast_content"`
	CreatedOn            time.Time `db:"created_on"`
}

// NewVideoDetail creates a new VideoDetail with the given information.
func NewVideoDetail(videoID, title, description, categoryID string) *VideoDetail {
	return &VideoDetail{
		VideoID:     videoID,
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		CreatedOn:   time.Now(),
	}
}
