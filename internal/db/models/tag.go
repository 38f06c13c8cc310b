package models

import "time"

// Tag is a single tag string attached to a video. A video with no tags
// field in its snippet produces zero Tag rows.
type Tag struct {
	ID        int64     `db:"id"`
	VideoID   string    `db:"video_id"`
	Tag       string    `db:"tag"`
	CreatedOn time.Time `db:"created_on"`
}

// NewTag creates a new Tag for the given video.
func NewTag(videoID, tag string) *Tag {
	return &Tag{
		VideoID:   videoID,
		Tag:       tag,
		CreatedOn: time.Now(),
	}
}
