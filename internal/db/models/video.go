package models

import "time"

// Video represents one uploaded video found by the topic search.
// Video rows are append-only: every run inserts fresh rows and never
// updates existing ones.
type Video struct {
	ID         int64     `db:"id"`
	VideoID    string    `db:"video_id"`
	ChannelID  string    `db:"channel_id"`
	UploadDate time.Time `db:"upload_date"`
	CreatedOn  time.Time `db:"created_on"`
}

// NewVideo creates a new Video with the given information.
func NewVideo(videoID, channelID string, uploadDate time.Time) *Video {
	return &Video{
		VideoID:    videoID,
		ChannelID:  channelID,
		UploadDate: uploadDate,
		CreatedOn:  time.Now(),
	}
}
