package models

import "time"

// ContentDetails carries the technical attributes of a video.
// DurationMinutes is derived from the API's ISO-8601 period string and
// keeps fractional minutes (45s -> 0.75).
type ContentDetails struct {
	ID              int64     `db:"id"`
	VideoID         string    `db:"video_id"`
	Dimension       string    `db:"dimension"`
	Definition      string    `db:"definition"`
	Caption         bool      `db:"caption"`
	LicensedContent bool      `db:"licensed_content"`
	DurationMinutes float64   `db:"duration"`
	Projection      string    `db:"projection"`
	CreatedOn       time.Time `db:"created_on"`
}

// NewContentDetails creates new ContentDetails with the given information.
func NewContentDetails(videoID, dimension, definition string, caption, licensedContent bool, durationMinutes float64, projection string) *ContentDetails {
	return &ContentDetails{
		VideoID:         videoID,
		Dimension:       dimension,
		Definition:      definition,
		Caption:         caption,
		LicensedContent: licensedContent,
		DurationMinutes: durationMinutes,
		Projection:      projection,
		CreatedOn:       time.Now(),
	}
}
