package models

import "time"

// Channel represents a YouTube channel that passed the subscriber filter.
// Channels are the only records with update semantics: later runs revise
// title and subscriber count in place, keyed by channel_id.
type Channel struct {
	ID               int64     `db:"id"`
	ChannelID        string    `db:"channel_id"`
	Title            string    `db:"title"`
	SubscribersCount int64     `db:"subscribers_amount"`
	CreatedOn        time.Time `db:"created_on"`
}

// NewChannel creates a new Channel with the given information.
func NewChannel(channelID, title string, subscribersCount int64) *Channel {
	return &Channel{
		ChannelID:        channelID,
		Title:            title,
		SubscribersCount: subscribersCount,
		CreatedOn:        time.Now(),
	}
}
