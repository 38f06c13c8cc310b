// Package youtube wraps the YouTube Data API v3 client with the three
// lookups the collector performs: topic search, channel lookup, and
// batched video-detail lookup.
package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// PublishedAfterLayout is the timestamp layout the search endpoint
// expects for the publishedAfter parameter. Fixed, not configurable.
const PublishedAfterLayout = "2006-01-02T15:04:05Z"

// Client wraps the YouTube Data API v3 client.
type Client struct {
	service *youtube.Service
}

// NewClient creates a new YouTube API client authenticated with the
// given developer key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// SearchVideos runs the topic search for videos published after the
// given time and returns the raw search result items with id and
// snippet parts. Only the first result page is requested; later pages
// are not fetched.
func (c *Client) SearchVideos(ctx context.Context, query string, publishedAfter time.Time) ([]*youtube.SearchResult, error) {
	call := c.service.Search.List([]string{"id", "snippet"}).
		Q(query).
		Type("video").
		PublishedAfter(publishedAfter.UTC().Format(PublishedAfterLayout)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	return response.Items, nil
}

// ChannelsByID fetches channel snippet and statistics for the given
// channel ids in a single call. The id list is passed through as-is;
// the API collapses duplicate ids in the comma-joined parameter.
func (c *Client) ChannelsByID(ctx context.Context, channelIDs []string) ([]*youtube.Channel, error) {
	if len(channelIDs) == 0 {
		return nil, fmt.Errorf("no channel IDs provided")
	}

	call := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelIDs...).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channels: %w", err)
	}

	return response.Items, nil
}

// VideoDetails fetches snippet, content details, and statistics for the
// given video ids in a single batched call. Ids missing from the
// response yield no items and no error.
func (c *Client) VideoDetails(ctx context.Context, videoIDs []string) ([]*youtube.Video, error) {
	if len(videoIDs) == 0 {
		return nil, fmt.Errorf("no video IDs provided")
	}

	call := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoIDs...).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch video details: %w", err)
	}

	return response.Items, nil
}
