package collector

import "google.golang.org/api/youtube/v3"

// FilterByMinSubscribers keeps the channels whose subscriber count is
// strictly greater than minSubscribers, then keeps the videos whose
// snippet references a kept channel. Both outputs preserve the relative
// order of their inputs, so the result is deterministic for identical
// inputs. Channels without a statistics part count as zero subscribers.
func FilterByMinSubscribers(
	results []*youtube.SearchResult,
	channels []*youtube.Channel,
	minSubscribers uint64,
) ([]*youtube.SearchResult, []*youtube.Channel) {
	keptChannels := make([]*youtube.Channel, 0, len(channels))
	keptIDs := make(map[string]struct{}, len(channels))

	for _, channel := range channels {
		if channel.Statistics == nil {
			continue
		}
		if channel.Statistics.SubscriberCount > minSubscribers {
			keptChannels = append(keptChannels, channel)
			keptIDs[channel.Id] = struct{}{}
		}
	}

	keptVideos := make([]*youtube.SearchResult, 0, len(results))
	for _, result := range results {
		if result.Snippet == nil {
			continue
		}
		if _, ok := keptIDs[result.Snippet.ChannelId]; ok {
			keptVideos = append(keptVideos, result)
		}
	}

	return keptVideos, keptChannels
}
