package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yt-analytics/youtube-data-collector/internal/db"
	"github.com/yt-analytics/youtube-data-collector/internal/db/models"
)

// ChannelRepository defines operations for managing channels.
type ChannelRepository interface {
	// UpsertChannels reconciles the batch against existing rows inside a
	// single transaction: rows matched by channel_id are updated in place,
	// the rest are inserted. The transaction commits once at the end, so a
	// failure leaves the table unchanged.
	UpsertChannels(ctx context.Context, channels []*models.Channel) error

	// GetChannelByID retrieves a single channel by its YouTube channel id.
	GetChannelByID(ctx context.Context, channelID string) (*models.Channel, error)

	// ListChannels retrieves all channels with pagination.
	ListChannels(ctx context.Context, limit, offset int) ([]*models.Channel, error)
}

type channelRepository struct {
	pool *pgxpool.Pool
}

// NewChannelRepository creates a new ChannelRepository.
func NewChannelRepository(pool *pgxpool.Pool) ChannelRepository {
	return &channelRepository{pool: pool}
}

func (r *channelRepository) UpsertChannels(ctx context.Context, channels []*models.Channel) error {
	if len(channels) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return db.WrapError(err, "begin channel upsert")
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	for _, channel := range channels {
		var existingID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM youtube_analytics.channels WHERE channel_id = $1`,
			channel.ChannelID,
		).Scan(&existingID)

		switch {
		case err == nil:
			_, err = tx.Exec(ctx,
				`UPDATE youtube_analytics.channels
				 SET title = $1, subscribers_amount = $2
				 WHERE id = $3`,
				channel.Title, channel.SubscribersCount, existingID,
			)
			if err != nil {
				return db.WrapError(err, "update channel")
			}
			channel.ID = existingID
		case errors.Is(err, pgx.ErrNoRows):
			err = tx.QueryRow(ctx,
				`INSERT INTO youtube_analytics.channels (channel_id, title, subscribers_amount, created_on)
				 VALUES ($1, $2, $3, $4)
				 RETURNING id`,
				channel.ChannelID, channel.Title, channel.SubscribersCount, channel.CreatedOn,
			).Scan(&channel.ID)
			if err != nil {
				return db.WrapError(err, "insert channel")
			}
		default:
			return db.WrapError(err, "lookup channel")
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return db.WrapError(err, "commit channel upsert")
	}

	return nil
}

func (r *channelRepository) GetChannelByID(ctx context.Context, channelID string) (*models.Channel, error) {
	query := `
		SELECT id, channel_id, title, subscribers_amount, created_on
		FROM youtube_analytics.channels
		WHERE channel_id = $1
	`

	channel := &models.Channel{}
	err := r.pool.QueryRow(ctx, query, channelID).Scan(
		&channel.ID,
		&channel.ChannelID,
		&channel.Title,
		&channel.SubscribersCount,
		&channel.CreatedOn,
	)

	if err != nil {
		return nil, db.WrapError(err, "get channel by id")
	}

	return channel, nil
}

func (r *channelRepository) ListChannels(ctx context.Context, limit, offset int) ([]*models.Channel, error) {
	query := `
		SELECT id, channel_id, title, subscribers_amount, created_on
		FROM youtube_analytics.channels
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, db.WrapError(err, "list channels")
	}
	defer rows.Close()

	return scanChannels(rows)
}

// Helper function to scan multiple channels from query results
func scanChannels(rows pgx.Rows) ([]*models.Channel, error) {
	var channels []*models.Channel

	for rows.Next() {
		channel := &models.Channel{}
		err := rows.Scan(
			&channel.ID,
			&channel.ChannelID,
			&channel.Title,
			&channel.SubscribersCount,
			&channel.CreatedOn,
		)
		if err != nil {
			return nil, fmt.Errorf("scan channel: %w", err)
		}
		channels = append(channels, channel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate channels: %w", err)
	}

	return channels, nil
}
