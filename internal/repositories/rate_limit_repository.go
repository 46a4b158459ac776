package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v4"
)

// RateLimitRepository provides an atomic way to check and increment rate
// limit counters.
type RateLimitRepository interface {
	// IncrementAndCheck atomically increments the counter for key and
	// reports whether the request is still within limit.
	IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error)

	// CleanupExpired removes all counter keys whose window has passed.
	CleanupExpired(ctx context.Context) error
}

type rateLimitRepo struct {
	db DB
}

func NewRateLimitRepository(db DB) RateLimitRepository {
	return &rateLimitRepo{db: db}
}

func (r *rateLimitRepo) IncrementAndCheck(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	query := `
        INSERT INTO rate_limit_attempts (key, attempt_count, expires_at)
        VALUES ($1, 1, NOW() + $2::interval)
        ON CONFLICT (key) DO UPDATE
        SET attempt_count = CASE
            WHEN rate_limit_attempts.expires_at < NOW() THEN 1
            ELSE rate_limit_attempts.attempt_count + 1
        END,
        expires_at = CASE
            WHEN rate_limit_attempts.expires_at < NOW() THEN NOW() + $2::interval
            ELSE rate_limit_attempts.expires_at
        END
        RETURNING attempt_count;
    `

	var currentCount int
	err := r.db.QueryRow(ctx, query, key, window).Scan(&currentCount)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	return currentCount <= limit, nil
}

func (r *rateLimitRepo) CleanupExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rate_limit_attempts WHERE expires_at < NOW()`)
	return err
}
