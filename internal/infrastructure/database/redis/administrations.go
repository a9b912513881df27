package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sendasalud/senda/internal/infrastructure/monitoring/logging"
	"github.com/sendasalud/senda/pkg/errors"
)

// defaultKeyPrefix namespaces administration records in a shared Redis.
const defaultKeyPrefix = "senda"

// AdministrationStore persists scale-administration timestamps in Redis,
// implementing the scales.AdministrationStore interface.  Records carry a
// TTL equal to the lookback window: a record older than the window is
// irrelevant to the gate and may simply vanish.
type AdministrationStore struct {
	client    *Client
	keyPrefix string
	lookback  time.Duration
	logger    logging.Logger
}

// NewAdministrationStore builds a store on an established client.  keyPrefix
// may be empty; lookback bounds record retention.
func NewAdministrationStore(client *Client, keyPrefix string, lookback time.Duration, log logging.Logger) *AdministrationStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	if lookback <= 0 {
		lookback = 30 * 24 * time.Hour
	}
	return &AdministrationStore{
		client:    client,
		keyPrefix: keyPrefix,
		lookback:  lookback,
		logger:    log,
	}
}

func (s *AdministrationStore) key(userID, scaleType string) string {
	return fmt.Sprintf("%s:scale_admin:%s:%s", s.keyPrefix, userID, scaleType)
}

// LastAdministered returns the most recent administration timestamp, or
// found=false when the record is absent or expired.
func (s *AdministrationStore) LastAdministered(ctx context.Context, userID, scaleType string) (time.Time, bool, error) {
	val, err := s.client.Get(ctx, s.key(userID, scaleType)).Result()
	if err == goredis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, errors.Wrap(err, errors.ErrCodeStoreError, "failed to read administration record")
	}

	last, err := time.Parse(time.RFC3339, val)
	if err != nil {
		// A corrupt record is treated as absent so the gate still works;
		// log it for cleanup.
		s.logger.Warn("corrupt administration record, treating as absent",
			logging.String("user_id", userID),
			logging.String("scale", scaleType),
			logging.Err(err))
		return time.Time{}, false, nil
	}
	return last, true, nil
}

// RecordAdministration stores the timestamp with a lookback-window TTL.
func (s *AdministrationStore) RecordAdministration(ctx context.Context, userID, scaleType string, at time.Time) error {
	err := s.client.Set(ctx, s.key(userID, scaleType), at.UTC().Format(time.RFC3339), s.lookback).Err()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStoreError, "failed to record administration")
	}
	return nil
}
