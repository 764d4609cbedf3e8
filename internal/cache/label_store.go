package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"covid-screening-bot/internal/model"
)

const labelKeyPrefix = "labels:"

// labelTTL bounds how long accumulated labels survive an abandoned
// conversation: 20 question turns at roughly 90 seconds each. Refreshed on
// every mutation.
const labelTTL = 30 * time.Minute

// LabelStore is the conversation-scoped label context. One record per
// session, mutated only through AddLabels, discarded by Clear or by the
// store's own TTL.
type LabelStore interface {
	// Labels returns the session's accumulated set, empty when nothing has
	// been recorded yet.
	Labels(ctx context.Context, session string) (model.LabelSet, error)
	// AddLabels idempotently inserts labels and refreshes the record's TTL
	// to its full lifespan.
	AddLabels(ctx context.Context, session string, labels ...model.Label) error
	// Clear discards the session's record immediately.
	Clear(ctx context.Context, session string) error
}

type labelStore struct {
	client *redis.Client
}

// NewLabelStore returns a Redis-backed LabelStore.
func NewLabelStore(client *redis.Client) LabelStore {
	return &labelStore{client: client}
}

func (s *labelStore) Labels(ctx context.Context, session string) (model.LabelSet, error) {
	data, err := s.client.Get(ctx, labelKeyPrefix+session).Result()
	if err == redis.Nil {
		return model.NewLabelSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get labels: %w", err)
	}
	var set model.LabelSet
	if err := json.Unmarshal([]byte(data), &set); err != nil {
		return nil, fmt.Errorf("decode labels: %w", err)
	}
	return set, nil
}

func (s *labelStore) AddLabels(ctx context.Context, session string, labels ...model.Label) error {
	set, err := s.Labels(ctx, session)
	if err != nil {
		return err
	}
	set.Add(labels...)
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode labels: %w", err)
	}
	if err := s.client.Set(ctx, labelKeyPrefix+session, data, labelTTL).Err(); err != nil {
		return fmt.Errorf("set labels: %w", err)
	}
	return nil
}

func (s *labelStore) Clear(ctx context.Context, session string) error {
	if err := s.client.Del(ctx, labelKeyPrefix+session).Err(); err != nil {
		return fmt.Errorf("clear labels: %w", err)
	}
	return nil
}
