package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/MKhiriev/chiro-hub/models"
	"github.com/redis/go-redis/v9"
)

// leadListClient is the subset of *redis.Client used by the lead store.
type leadListClient interface {
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Close() error
}

// redisLeadStore keeps leads as raw JSON entries of a single Redis list.
// The list is append-only from this service; trimming belongs to whoever
// operates the Redis instance.
type redisLeadStore struct {
	client leadListClient
	key    string
	logger *logger.Logger
}

// NewLeadStore returns a [LeadStore] for cfg. When cfg.RedisURL is empty the
// store is unconfigured: reads return no leads and writes fail with
// [ErrLeadStoreNotConfigured].
func NewLeadStore(cfg config.Leads, log *logger.Logger) (LeadStore, error) {
	s := &redisLeadStore{
		key:    cfg.Key,
		logger: log,
	}
	if s.key == "" {
		s.key = "leads"
	}

	if cfg.RedisURL == "" {
		log.Info().Str("func", "NewLeadStore").Msg("lead store is not configured")
		return s, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing lead store url: %w", err)
	}
	s.client = redis.NewClient(opts)

	log.Info().Str("func", "NewLeadStore").Str("key", s.key).Msg("lead store configured")
	return s, nil
}

func (s *redisLeadStore) Configured() bool {
	return s.client != nil
}

// AppendLead pushes lead to the tail of the list.
func (s *redisLeadStore) AppendLead(ctx context.Context, lead json.RawMessage) error {
	if s.client == nil {
		return ErrLeadStoreNotConfigured
	}

	if err := s.client.RPush(ctx, s.key, string(lead)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisLeadStore.AppendLead").Msg("error appending lead")
		return fmt.Errorf("error appending lead: %w", err)
	}

	return nil
}

// ListLeads returns every lead in insertion order. Entries that are not JSON
// objects are skipped.
func (s *redisLeadStore) ListLeads(ctx context.Context) ([]models.Lead, error) {
	if s.client == nil {
		return []models.Lead{}, nil
	}

	log := logger.FromContext(ctx)

	entries, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisLeadStore.ListLeads").Msg("error reading leads")
		return nil, fmt.Errorf("error reading leads: %w", err)
	}

	leads := make([]models.Lead, 0, len(entries))
	for i, entry := range entries {
		var lead models.Lead
		if err = json.Unmarshal([]byte(entry), &lead); err != nil {
			log.Warn().Err(err).Int("index", i).Str("func", "*redisLeadStore.ListLeads").Msg("skipping malformed lead")
			continue
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

func (s *redisLeadStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
