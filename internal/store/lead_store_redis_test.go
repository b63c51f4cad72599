package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/chiro-hub/internal/config"
	"github.com/MKhiriev/chiro-hub/internal/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadList struct {
	key     string
	entries []string
	readErr error
	pushErr error
	closed  bool
}

func (f *fakeLeadList) LRange(_ context.Context, key string, _, _ int64) *redis.StringSliceCmd {
	f.key = key
	return redis.NewStringSliceResult(f.entries, f.readErr)
}

func (f *fakeLeadList) RPush(_ context.Context, key string, values ...interface{}) *redis.IntCmd {
	f.key = key
	if f.pushErr != nil {
		return redis.NewIntResult(0, f.pushErr)
	}
	for _, v := range values {
		f.entries = append(f.entries, v.(string))
	}
	return redis.NewIntResult(int64(len(f.entries)), nil)
}

func (f *fakeLeadList) Close() error {
	f.closed = true
	return nil
}

func newTestLeadStore(list *fakeLeadList) *redisLeadStore {
	return &redisLeadStore{client: list, key: "leads", logger: logger.Nop()}
}

func TestNewLeadStore_Unconfigured(t *testing.T) {
	s, err := NewLeadStore(config.Leads{}, logger.Nop())
	require.NoError(t, err)
	assert.False(t, s.Configured())

	leads, err := s.ListLeads(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)

	assert.ErrorIs(t, s.AppendLead(context.Background(), json.RawMessage(`{}`)), ErrLeadStoreNotConfigured)
	assert.NoError(t, s.Close())
}

func TestNewLeadStore_BadURL(t *testing.T) {
	_, err := NewLeadStore(config.Leads{RedisURL: "http://not-redis"}, logger.Nop())
	require.Error(t, err)
}

func TestNewLeadStore_Configured(t *testing.T) {
	s, err := NewLeadStore(config.Leads{RedisURL: "redis://localhost:6379/0"}, logger.Nop())
	require.NoError(t, err)
	assert.True(t, s.Configured())
	assert.Equal(t, "leads", s.(*redisLeadStore).key)
	assert.NoError(t, s.Close())
}

func TestRedisLeadStore_AppendThenList(t *testing.T) {
	list := &fakeLeadList{}
	s := newTestLeadStore(list)
	ctx := context.Background()

	require.NoError(t, s.AppendLead(ctx, json.RawMessage(`{"name":"Ann","chiropractor":"dr-a","createdAt":"2026-01-02","phone":"555"}`)))
	require.NoError(t, s.AppendLead(ctx, json.RawMessage(`{"name":"Bob","chiropractor":"dr-b"}`)))

	leads, err := s.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "leads", list.key)
	assert.Equal(t, "Ann", leads[0].Name)
	assert.Equal(t, "dr-a", leads[0].Chiropractor)
	assert.JSONEq(t, `"555"`, string(leads[0].Extra["phone"]))
	assert.Equal(t, "Bob", leads[1].Name)
}

func TestRedisLeadStore_KeepsNumbersExact(t *testing.T) {
	s := newTestLeadStore(&fakeLeadList{})
	ctx := context.Background()

	require.NoError(t, s.AppendLead(ctx, json.RawMessage(`{"name":"Ann","fb_lead_id":12345678901234567890,"score":0.1}`)))

	leads, err := s.ListLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)

	out, err := json.Marshal(leads[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ann","fb_lead_id":12345678901234567890,"score":0.1}`, string(out))
	assert.Contains(t, string(out), `"fb_lead_id":12345678901234567890`)
}

func TestRedisLeadStore_SkipsMalformedEntries(t *testing.T) {
	s := newTestLeadStore(&fakeLeadList{entries: []string{`not json`, `[1,2]`, `{"name":"Ann"}`}})

	leads, err := s.ListLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "Ann", leads[0].Name)
}

func TestRedisLeadStore_Errors(t *testing.T) {
	s := newTestLeadStore(&fakeLeadList{readErr: errors.New("READONLY"), pushErr: errors.New("OOM")})

	_, err := s.ListLeads(context.Background())
	assert.Error(t, err)

	err = s.AppendLead(context.Background(), json.RawMessage(`{}`))
	assert.Error(t, err)
}
