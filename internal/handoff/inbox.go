package handoff

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/study-planner/internal/models"
)

// Inbox is the one-shot handoff buffer carrying a previously saved timetable
// into a fresh session. Take consumes the pending payload at most once:
// after a successful Take the slot is empty and a reload cannot re-apply
// stale state.
type Inbox interface {
	Take(ctx context.Context) (models.Timetable, bool, error)
}

type payload struct {
	Timetable models.Timetable `json:"timetable"`
}

// RedisInbox stores the pending payload in a single Redis key and consumes
// it atomically with GETDEL.
type RedisInbox struct {
	client *redis.Client
	key    string
}

// NewRedisInbox wraps a Redis client and key as an Inbox.
func NewRedisInbox(client *redis.Client, key string) *RedisInbox {
	return &RedisInbox{client: client, key: key}
}

// Take consumes the pending timetable, reporting false when none is waiting.
func (i *RedisInbox) Take(ctx context.Context) (models.Timetable, bool, error) {
	raw, err := i.client.GetDel(ctx, i.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false, err
	}
	if p.Timetable == nil {
		return nil, false, nil
	}
	return p.Timetable, true, nil
}

// Put stages a timetable for the next session. Used by whatever surface
// loads a saved timetable (the dashboard, in the original flow).
func (i *RedisInbox) Put(ctx context.Context, tt models.Timetable) error {
	raw, err := json.Marshal(payload{Timetable: tt})
	if err != nil {
		return err
	}
	return i.client.Set(ctx, i.key, raw, 0).Err()
}

// MemoryInbox is an in-process Inbox used in tests and when Redis is not
// configured.
type MemoryInbox struct {
	mu      sync.Mutex
	pending models.Timetable
	present bool
}

// NewMemoryInbox returns an empty in-memory inbox.
func NewMemoryInbox() *MemoryInbox {
	return &MemoryInbox{}
}

// Put stages a timetable, replacing any pending one.
func (i *MemoryInbox) Put(tt models.Timetable) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.pending = tt
	i.present = true
}

// Take consumes the pending timetable at most once.
func (i *MemoryInbox) Take(_ context.Context) (models.Timetable, bool, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.present {
		return nil, false, nil
	}
	tt := i.pending
	i.pending = nil
	i.present = false
	return tt, true, nil
}
