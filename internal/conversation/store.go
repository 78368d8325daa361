package conversation

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"support-agent-orchestrator/internal/model"
)

// Store keeps per-conversation turn history. Implementations must be safe
// for concurrent use, but do not serialize turns of the same conversation:
// concurrent appends for one id may interleave.
type Store interface {
	// History returns the recorded turns for a conversation, oldest first.
	// Unknown ids yield an empty history.
	History(id string) []model.Turn

	// Append records a completed turn for a conversation, creating it on
	// first reference.
	Append(id string, turn model.Turn)

	// Len returns the number of live conversations.
	Len() int
}

// LRUStore bounds conversation memory with an expirable LRU: least recently
// used conversations are evicted at capacity, idle ones expire after the TTL.
type LRUStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, []model.Turn]
}

var _ Store = (*LRUStore)(nil)

// NewLRUStore creates a bounded conversation store.
// maxEntries <= 0 falls back to 1000 conversations; ttl <= 0 disables expiry.
func NewLRUStore(maxEntries int, ttl time.Duration) *LRUStore {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &LRUStore{
		cache: expirable.NewLRU[string, []model.Turn](maxEntries, nil, ttl),
	}
}

func (s *LRUStore) History(id string) []model.Turn {
	turns, ok := s.cache.Get(id)
	if !ok {
		return nil
	}
	// Copy so callers cannot mutate stored history.
	out := make([]model.Turn, len(turns))
	copy(out, turns)
	return out
}

func (s *LRUStore) Append(id string, turn model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns, _ := s.cache.Get(id)
	turns = append(turns, turn)
	s.cache.Add(id, turns)
}

func (s *LRUStore) Len() int {
	return s.cache.Len()
}
