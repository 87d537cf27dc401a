package memory

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"vemio-dashboard/internal/views/core/domain"
	"vemio-dashboard/internal/views/core/ports"
)

const DefaultIdleTTL = 30 * time.Minute

// ViewStore keeps open views in memory. A view that has not been touched for
// longer than the idle TTL is treated as closed.
type ViewStore struct {
	mu    sync.RWMutex
	views map[uuid.UUID]domain.View
	ttl   time.Duration
	now   func() time.Time
}

func NewViewStore(ttl time.Duration) *ViewStore {
	if ttl <= 0 {
		ttl = DefaultIdleTTL
	}
	return &ViewStore{
		views: make(map[uuid.UUID]domain.View),
		ttl:   ttl,
		now:   time.Now,
	}
}

var _ ports.ViewStorePort = (*ViewStore)(nil)

func (s *ViewStore) Save(ctx context.Context, v domain.View) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[v.ID] = v
	return nil
}

func (s *ViewStore) Get(ctx context.Context, id uuid.UUID) (domain.View, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.views[id]
	if !ok || s.expired(v) {
		return domain.View{}, false
	}
	return v, true
}

func (s *ViewStore) Update(ctx context.Context, id uuid.UUID, fn func(v *domain.View)) (domain.View, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.views[id]
	if !ok {
		return domain.View{}, false
	}
	if s.expired(v) {
		delete(s.views, id)
		return domain.View{}, false
	}
	fn(&v)
	s.views[id] = v
	return v, true
}

func (s *ViewStore) Delete(ctx context.Context, id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.views[id]; !ok {
		return false
	}
	delete(s.views, id)
	return true
}

// EvictExpired drops idle views and returns how many were removed.
func (s *ViewStore) EvictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, v := range s.views {
		if s.expired(v) {
			delete(s.views, id)
			n++
		}
	}
	return n
}

// RunJanitor evicts idle views every interval until ctx is done.
func (s *ViewStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.EvictExpired(); n > 0 {
				log.Printf("[views.janitor] evicted %d idle views", n)
			}
		}
	}
}

func (s *ViewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.views)
}

func (s *ViewStore) expired(v domain.View) bool {
	return s.now().Sub(v.LastSeenAt) > s.ttl
}
