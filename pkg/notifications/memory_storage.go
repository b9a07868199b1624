package notifications

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage is an in-memory implementation of RecordStore and
// PreferenceStore. Suitable for development and testing; production deploys
// use the Postgres or Mongo adapters.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[uuid.UUID]Notification
	prefs   map[int64]Preference
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		records: make(map[uuid.UUID]Notification),
		prefs:   make(map[int64]Preference),
	}
}

func (s *MemoryStorage) Create(ctx context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.RecipientID == 0 {
		return ErrMissingRecipient
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = n.CreatedAt
	}

	s.records[n.ID] = n
	return nil
}

func (s *MemoryStorage) GetByID(ctx context.Context, id uuid.UUID) (*Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy to prevent external mutation of stored data.
	return &n, nil
}

func (s *MemoryStorage) FindMany(ctx context.Context, f Filter) ([]Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Notification, 0)
	for _, n := range s.records {
		if matchesFilter(n, f) {
			matched = append(matched, n)
		}
	}

	// Newest first; ties broken by id for a stable order.
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID.String() > matched[j].ID.String()
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	start := f.Offset
	if start > len(matched) {
		return []Notification{}, nil
	}
	end := len(matched)
	if f.Limit > 0 && start+f.Limit < end {
		end = start + f.Limit
	}
	return matched[start:end], nil
}

func (s *MemoryStorage) Count(ctx context.Context, f Filter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.records {
		if matchesFilter(n, f) {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStorage) UpdateByID(ctx context.Context, id uuid.UUID, patch RecordPatch) (*Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyRecordPatch(&n, patch)
	s.records[id] = n
	return &n, nil
}

func (s *MemoryStorage) UpdateMany(ctx context.Context, f Filter, patch RecordPatch) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for id, n := range s.records {
		if !matchesFilter(n, f) {
			continue
		}
		applyRecordPatch(&n, patch)
		s.records[id] = n
		count++
	}
	return count, nil
}

func (s *MemoryStorage) DeleteByID(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStorage) GetByRecipient(ctx context.Context, recipientID int64) (*Preference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prefs[recipientID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStorage) Upsert(ctx context.Context, recipientID int64, patch PreferencePatch) (*Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.prefs[recipientID]
	if !ok {
		p = DefaultPreference(recipientID)
		p.CreatedAt = time.Now()
	}
	patch.Apply(&p)
	p.UpdatedAt = time.Now()
	s.prefs[recipientID] = p
	return &p, nil
}

func matchesFilter(n Notification, f Filter) bool {
	if f.RecipientID != nil && n.RecipientID != *f.RecipientID {
		return false
	}
	if f.Kind != nil && n.Kind != *f.Kind {
		return false
	}
	if f.Priority != nil && n.Priority != *f.Priority {
		return false
	}
	if f.Status != nil && n.Status != *f.Status {
		return false
	}
	if f.StatusNot != nil && n.Status == *f.StatusNot {
		return false
	}
	if f.Read != nil && n.IsRead() != *f.Read {
		return false
	}
	if f.Leftover && !HasPlaceholder(n.Title) && !HasPlaceholder(n.Message) {
		return false
	}
	return true
}

func applyRecordPatch(n *Notification, patch RecordPatch) {
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Message != nil {
		n.Message = *patch.Message
	}
	if patch.Status != nil {
		n.Status = *patch.Status
	}
	if patch.ReadAt != nil {
		n.ReadAt = patch.ReadAt
	}
	if patch.SentAt != nil {
		n.SentAt = patch.SentAt
	}
	n.UpdatedAt = time.Now()
}

// Interface guards.
var (
	_ RecordStore     = (*MemoryStorage)(nil)
	_ PreferenceStore = (*MemoryStorage)(nil)
)
