// Package notifications keeps the local copy of the user's notifications:
// a polled snapshot with optimistic read-state changes that are confirmed
// against the notification service in the background.
package notifications

import (
	"context"
	"slices"
	"sync"

	"github.com/trademinutes/tmclient/internal/client/client"
	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/logging"
)

// Store holds the notification list. Read-state changes are applied
// locally first; each one records a pending confirmation per id. A failed
// confirmation reverts the ids it changed, unless another confirmation for
// the same id is still outstanding.
//
// Confirmed ids are stamped with a generation. A snapshot whose fetch
// started before that generation cannot mark them unread again.
type Store struct {
	client client.NotificationClient
	log    logging.Logger

	mu        sync.Mutex
	items     []models.Notification
	pending   map[string]int
	confirmed map[string]uint64
	gen       uint64
	epoch     uint64
	loaded    bool
	lastErr   error

	wg sync.WaitGroup
}

func NewStore(c client.NotificationClient, log logging.Logger) *Store {
	return &Store{
		client:    c,
		log:       log,
		pending:   map[string]int{},
		confirmed: map[string]uint64{},
	}
}

// Refresh fetches the list and merges it in. On error the previous
// snapshot is kept. A result that arrives after Reset is dropped.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	gen, epoch := s.gen, s.epoch
	s.mu.Unlock()

	items, err := s.client.ListNotifications(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		return nil
	}
	s.lastErr = err
	if err != nil {
		return err
	}
	s.install(items, gen)
	return nil
}

// Replace installs a snapshot that reflects every confirmation so far. Ids
// with a pending confirmation stay read.
func (s *Store) Replace(snapshot []models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.install(snapshot, s.gen)
}

// install must be called with s.mu held. gen is the generation at which
// the snapshot was requested.
func (s *Store) install(snapshot []models.Notification, gen uint64) {
	items := slices.Clone(snapshot)

	for i := range items {
		id := items[i].ID
		if s.pending[id] > 0 || s.confirmed[id] > gen {
			items[i].Read = true
		}
	}
	for id, at := range s.confirmed {
		if at <= gen {
			delete(s.confirmed, id)
		}
	}
	s.items = items
	s.loaded = true
}

// Reset forgets the list, as after a logout. Fetches still in flight are
// discarded when they land.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.pending = map[string]int{}
	s.confirmed = map[string]uint64{}
	s.epoch++
	s.loaded = false
	s.lastErr = nil
}

func (s *Store) List() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Loaded reports whether at least one snapshot has been installed.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Err is the error of the most recent fetch, nil after a success.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, it := range s.items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Pending reports whether id has an unconfirmed change.
func (s *Store) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending[id] > 0
}

// MarkAsRead flips one notification to read and confirms in the
// background. It returns false when id is unknown or already read.
func (s *Store) MarkAsRead(ctx context.Context, id string) bool {
	changed := s.markLocal(func(n models.Notification) bool { return n.ID == id })
	if len(changed) == 0 {
		return false
	}
	s.confirm(ctx, models.NotificationAction{Action: models.ActionMarkAsRead, ID: id}, changed)
	return true
}

// MarkAllAsRead flips every unread notification and confirms with a single
// request. It returns how many entries changed.
func (s *Store) MarkAllAsRead(ctx context.Context) int {
	changed := s.markLocal(func(models.Notification) bool { return true })
	if len(changed) == 0 {
		return 0
	}
	s.confirm(ctx, models.NotificationAction{Action: models.ActionMarkAllAsRead}, changed)
	return len(changed)
}

// Wait blocks until every outstanding confirmation has finished.
func (s *Store) Wait() {
	s.wg.Wait()
}

func (s *Store) markLocal(match func(models.Notification) bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []string
	for i := range s.items {
		if s.items[i].Read || !match(s.items[i]) {
			continue
		}
		s.items[i].Read = true
		s.pending[s.items[i].ID]++
		changed = append(changed, s.items[i].ID)
	}
	return changed
}

func (s *Store) confirm(ctx context.Context, action models.NotificationAction, ids []string) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.client.UpdateNotifications(ctx, action)
		if err != nil {
			s.log.Warn(ctx, "notification update failed, reverting", "action", action.Action, "error", err)
		}
		s.settle(ids, err != nil)
	}()
}

func (s *Store) settle(ids []string, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !failed {
		s.gen++
	}
	for _, id := range ids {
		if !failed {
			s.confirmed[id] = s.gen
		}
		if s.pending[id] <= 0 {
			// Dropped by Reset.
			continue
		}
		s.pending[id]--
		if s.pending[id] > 0 {
			continue
		}
		delete(s.pending, id)
		if !failed {
			continue
		}
		for i := range s.items {
			if s.items[i].ID == id {
				s.items[i].Read = false
			}
		}
	}
}
