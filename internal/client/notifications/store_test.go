package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trademinutes/tmclient/internal/client/models"
	"github.com/trademinutes/tmclient/internal/logging"
)

type fakeNotifications struct {
	mu      sync.Mutex
	items   []models.Notification
	listErr error
	putErr  error
	block   chan struct{}
	actions []models.NotificationAction

	// listing is signalled when a list call starts; the call then waits
	// for listGate.
	listing  chan struct{}
	listGate chan struct{}
}

func (f *fakeNotifications) ListNotifications(context.Context) ([]models.Notification, error) {
	if f.listGate != nil {
		f.listing <- struct{}{}
		<-f.listGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items, f.listErr
}

func (f *fakeNotifications) UpdateNotifications(_ context.Context, a models.NotificationAction) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, a)
	return f.putErr
}

func (f *fakeNotifications) Actions() []models.NotificationAction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.NotificationAction{}, f.actions...)
}

func sample() []models.Notification {
	ts := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	return []models.Notification{
		{ID: "1", Type: models.NotificationBooking, Title: "New booking", Timestamp: ts},
		{ID: "2", Type: models.NotificationMessage, Title: "Message from Bob", Timestamp: ts, Read: true},
		{ID: "3", Type: models.NotificationMessage, Title: "Message from Alice", Timestamp: ts},
	}
}

func TestStore_MarkAllAsReadImmediate(t *testing.T) {
	for _, putErr := range []error{nil, errors.New("503")} {
		name := "confirmed"
		if putErr != nil {
			name = "rejected"
		}
		t.Run(name, func(t *testing.T) {
			fc := &fakeNotifications{block: make(chan struct{}), putErr: putErr}
			s := NewStore(fc, logging.Nop())
			s.Replace(sample())
			require.Equal(t, 2, s.UnreadCount())

			assert.Equal(t, 2, s.MarkAllAsRead(context.Background()))
			assert.Equal(t, 0, s.UnreadCount())

			close(fc.block)
			s.Wait()
			assert.Equal(t, []models.NotificationAction{{Action: "markAllAsRead"}}, fc.Actions())
		})
	}
}

func TestStore_RevertOnConfirmedFailure(t *testing.T) {
	fc := &fakeNotifications{putErr: errors.New("500")}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())

	s.MarkAllAsRead(context.Background())
	s.Wait()

	assert.Equal(t, 2, s.UnreadCount())
	assert.False(t, s.Pending("1"))
	assert.True(t, s.List()[1].Read, "entries read on the server are not reverted")
}

func TestStore_MarkAsRead(t *testing.T) {
	fc := &fakeNotifications{}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())

	assert.True(t, s.MarkAsRead(context.Background(), "1"))
	assert.Equal(t, 1, s.UnreadCount())
	s.Wait()

	assert.Equal(t, []models.NotificationAction{{Action: "markAsRead", ID: "1"}}, fc.Actions())
	assert.False(t, s.Pending("1"))
	assert.Equal(t, 1, s.UnreadCount())
}

func TestStore_MarkAsReadNoop(t *testing.T) {
	fc := &fakeNotifications{}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())

	assert.False(t, s.MarkAsRead(context.Background(), "missing"))
	assert.False(t, s.MarkAsRead(context.Background(), "2"))
	s.Wait()
	assert.Empty(t, fc.Actions())
}

func TestStore_UnreadCountAfterSequence(t *testing.T) {
	fc := &fakeNotifications{}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())
	ctx := context.Background()

	steps := []func(){
		func() { s.MarkAsRead(ctx, "3") },
		func() { s.MarkAsRead(ctx, "3") },
		func() { s.MarkAllAsRead(ctx) },
		func() { s.MarkAsRead(ctx, "1") },
	}
	for _, step := range steps {
		step()
		unread := 0
		for _, n := range s.List() {
			if !n.Read {
				unread++
			}
		}
		assert.Equal(t, unread, s.UnreadCount())
	}
	s.Wait()
	assert.Equal(t, 0, s.UnreadCount())
}

func TestStore_SnapshotKeepsPendingRead(t *testing.T) {
	fc := &fakeNotifications{block: make(chan struct{})}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())

	s.MarkAsRead(context.Background(), "1")
	s.Replace(sample())

	assert.True(t, s.List()[0].Read)
	assert.False(t, s.List()[2].Read)

	close(fc.block)
	s.Wait()
	s.Replace(sample())
	assert.False(t, s.List()[0].Read, "the next snapshot wins once nothing is pending")
}

func TestStore_Refresh(t *testing.T) {
	fc := &fakeNotifications{items: sample()}
	s := NewStore(fc, logging.Nop())
	assert.False(t, s.Loaded())

	require.NoError(t, s.Refresh(context.Background()))
	assert.True(t, s.Loaded())
	assert.Len(t, s.List(), 3)

	fc.mu.Lock()
	fc.listErr = errors.New("Failed to fetch notifications")
	fc.mu.Unlock()

	require.Error(t, s.Refresh(context.Background()))
	assert.Len(t, s.List(), 3, "previous snapshot kept")
	assert.EqualError(t, s.Err(), "Failed to fetch notifications")
}

func TestStore_ListIsACopy(t *testing.T) {
	s := NewStore(&fakeNotifications{}, logging.Nop())
	s.Replace(sample())

	l := s.List()
	l[0].Read = true
	assert.Equal(t, 2, s.UnreadCount())
}

func TestStore_StaleRefreshKeepsConfirmedRead(t *testing.T) {
	fc := &fakeNotifications{
		items:    sample(),
		listing:  make(chan struct{}),
		listGate: make(chan struct{}),
	}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- s.Refresh(ctx) }()
	<-fc.listing

	require.True(t, s.MarkAsRead(ctx, "1"))
	s.Wait()
	require.False(t, s.Pending("1"))

	close(fc.listGate)
	require.NoError(t, <-done)
	assert.True(t, s.List()[0].Read, "a snapshot requested before the confirmation cannot undo it")
	assert.Equal(t, 1, s.UnreadCount())

	fc.listGate = nil
	require.NoError(t, s.Refresh(ctx))
	assert.False(t, s.List()[0].Read, "a later snapshot is authoritative")
}

func TestStore_ResetDropsInFlightRefresh(t *testing.T) {
	fc := &fakeNotifications{
		items:    sample(),
		listing:  make(chan struct{}),
		listGate: make(chan struct{}),
	}
	s := NewStore(fc, logging.Nop())

	done := make(chan error, 1)
	go func() { done <- s.Refresh(context.Background()) }()
	<-fc.listing

	s.Reset()
	close(fc.listGate)
	require.NoError(t, <-done)

	assert.False(t, s.Loaded())
	assert.Empty(t, s.List())
	assert.Equal(t, 0, s.UnreadCount())
}

func TestStore_ResetForgetsList(t *testing.T) {
	fc := &fakeNotifications{block: make(chan struct{})}
	s := NewStore(fc, logging.Nop())
	s.Replace(sample())
	s.MarkAsRead(context.Background(), "1")

	s.Reset()
	assert.False(t, s.Loaded())
	assert.Empty(t, s.List())
	assert.False(t, s.Pending("1"))

	close(fc.block)
	s.Wait()
	assert.Empty(t, s.List())
}
