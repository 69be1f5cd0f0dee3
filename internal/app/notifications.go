package app

import (
	"context"
	"sync"
	"time"

	"levelup/internal/domain"
)

// DefaultToastTTL is how long a notification stays visible once shown.
const DefaultToastTTL = 5 * time.Second

// Notification is a queued achievement unlock.
type Notification struct {
	ID       int64         `json:"id"`
	Unlock   domain.Unlock `json:"unlock"`
	QueuedAt time.Time     `json:"queuedAt"`
	ShownAt  time.Time     `json:"shownAt"`
}

// NotificationQueue holds unlock notifications and surfaces them one at a
// time. A notification is dropped once it has been shown for the TTL or when
// it is dismissed.
type NotificationQueue struct {
	clock domain.Clock
	ttl   time.Duration

	mu     sync.Mutex
	items  []Notification
	nextID int64
}

var _ domain.Notifier = (*NotificationQueue)(nil)

// NewNotificationQueue creates a queue whose entries expire ttl after they are
// first shown.
func NewNotificationQueue(clock domain.Clock, ttl time.Duration) *NotificationQueue {
	if clock == nil {
		clock = domain.SystemClock{}
	}
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &NotificationQueue{clock: clock, ttl: ttl}
}

// Notify enqueues an unlock.
func (q *NotificationQueue) Notify(_ context.Context, u domain.Unlock) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	q.items = append(q.items, Notification{ID: q.nextID, Unlock: u, QueuedAt: q.clock.Now()})
}

// Current returns the visible notification, starting its display timer on
// first call. Expired entries are dropped first.
func (q *NotificationQueue) Current() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.clock.Now()
	for len(q.items) > 0 && !q.items[0].ShownAt.IsZero() && now.Sub(q.items[0].ShownAt) >= q.ttl {
		q.items = q.items[1:]
	}
	if len(q.items) == 0 {
		return Notification{}, false
	}
	if q.items[0].ShownAt.IsZero() {
		q.items[0].ShownAt = now
	}
	return q.items[0], true
}

// Dismiss drops the visible notification. It reports whether there was one.
func (q *NotificationQueue) Dismiss() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return false
	}
	q.items = q.items[1:]
	return true
}

// Drain removes and returns every queued notification.
func (q *NotificationQueue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

// Pending returns the number of queued notifications, including the visible one.
func (q *NotificationQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
