// Package notify keeps the transient toast messages shown after cart and
// wishlist actions.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Lifetime is how long a notification stays on screen.
const Lifetime = 3 * time.Second

type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

type Notification struct {
	ID      string
	Kind    Kind
	Message string
	Created time.Time
}

// Queue holds active notifications, oldest first.
type Queue struct {
	items []Notification
	now   func() time.Time
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// Push adds a notification and returns it. Its ID is what the expiry
// message must carry to remove it.
func (q *Queue) Push(kind Kind, message string) Notification {
	n := Notification{
		ID:      uuid.NewString(),
		Kind:    kind,
		Message: message,
		Created: q.now(),
	}
	q.items = append(q.items, n)
	return n
}

// Dismiss removes the notification with id. Unknown ids are ignored.
func (q *Queue) Dismiss(id string) bool {
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) Items() []Notification {
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) Len() int { return len(q.items) }

// Latest returns the most recent notification, if any.
func (q *Queue) Latest() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[len(q.items)-1], true
}
