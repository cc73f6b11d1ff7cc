package dashboard

import (
	"context"
	"sync"

	slogctx "github.com/veqryn/slog-context"

	"github.com/openkcm/employee-dashboard/internal/session"
)

// Notifications queues toasts until the presentation layer drains them.
type Notifications struct {
	mu    sync.Mutex
	queue []session.Notification
}

var _ = session.Notifier(&Notifications{})

func NewNotifications() *Notifications {
	return &Notifications{}
}

func (n *Notifications) Notify(ctx context.Context, note session.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.queue = append(n.queue, note)
	slogctx.Debug(ctx, "Notification queued", "level", string(note.Level), "message", note.Message)
}

// Drain returns every queued notification in order and empties the queue.
func (n *Notifications) Drain() []session.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	drained := n.queue
	n.queue = nil
	if drained == nil {
		return []session.Notification{}
	}

	return drained
}
