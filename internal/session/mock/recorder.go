package sessionmock

import (
	"context"
	"sync"

	"github.com/openkcm/employee-dashboard/internal/session"
)

// Recorder captures every navigation intent and notification it receives.
type Recorder struct {
	mu            sync.Mutex
	intents       []session.Intent
	notifications []session.Notification
}

var (
	_ = session.Navigator(&Recorder{})
	_ = session.Notifier(&Recorder{})
)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(_ context.Context, intent session.Intent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.intents = append(r.intents, intent)
}

func (r *Recorder) Notify(_ context.Context, n session.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notifications = append(r.notifications, n)
}

func (r *Recorder) Intents() []session.Intent {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]session.Intent(nil), r.intents...)
}

func (r *Recorder) Notifications() []session.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]session.Notification(nil), r.notifications...)
}
