package queue

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusdesk/grievance-system/internal/core/ports"
)

// recordingMailer captures sent messages and signals each delivery attempt
// so tests can wait without sleeping.
type recordingMailer struct {
	mu        sync.Mutex
	messages  []ports.MailMessage
	failWith  error
	delivered chan struct{}
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{delivered: make(chan struct{}, 16)}
}

func (m *recordingMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.mu.Lock()
	m.messages = append(m.messages, msg)
	err := m.failWith
	m.mu.Unlock()
	m.delivered <- struct{}{}
	return err
}

func (m *recordingMailer) sent() []ports.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ports.MailMessage, len(m.messages))
	copy(out, m.messages)
	return out
}

func waitDeliveries(t *testing.T, m *recordingMailer, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-m.delivered:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for delivery %d of %d", i+1, n)
		}
	}
}

func TestDispatcherDeliversNotification(t *testing.T) {
	mailer := newRecordingMailer()
	d := NewDispatcher(2, mailer, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Notify(ports.StatusNotification{
		GrievanceID: 7,
		StudentID:   "N180001",
		Email:       "asha@example.edu",
		Category:    "Hostel - I1 - Electrical",
		Status:      "Resolved",
		Reply:       "Fan replaced",
	})
	waitDeliveries(t, mailer, 1)

	msgs := mailer.sent()
	if len(msgs) != 1 {
		t.Fatalf("sent %d messages, want 1", len(msgs))
	}
	msg := msgs[0]
	if msg.To != "asha@example.edu" {
		t.Errorf("recipient = %q, want the student address", msg.To)
	}
	if msg.Subject != "Grievance #7 update: Resolved" {
		t.Errorf("subject = %q", msg.Subject)
	}
	for _, want := range []string{"N180001", "Hostel - I1 - Electrical", "Resolved", "Fan replaced"} {
		if !strings.Contains(msg.Body, want) {
			t.Errorf("body missing %q:\n%s", want, msg.Body)
		}
	}
}

func TestDispatcherSwallowsDeliveryFailure(t *testing.T) {
	mailer := newRecordingMailer()
	mailer.failWith = errors.New("smtp: connection refused")
	d := NewDispatcher(1, mailer, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Notify must not block or panic on a failing mailer, and the worker
	// must keep draining afterwards.
	d.Notify(ports.StatusNotification{GrievanceID: 1, Email: "a@example.edu", Status: "Resolved"})
	d.Notify(ports.StatusNotification{GrievanceID: 2, Email: "b@example.edu", Status: "Escalated"})
	waitDeliveries(t, mailer, 2)

	if got := len(mailer.sent()); got != 2 {
		t.Errorf("delivery attempts = %d, want 2", got)
	}
}

func TestDispatcherShardsByRecipient(t *testing.T) {
	d := NewDispatcher(4, newRecordingMailer(), zerolog.Nop())

	// Same recipient always lands on the same worker.
	first := d.shardIndex("asha@example.edu")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("asha@example.edu"); got != first {
			t.Fatalf("shard index changed between calls: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index %d out of range", first)
	}
}

func TestDispatcherDefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingMailer(), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want the default %d", len(d.workers), defaultWorkers)
	}
}
