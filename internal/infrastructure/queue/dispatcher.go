package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/campusdesk/grievance-system/internal/api/metrics"
	"github.com/campusdesk/grievance-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher delivers status-change emails off the request path. Work is
// sharded over a fixed set of workers by recipient address, keeping one
// student's notifications in order. Callers never block beyond the channel
// buffer and never observe delivery outcomes; failures are logged and
// counted only.
type Dispatcher struct {
	workers []chan ports.StatusNotification
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.StatusNotification, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.StatusNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify hands a notification to the worker responsible for its recipient.
func (d *Dispatcher) Notify(n ports.StatusNotification) {
	idx := d.shardIndex(n.Email)
	d.workers[idx] <- n
	metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.StatusNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.send(ctx, id, n)
			metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

// send builds and delivers one email. Errors are terminal: there is no
// retry, matching the best-effort contract of status notifications.
func (d *Dispatcher) send(ctx context.Context, workerID int, n ports.StatusNotification) {
	msg := ports.MailMessage{
		To:      n.Email,
		Subject: fmt.Sprintf("Grievance #%d update: %s", n.GrievanceID, n.Status),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour grievance has been updated.\n\nCategory: %s\nStatus: %s\nReply: %s\n\nCampus Grievance Cell",
			n.StudentID, n.Category, n.Status, n.Reply,
		),
	}

	if err := d.mailer.Send(ctx, msg); err != nil {
		metrics.NotificationsFailedTotal.Inc()
		d.log.Error().Err(err).
			Uint("grievance_id", n.GrievanceID).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	metrics.NotificationsSentTotal.Inc()
	d.log.Debug().Uint("grievance_id", n.GrievanceID).Str("status", n.Status).Msg("notification sent")
}
