package fulfillment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/adaptiv-labs/adaptiv/internal/mail"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultMaxAttempts  = 5
	defaultBackoff      = 30 * time.Second
)

// Worker drains the queue in the background, sending order emails and
// rescheduling transient failures.
type Worker struct {
	queue  *Queue
	sender mail.Sender
	log    *zap.SugaredLogger

	PollInterval time.Duration
	MaxAttempts  int
	Backoff      time.Duration
}

func NewWorker(queue *Queue, sender mail.Sender, log *zap.SugaredLogger) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		log:          log,
		PollInterval: defaultPollInterval,
		MaxAttempts:  defaultMaxAttempts,
		Backoff:      defaultBackoff,
	}
}

// Run polls until ctx is cancelled. Intended to be launched as a goroutine
// from main.
func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Drain()
		}
	}
}

// Drain processes runnable jobs until the queue is empty. Exported so tests
// and a synchronous caller can run one pass without the ticker.
func (w *Worker) Drain() {
	for {
		job, err := w.queue.NextPending()
		if err != nil {
			if !IsEmpty(err) {
				w.log.Errorw("fulfillment queue read failed", "error", err)
			}
			return
		}

		if err := w.process(job.Payload); err != nil {
			w.log.Errorw("fulfillment job failed",
				"job_id", job.ID, "session_id", job.SessionID,
				"attempt", job.Attempts+1, "error", err)
			if err := w.queue.markFailed(job, err, w.MaxAttempts, w.Backoff); err != nil {
				w.log.Errorw("fulfillment job update failed", "job_id", job.ID, "error", err)
				return
			}
			continue
		}

		if err := w.queue.markSent(job); err != nil {
			w.log.Errorw("fulfillment job update failed", "job_id", job.ID, "error", err)
			return
		}
		w.log.Infow("fulfillment emails sent", "job_id", job.ID, "session_id", job.SessionID)
	}
}

func (w *Worker) process(payload string) error {
	var order mail.Order
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		return fmt.Errorf("decode fulfillment payload: %w", err)
	}
	return w.sender.SendOrderEmails(order)
}
