package fulfillment

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/adaptiv-labs/adaptiv/internal/mail"
	"github.com/adaptiv-labs/adaptiv/internal/model"
)

// Queue persists fulfillment jobs so a paid order survives a crash between
// the webhook acknowledgement and the emails going out.
type Queue struct {
	db *gorm.DB
}

func NewQueue(db *gorm.DB) *Queue {
	return &Queue{db: db}
}

// Enqueue stores the order emails as a pending job keyed by checkout
// session. A redelivered webhook event for the same session is a no-op.
func (q *Queue) Enqueue(sessionID string, order mail.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode fulfillment payload: %w", err)
	}

	job := model.FulfillmentJob{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Payload:   string(payload),
		Status:    model.JobPending,
		NextRunAt: time.Now(),
	}
	result := q.db.Where("session_id = ?", sessionID).FirstOrCreate(&job)
	if result.Error != nil {
		return fmt.Errorf("enqueue fulfillment job: %w", result.Error)
	}
	return nil
}

// NextPending claims the oldest runnable job. Returns gorm.ErrRecordNotFound
// when the queue is drained.
func (q *Queue) NextPending() (*model.FulfillmentJob, error) {
	var job model.FulfillmentJob
	err := q.db.
		Where("status = ? AND next_run_at <= ?", model.JobPending, time.Now()).
		Order("next_run_at asc").
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (q *Queue) markSent(job *model.FulfillmentJob) error {
	return q.db.Model(job).Updates(map[string]any{
		"status":     model.JobSent,
		"attempts":   job.Attempts + 1,
		"last_error": "",
	}).Error
}

func (q *Queue) markFailed(job *model.FulfillmentJob, attemptErr error, maxAttempts int, backoff time.Duration) error {
	attempts := job.Attempts + 1
	updates := map[string]any{
		"attempts":   attempts,
		"last_error": attemptErr.Error(),
	}
	if attempts >= maxAttempts {
		updates["status"] = model.JobFailed
	} else {
		// Exponential backoff: backoff, 2*backoff, 4*backoff, ...
		delay := backoff << (attempts - 1)
		updates["next_run_at"] = time.Now().Add(delay)
	}
	return q.db.Model(job).Updates(updates).Error
}

// IsEmpty is the sentinel check for a drained queue.
func IsEmpty(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
