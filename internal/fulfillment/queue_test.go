package fulfillment

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/adaptiv-labs/adaptiv/internal/database"
	"github.com/adaptiv-labs/adaptiv/internal/mail"
	"github.com/adaptiv-labs/adaptiv/internal/model"
)

// recordingSender captures orders instead of sending email. failures
// controls how many initial sends fail.
type recordingSender struct {
	sent     []mail.Order
	failures int
	calls    int
}

func (s *recordingSender) SendOrderEmails(order mail.Order) error {
	s.calls++
	if s.calls <= s.failures {
		return fmt.Errorf("relay unavailable (attempt %d)", s.calls)
	}
	s.sent = append(s.sent, order)
	return nil
}

func (s *recordingSender) SendManufacturingEmail(order mail.Order) error {
	return s.SendOrderEmails(order)
}

func (s *recordingSender) SendContactEmails(name, email, message string) error { return nil }
func (s *recordingSender) SendTestEmail() error                               { return nil }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testWorker(q *Queue, sender mail.Sender) *Worker {
	w := NewWorker(q, sender, zap.NewNop().Sugar())
	w.Backoff = time.Millisecond
	return w
}

func TestEnqueueDeduplicatesBySession(t *testing.T) {
	q := NewQueue(testDB(t))
	order := mail.Order{OrderID: "cs_1", CustomerEmail: "a@example.com"}

	if err := q.Enqueue("cs_1", order); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := q.Enqueue("cs_1", order); err != nil {
		t.Fatalf("redelivered enqueue: %v", err)
	}

	var count int64
	q.db.Model(&model.FulfillmentJob{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 job after redelivery, got %d", count)
	}
}

func TestWorkerSendsAndMarksSent(t *testing.T) {
	q := NewQueue(testDB(t))
	sender := &recordingSender{}
	w := testWorker(q, sender)

	order := mail.Order{
		OrderID:       "cs_2",
		CustomerName:  "Jordan",
		CustomerEmail: "jordan@example.com",
		OrderTotal:    "$54.71",
	}
	if err := q.Enqueue("cs_2", order); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	w.Drain()

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 order sent, got %d", len(sender.sent))
	}
	if sender.sent[0].CustomerEmail != "jordan@example.com" {
		t.Errorf("order round trip lost customer email: %+v", sender.sent[0])
	}

	var job model.FulfillmentJob
	if err := q.db.Where("session_id = ?", "cs_2").First(&job).Error; err != nil {
		t.Fatalf("job lookup: %v", err)
	}
	if job.Status != model.JobSent {
		t.Errorf("job status = %q, want %q", job.Status, model.JobSent)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}
}

func TestWorkerRetriesWithBackoff(t *testing.T) {
	q := NewQueue(testDB(t))
	sender := &recordingSender{failures: 1}
	w := testWorker(q, sender)

	if err := q.Enqueue("cs_3", mail.Order{OrderID: "cs_3"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	w.Drain()

	var job model.FulfillmentJob
	if err := q.db.Where("session_id = ?", "cs_3").First(&job).Error; err != nil {
		t.Fatalf("job lookup: %v", err)
	}
	if job.Status != model.JobPending {
		t.Fatalf("job status after one failure = %q, want pending", job.Status)
	}
	if job.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", job.Attempts)
	}
	if job.LastError == "" {
		t.Error("last error not recorded")
	}

	// The retry is scheduled in the future; wait past the 1ms backoff and
	// drain again.
	time.Sleep(5 * time.Millisecond)
	w.Drain()

	if len(sender.sent) != 1 {
		t.Fatalf("expected the retry to deliver, sent = %d", len(sender.sent))
	}
	if err := q.db.Where("session_id = ?", "cs_3").First(&job).Error; err != nil {
		t.Fatalf("job lookup: %v", err)
	}
	if job.Status != model.JobSent {
		t.Errorf("job status after retry = %q, want sent", job.Status)
	}
	if job.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", job.Attempts)
	}
}

func TestWorkerGivesUpAfterMaxAttempts(t *testing.T) {
	q := NewQueue(testDB(t))
	sender := &recordingSender{failures: 100}
	w := testWorker(q, sender)
	w.MaxAttempts = 3

	if err := q.Enqueue("cs_4", mail.Order{OrderID: "cs_4"}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	for i := 0; i < 10; i++ {
		w.Drain()
		time.Sleep(5 * time.Millisecond)
	}

	var job model.FulfillmentJob
	if err := q.db.Where("session_id = ?", "cs_4").First(&job).Error; err != nil {
		t.Fatalf("job lookup: %v", err)
	}
	if job.Status != model.JobFailed {
		t.Errorf("job status = %q, want failed", job.Status)
	}
	if job.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", job.Attempts)
	}
	if len(sender.sent) != 0 {
		t.Errorf("no order should have been delivered, got %d", len(sender.sent))
	}
}

func TestNextPendingEmptyQueue(t *testing.T) {
	q := NewQueue(testDB(t))
	_, err := q.NextPending()
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record-not-found on an empty queue, got %v", err)
	}
	if !IsEmpty(err) {
		t.Error("IsEmpty should recognize the drained-queue error")
	}
}
