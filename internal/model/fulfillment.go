package model

import (
	"time"

	"gorm.io/gorm"
)

// JobStatus is the lifecycle state of a fulfillment email job.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobSent    JobStatus = "sent"
	JobFailed  JobStatus = "failed"
)

// FulfillmentJob is one durable unit of post-payment work: the order emails
// for a single completed checkout session. The webhook handler enqueues a
// job and acknowledges the processor immediately; a background worker sends
// the emails and retries transient failures.
type FulfillmentJob struct {
	ID        string    `gorm:"primaryKey;size:36"`
	SessionID string    `gorm:"uniqueIndex;not null;size:255"` // checkout session, dedupes redelivered events
	Payload   string    `gorm:"type:text;not null"`            // JSON-encoded mail.Order
	Status    JobStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts  int       `gorm:"not null;default:0"`
	LastError string    `gorm:"type:text"`
	NextRunAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
