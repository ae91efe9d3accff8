package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JobStatus tracks the generation lifecycle of an article job.
//
// Status flow:
//
//	pending -> running -> completed (success path)
//	pending -> running -> failed    (error occurred)
//
// Failed jobs stay failed and completed jobs don't re-run.
type JobStatus string

const (
	StatusPending   JobStatus = "pending"
	StatusRunning   JobStatus = "running"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
)

// Job is a persisted article generation job. The checkpoint columns
// (SERPData, OutlineData) are saved mid-pipeline so a crashed run leaves
// debuggable breadcrumbs; Result holds the complete article output once
// the job completes.
type Job struct {
	ID              uuid.UUID       `json:"id"`
	Topic           string          `json:"topic"`
	TargetWordCount int             `json:"target_word_count"`
	Language        string          `json:"language"`
	Status          JobStatus       `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	SERPData        json.RawMessage `json:"serp_data,omitempty"`
	OutlineData     json.RawMessage `json:"outline_data,omitempty"`
	Result          json.RawMessage `json:"result,omitempty"`
	Error           string          `json:"error,omitempty"`
	ErrorKind       string          `json:"error_kind,omitempty"`
}
