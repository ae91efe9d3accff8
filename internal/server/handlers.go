package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/seo-content-engine/internal/db"
	"github.com/jonathan/seo-content-engine/internal/types"
)

// jobResponse is the API view of a persisted job. Result is included
// only when the job completed; error fields only when it failed.
type jobResponse struct {
	JobID           uuid.UUID       `json:"job_id"`
	Topic           string          `json:"topic"`
	TargetWordCount int             `json:"target_word_count"`
	Language        string          `json:"language"`
	Status          db.JobStatus    `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Result          json.RawMessage `json:"result,omitempty"`
	Error           string          `json:"error,omitempty"`
	ErrorKind       string          `json:"error_kind,omitempty"`
}

func toJobResponse(job *db.Job) jobResponse {
	resp := jobResponse{
		JobID:           job.ID,
		Topic:           job.Topic,
		TargetWordCount: job.TargetWordCount,
		Language:        job.Language,
		Status:          job.Status,
		CreatedAt:       job.CreatedAt,
		CompletedAt:     job.CompletedAt,
	}
	switch job.Status {
	case db.StatusCompleted:
		resp.Result = job.Result
	case db.StatusFailed:
		resp.Error = job.Error
		resp.ErrorKind = job.ErrorKind
	}
	return resp
}

// handleCreateArticle accepts a generation request, validates it, creates
// a pending job, and kicks off the pipeline in the background. Invalid
// requests are rejected before any job row exists.
func (s *Server) handleCreateArticle(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID, err := s.store.CreateJob(r.Context(), req.Topic, req.TargetWordCount, req.Language)
	if err != nil {
		log.Printf("Failed to create job: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create job")
		return
	}

	// The request context dies with this response; the pipeline run gets
	// its own.
	go func() {
		if _, err := s.runner.Run(context.Background(), jobID, req); err != nil {
			log.Printf("Job %s failed: %v", jobID, err)
		}
	}()

	s.jsonResponse(w, http.StatusAccepted, map[string]any{
		"job_id":     jobID,
		"status":     db.StatusPending,
		"created_at": time.Now().UTC(),
	})
}

// handleGetArticle returns the current state of a job, including the
// result once completed or the error once failed.
func (s *Server) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		log.Printf("Failed to get job %s: %v", jobID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, toJobResponse(job))
}

// handleListArticles returns recent jobs, optionally filtered by status.
func (s *Server) handleListArticles(w http.ResponseWriter, r *http.Request) {
	filters := db.JobFilters{
		Status: db.JobStatus(r.URL.Query().Get("status")),
	}

	jobs, err := s.store.ListJobs(r.Context(), filters)
	if err != nil {
		log.Printf("Failed to list jobs: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}

	responses := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		resp := toJobResponse(&jobs[i])
		resp.Result = nil // keep list responses light
		responses = append(responses, resp)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  responses,
		"count": len(responses),
	})
}

// handleGetCheckpoints exposes the mid-pipeline debug breadcrumbs saved
// after the SERP fetch and outline steps.
func (s *Server) handleGetCheckpoints(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		log.Printf("Failed to get job %s: %v", jobID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":       job.ID,
		"status":       job.Status,
		"serp_data":    job.SERPData,
		"outline_data": job.OutlineData,
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
