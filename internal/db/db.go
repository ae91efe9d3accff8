// Package db provides PostgreSQL persistence for article generation jobs.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the article_jobs table if it doesn't exist. Safe to
// call on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS article_jobs (
			id UUID PRIMARY KEY,
			topic TEXT NOT NULL,
			target_word_count INTEGER NOT NULL DEFAULT 1500,
			language TEXT NOT NULL DEFAULT 'en',
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ,
			serp_data JSONB,
			outline_data JSONB,
			result JSONB,
			error TEXT,
			error_kind TEXT
		)`)
	if err != nil {
		return fmt.Errorf("failed to create article_jobs table: %w", err)
	}
	return nil
}

// CreateJob inserts a new pending job and returns its ID.
func (db *DB) CreateJob(ctx context.Context, topic string, targetWordCount int, language string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO article_jobs (id, topic, target_word_count, language, status)
		 VALUES ($1, $2, $3, $4, 'pending')`,
		id, topic, targetWordCount, language,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

const jobColumns = `id, topic, target_word_count, language, status, created_at, completed_at,
	serp_data, outline_data, result, COALESCE(error, ''), COALESCE(error_kind, '')`

func scanJob(row pgx.Row) (*Job, error) {
	var job Job
	err := row.Scan(
		&job.ID, &job.Topic, &job.TargetWordCount, &job.Language, &job.Status,
		&job.CreatedAt, &job.CompletedAt,
		&job.SERPData, &job.OutlineData, &job.Result, &job.Error, &job.ErrorKind,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob retrieves a job by ID. Returns (nil, nil) when not found.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM article_jobs WHERE id = $1`, jobID)
	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// JobFilters holds optional filters for listing jobs.
type JobFilters struct {
	Status JobStatus
	Limit  int
}

// ListJobs retrieves recent jobs, newest first.
func (db *DB) ListJobs(ctx context.Context, filters JobFilters) ([]Job, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT ` + jobColumns + ` FROM article_jobs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// UpdateStatus transitions a job to a new status.
func (db *DB) UpdateStatus(ctx context.Context, jobID uuid.UUID, status JobStatus) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE article_jobs SET status = $1 WHERE id = $2`, status, jobID)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}
	return nil
}

// SaveSERPData checkpoints the SERP analysis results after step 1.
func (db *DB) SaveSERPData(ctx context.Context, jobID uuid.UUID, data any) error {
	return db.saveCheckpoint(ctx, jobID, "serp_data", data)
}

// SaveOutlineData checkpoints the article outline after step 3.
func (db *DB) SaveOutlineData(ctx context.Context, jobID uuid.UUID, data any) error {
	return db.saveCheckpoint(ctx, jobID, "outline_data", data)
}

func (db *DB) saveCheckpoint(ctx context.Context, jobID uuid.UUID, column string, data any) error {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s checkpoint: %w", column, err)
	}
	// column is one of two fixed identifiers, never user input.
	_, err = db.pool.Exec(ctx,
		fmt.Sprintf(`UPDATE article_jobs SET %s = $1 WHERE id = $2`, column),
		jsonBytes, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s checkpoint: %w", column, err)
	}
	return nil
}

// SaveResult stores the final article output and marks the job completed.
func (db *DB) SaveResult(ctx context.Context, jobID uuid.UUID, result any) error {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE article_jobs SET status = 'completed', result = $1, completed_at = NOW() WHERE id = $2`,
		jsonBytes, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// SaveError records a failure and marks the job failed. kind is the
// machine-readable error category for API consumers.
func (db *DB) SaveError(ctx context.Context, jobID uuid.UUID, message, kind string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE article_jobs SET status = 'failed', error = $1, error_kind = $2, completed_at = NOW() WHERE id = $3`,
		message, kind, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to save error: %w", err)
	}
	return nil
}
