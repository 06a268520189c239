package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/seofetch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ seofetch.JobService = (*JobService)(nil)

// JobService implements seofetch.JobService using SQLite. Each result is
// stored as its wire record alongside indexed columns for querying.
type JobService struct {
	db *DB
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db}
}

// contentHash returns the xxHash of a successful result's body text, or
// "" for blocked results.
func contentHash(r *seofetch.Result) string {
	if r.Blocked || r.Document == nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64String(r.Document.BodyText), 16)
}

// CreateJob stores a job and its results in one transaction.
func (s *JobService) CreateJob(ctx context.Context, job *seofetch.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.ID = uuid.New().String()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	job.CreatedAt = job.CreatedAt.UTC().Truncate(time.Second)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO jobs (id, keyword, created_at)
		VALUES (?, ?, ?)
	`, job.ID, job.Keyword, formatTime(job.CreatedAt)); err != nil {
		return err
	}

	for i, r := range job.Results {
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode result %d: %w", i, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO results (job_id, position, url, blocked, kind, reason, payload, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, job.ID, i, r.URL, r.Blocked, string(r.Kind), r.Reason, string(payload), contentHash(r)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindJobByID retrieves a job with its results in rank order.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*seofetch.Job, error) {
	jobs, err := s.FindJobs(ctx, seofetch.JobFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, seofetch.Errorf(seofetch.ENOTFOUND, "job not found")
	}
	return jobs[0], nil
}

// FindJobs retrieves jobs matching the filter, newest first, with results.
func (s *JobService) FindJobs(ctx context.Context, filter seofetch.JobFilter) ([]*seofetch.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, keyword, created_at FROM jobs WHERE 1=1")
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Keyword != nil {
		query.WriteString(" AND keyword = ?")
		args = append(args, *filter.Keyword)
	}
	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*seofetch.Job
	for rows.Next() {
		var job seofetch.Job
		var createdAt string
		if err := rows.Scan(&job.ID, &job.Keyword, &createdAt); err != nil {
			return nil, err
		}
		if job.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		jobs = append(jobs, &job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Close before issuing result queries on the single connection.
	rows.Close()

	for _, job := range jobs {
		if job.Results, err = s.findResults(ctx, job.ID); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}

func (s *JobService) findResults(ctx context.Context, jobID string) ([]*seofetch.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, payload
		FROM results
		WHERE job_id = ?
		ORDER BY position
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*seofetch.Result{}
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, err
		}
		var r seofetch.Result
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			return nil, fmt.Errorf("decode result payload: %w", err)
		}
		if r.Blocked && kind != "" {
			r.Kind = seofetch.BlockKind(kind)
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

// DeleteJob permanently removes a job and its results.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return seofetch.Errorf(seofetch.ENOTFOUND, "job not found")
	}
	return nil
}
