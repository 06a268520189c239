package mock

import (
	"context"
	"time"

	"github.com/fwojciec/seofetch"
)

// Compile-time interface verification.
var (
	_ seofetch.JobService      = (*JobService)(nil)
	_ seofetch.PageStore       = (*PageStore)(nil)
	_ seofetch.URLSource       = (*URLSource)(nil)
	_ seofetch.OutcomeRecorder = (*OutcomeRecorder)(nil)
)

// JobService is a mock implementation of seofetch.JobService.
type JobService struct {
	CreateJobFn   func(ctx context.Context, job *seofetch.Job) error
	FindJobByIDFn func(ctx context.Context, id string) (*seofetch.Job, error)
	FindJobsFn    func(ctx context.Context, filter seofetch.JobFilter) ([]*seofetch.Job, error)
	DeleteJobFn   func(ctx context.Context, id string) error
}

func (s *JobService) CreateJob(ctx context.Context, job *seofetch.Job) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*seofetch.Job, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter seofetch.JobFilter) ([]*seofetch.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	return s.DeleteJobFn(ctx, id)
}

// PageStore is a mock implementation of seofetch.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *seofetch.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *seofetch.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}

// URLSource is a mock implementation of seofetch.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, keyword string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, keyword string) ([]string, error) {
	return s.DiscoverFn(ctx, keyword)
}

// OutcomeRecorder is a mock implementation of seofetch.OutcomeRecorder.
type OutcomeRecorder struct {
	RecordOutcomeFn func(ctx context.Context, result *seofetch.Result, elapsed time.Duration)
}

func (r *OutcomeRecorder) RecordOutcome(ctx context.Context, result *seofetch.Result, elapsed time.Duration) {
	r.RecordOutcomeFn(ctx, result, elapsed)
}
