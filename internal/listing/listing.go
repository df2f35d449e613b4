// Package listing owns the job search state: the committed filter set and
// the last fetched result. Results are replaced wholesale on success, never
// merged; a failed fetch leaves everything as it was.
package listing

import (
	"context"
	"sync"

	"github.com/bpohire/portal/internal/domain"
)

// JobFetcher is the slice of the repository the store needs.
type JobFetcher interface {
	GetAllJobs(ctx context.Context, filters domain.FilterSet) ([]domain.Job, error)
	SearchJobs(ctx context.Context, filters domain.FilterSet) ([]domain.Job, error)
	GetJobByID(ctx context.Context, id int64) (*domain.Job, error)
}

type Store struct {
	fetcher JobFetcher

	mu       sync.Mutex
	filters  domain.FilterSet
	jobs     []domain.Job
	lastErr  error
	inflight int

	// Responses are tagged with a monotonic sequence and anything older than
	// the last applied response is discarded, so a slow early request can
	// never clobber a fresher result.
	nextSeq     uint64
	appliedSeq  uint64
	rejectedSeq uint64
}

func NewStore(fetcher JobFetcher) *Store {
	return &Store{fetcher: fetcher}
}

// FetchAll loads the listing, unfiltered or qualified by the override. The
// committed filter set is not touched either way.
func (s *Store) FetchAll(ctx context.Context, override *domain.FilterSet) error {
	filters := domain.FilterSet{}
	if override != nil {
		filters = *override
	}

	seq := s.begin()
	jobs, err := s.fetcher.GetAllJobs(ctx, filters)
	s.finish(seq, jobs, err, nil)
	return err
}

// Search loads the listing for the given filters and, only on success,
// commits them as the current filter set. In-flight edits before submission
// never leak into the committed set.
func (s *Store) Search(ctx context.Context, filters domain.FilterSet) error {
	seq := s.begin()
	jobs, err := s.fetcher.SearchJobs(ctx, filters)
	s.finish(seq, jobs, err, &filters)
	return err
}

// ClearFilters resets to the all-empty filter set and issues exactly one
// search with it. Calling it twice fetches twice; nothing is deduplicated.
func (s *Store) ClearFilters(ctx context.Context) error {
	return s.Search(ctx, domain.FilterSet{})
}

// GetByID fetches one job without touching the listing state. NotFound
// propagates to the caller, which owns the not-found view.
func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return s.fetcher.GetJobByID(ctx, id)
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	s.inflight++
	return s.nextSeq
}

func (s *Store) finish(seq uint64, jobs []domain.Job, err error, commit *domain.FilterSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inflight--

	// Stale response: a newer one has already been applied.
	if seq < s.appliedSeq {
		s.rejectedSeq++
		return
	}

	if err != nil {
		s.lastErr = err
		return
	}

	s.appliedSeq = seq
	s.jobs = jobs
	s.lastErr = nil
	if commit != nil {
		s.filters = *commit
	}
}

// Jobs returns the last applied listing result.
func (s *Store) Jobs() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]domain.Job, len(s.jobs))
	copy(jobs, s.jobs)
	return jobs
}

// Filters returns the committed filter set, i.e. what was last successfully
// searched, not what is being typed.
func (s *Store) Filters() domain.FilterSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// Loading reports whether any fetch or search is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

// Err returns the failure recorded by the most recent completed fetch, or
// nil after a success.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// DiscardedResponses counts stale responses that lost the sequence race.
// Exposed for observability.
func (s *Store) DiscardedResponses() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejectedSeq
}
