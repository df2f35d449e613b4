package listing_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/listing"
)

type stubFetcher struct {
	mu          sync.Mutex
	allCalls    int
	searchCalls int

	allFn    func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error)
	searchFn func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error)
	byIDFn   func(ctx context.Context, id int64) (*domain.Job, error)
}

func (s *stubFetcher) GetAllJobs(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
	s.mu.Lock()
	s.allCalls++
	s.mu.Unlock()
	return s.allFn(ctx, f)
}

func (s *stubFetcher) SearchJobs(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
	s.mu.Lock()
	s.searchCalls++
	s.mu.Unlock()
	return s.searchFn(ctx, f)
}

func (s *stubFetcher) GetJobByID(ctx context.Context, id int64) (*domain.Job, error) {
	return s.byIDFn(ctx, id)
}

func (s *stubFetcher) searched() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchCalls
}

func jobs(titles ...string) []domain.Job {
	out := make([]domain.Job, len(titles))
	for i, title := range titles {
		out[i] = domain.Job{ID: int64(i + 1), Title: title}
	}
	return out
}

func TestSearchCommitsFiltersOnlyOnSuccess(t *testing.T) {
	fetcher := &stubFetcher{}
	store := listing.NewStore(fetcher)

	good := domain.FilterSet{City: "Mumbai", JobType: domain.JobTypeFullTime}
	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		return jobs("CSE", "TSA"), nil
	}
	require.NoError(t, store.Search(context.Background(), good))
	assert.Len(t, store.Jobs(), 2)
	assert.Equal(t, good, store.Filters())
	assert.NoError(t, store.Err())

	// A failed search must not touch the committed filters or the result.
	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		return nil, errors.New("backend down")
	}
	bad := domain.FilterSet{City: "Delhi"}
	require.Error(t, store.Search(context.Background(), bad))
	assert.Len(t, store.Jobs(), 2, "previous result must survive")
	assert.Equal(t, good, store.Filters(), "previous filters must survive")
	assert.Error(t, store.Err())

	// The next success clears the recorded failure.
	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		return jobs("Chat"), nil
	}
	require.NoError(t, store.Search(context.Background(), bad))
	assert.NoError(t, store.Err())
	assert.Equal(t, bad, store.Filters())
}

func TestFetchAllDoesNotTouchCommittedFilters(t *testing.T) {
	fetcher := &stubFetcher{}
	store := listing.NewStore(fetcher)

	committed := domain.FilterSet{City: "Pune"}
	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		return jobs("A"), nil
	}
	require.NoError(t, store.Search(context.Background(), committed))

	fetcher.allFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		assert.Equal(t, domain.FilterSet{City: "Chennai"}, f)
		return jobs("B", "C", "D"), nil
	}
	override := domain.FilterSet{City: "Chennai"}
	require.NoError(t, store.FetchAll(context.Background(), &override))

	assert.Len(t, store.Jobs(), 3)
	assert.Equal(t, committed, store.Filters(), "FetchAll must not commit filters")
}

func TestClearFiltersIsIdempotentAndFetchesPerCall(t *testing.T) {
	fetcher := &stubFetcher{}
	store := listing.NewStore(fetcher)

	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		assert.True(t, f.IsZero())
		return jobs("A"), nil
	}

	require.NoError(t, store.ClearFilters(context.Background()))
	assert.True(t, store.Filters().IsZero())

	require.NoError(t, store.ClearFilters(context.Background()))
	assert.True(t, store.Filters().IsZero())

	// One fetch per explicit call, nothing deduplicated.
	assert.Equal(t, 2, fetcher.searched())
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	fetcher := &stubFetcher{}
	store := listing.NewStore(fetcher)

	slowStarted := make(chan struct{})
	slowRelease := make(chan struct{})
	slowFilters := domain.FilterSet{City: "Slow"}
	fastFilters := domain.FilterSet{City: "Fast"}

	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		if f.City == "Slow" {
			close(slowStarted)
			<-slowRelease
			return jobs("stale"), nil
		}
		return jobs("fresh-1", "fresh-2"), nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = store.Search(context.Background(), slowFilters)
	}()
	<-slowStarted

	assert.True(t, store.Loading())

	// A later request completes first and wins.
	require.NoError(t, store.Search(context.Background(), fastFilters))

	// Now the earlier request resolves; its response is older than the one
	// already applied and must be dropped.
	close(slowRelease)
	wg.Wait()

	assert.False(t, store.Loading())
	assert.Len(t, store.Jobs(), 2)
	assert.Equal(t, fastFilters, store.Filters())
	assert.Equal(t, uint64(1), store.DiscardedResponses())
}

func TestGetByIDLeavesStoreUntouched(t *testing.T) {
	fetcher := &stubFetcher{}
	store := listing.NewStore(fetcher)

	fetcher.searchFn = func(ctx context.Context, f domain.FilterSet) ([]domain.Job, error) {
		return jobs("A"), nil
	}
	committed := domain.FilterSet{City: "Mumbai"}
	require.NoError(t, store.Search(context.Background(), committed))

	fetcher.byIDFn = func(ctx context.Context, id int64) (*domain.Job, error) {
		return nil, domain.ErrNotFound
	}
	_, err := store.GetByID(context.Background(), 42)
	assert.True(t, domain.IsNotFound(err))

	assert.Len(t, store.Jobs(), 1)
	assert.Equal(t, committed, store.Filters())
	assert.NoError(t, store.Err())
}
