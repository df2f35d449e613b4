package transport_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpohire/portal/internal/credstore"
	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/transport"
)

func newClient(t *testing.T, backend http.Handler) (*transport.Client, credstore.Store) {
	t.Helper()
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	creds := credstore.NewFileStore(filepath.Join(t.TempDir(), "creds.json"))
	return transport.New(ts.URL, 5*time.Second, creds), creds
}

func TestBearerHeaderFollowsStore(t *testing.T) {
	var gotAuth string
	client, creds := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil))
	assert.Empty(t, gotAuth, "no stored token, no header")

	require.NoError(t, creds.SetToken("tok-abc"))
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil))
	assert.Equal(t, "Bearer tok-abc", gotAuth)

	// The token is re-read at send time, so a logout between calls drops
	// the header immediately.
	require.NoError(t, creds.Clear())
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil))
	assert.Empty(t, gotAuth)
}

func TestUnauthorizedClearsCredentialAndNotifies(t *testing.T) {
	client, creds := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	notified := 0
	client.OnUnauthorized(func() { notified++ })

	require.NoError(t, creds.SetToken("expired"))
	err := client.Do(context.Background(), http.MethodGet, "/anything", nil, nil, nil)
	assert.True(t, domain.IsUnauthorized(err))
	assert.Equal(t, 1, notified)

	token, readErr := creds.Token()
	require.NoError(t, readErr)
	assert.Empty(t, token, "401 must clear the persisted credential")
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := client.Do(context.Background(), http.MethodGet, "/public/jobs/42", nil, nil, nil)
	assert.True(t, domain.IsNotFound(err))
}

func TestBackendErrorPayloadSurfaces(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))

	err := client.Do(context.Background(), http.MethodPost, "/auth/login", nil, map[string]string{}, nil)
	apiErr := &domain.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestMissingErrorPayloadFallsBackToStatusText(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	apiErr := &domain.APIError{}
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestNetworkFailureIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	creds := credstore.NewFileStore(filepath.Join(t.TempDir(), "creds.json"))
	client := transport.New(ts.URL, time.Second, creds)
	ts.Close() // nothing is listening anymore

	err := client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
	assert.True(t, domain.IsTransport(err))
}
