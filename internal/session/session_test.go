package session_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpohire/portal/internal/credstore"
	"github.com/bpohire/portal/internal/devserver"
	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/guard"
	"github.com/bpohire/portal/internal/repository"
	"github.com/bpohire/portal/internal/session"
	"github.com/bpohire/portal/internal/transport"
)

// newSession wires a store against a fresh in-memory backend, the same way
// cmd/portal does: transport over the credential store, 401 policy feeding
// back into Logout.
func newSession(t *testing.T) (*session.Store, credstore.Store, *repository.Repository) {
	t.Helper()

	ts := httptest.NewServer(devserver.New("test-secret", time.Hour))
	t.Cleanup(ts.Close)

	creds := credstore.NewFileStore(filepath.Join(t.TempDir(), "creds.json"))
	client := transport.New(ts.URL+"/api", 5*time.Second, creds)
	repo := repository.NewRepository(client)
	sess := session.NewStore(repo, creds)
	client.OnUnauthorized(sess.Logout)
	return sess, creds, repo
}

func TestRestoreWithoutCredentialIsAnonymous(t *testing.T) {
	sess, _, _ := newSession(t)
	assert.Equal(t, session.StateUnknown, sess.State())

	sess.Restore(context.Background())

	assert.Equal(t, session.StateAnonymous, sess.State())
	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, sess.Identity())
}

func TestLoginSuccess(t *testing.T) {
	sess, creds, _ := newSession(t)
	sess.Restore(context.Background())

	res := sess.Login(context.Background(), devserver.SeedCandidateEmail, devserver.SeedPassword)
	require.True(t, res.OK, res.Message)

	assert.Equal(t, session.StateAuthenticated, sess.State())
	assert.True(t, sess.IsAuthenticated())
	assert.True(t, sess.IsCandidate())
	assert.False(t, sess.IsEmployer())
	assert.False(t, sess.IsAdmin())

	token, err := creds.Token()
	require.NoError(t, err)
	assert.NotEmpty(t, token, "credential must be persisted on success")

	exp, ok := sess.ExpiryHint()
	require.True(t, ok)
	assert.True(t, exp.After(time.Now()))
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	sess, creds, _ := newSession(t)
	sess.Restore(context.Background())

	res := sess.Login(context.Background(), devserver.SeedCandidateEmail, "wrong-password")
	require.False(t, res.OK)
	assert.Equal(t, "Invalid email or password", res.Message)

	assert.Equal(t, session.StateAnonymous, sess.State())
	token, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestRestoreResumesPersistedSession(t *testing.T) {
	sess, creds, repo := newSession(t)
	sess.Restore(context.Background())
	require.True(t, sess.Login(context.Background(), devserver.SeedEmployerEmail, devserver.SeedPassword).OK)

	// A second store over the same credentials stands in for a restart.
	fresh := session.NewStore(repo, creds)
	fresh.Restore(context.Background())

	assert.Equal(t, session.StateAuthenticated, fresh.State())
	assert.True(t, fresh.IsEmployer())
	require.NotNil(t, fresh.Identity())
	assert.Equal(t, devserver.SeedEmployerEmail, fresh.Identity().Email)
}

func TestRestoreDiscardsRejectedCredential(t *testing.T) {
	sess, creds, _ := newSession(t)
	require.NoError(t, creds.SetToken("not-a-valid-token"))

	sess.Restore(context.Background())

	assert.Equal(t, session.StateAnonymous, sess.State())
	token, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, token, "rejected credential must be discarded")
}

func TestLogout(t *testing.T) {
	sess, creds, _ := newSession(t)
	sess.Restore(context.Background())
	require.True(t, sess.Login(context.Background(), devserver.SeedCandidateEmail, devserver.SeedPassword).OK)

	sess.Logout()

	assert.Equal(t, session.StateAnonymous, sess.State())
	assert.Nil(t, sess.Identity())
	token, err := creds.Token()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Logging out twice is harmless.
	sess.Logout()
	assert.Equal(t, session.StateAnonymous, sess.State())
}

func TestRegisterEmployerAuthenticatesAndGates(t *testing.T) {
	sess, _, _ := newSession(t)
	sess.Restore(context.Background())

	res := sess.Register(context.Background(), repository.RegisterPayload{
		Name:     "Priya Nair",
		Email:    "priya@southdesk.test",
		Password: "another-secret-1",
		Company:  "SouthDesk BPO",
	}, domain.AccountKindEmployer)
	require.True(t, res.OK, res.Message)
	assert.True(t, sess.IsEmployer())

	d := guard.Authorize(domain.RoleEmployer, sess.Snapshot())
	assert.Equal(t, guard.Allow, d.Verdict)

	d = guard.Authorize(domain.RoleAdmin, sess.Snapshot())
	assert.Equal(t, guard.Deny, d.Verdict)
	assert.Equal(t, "/employer/dashboard", d.Redirect)
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	sess, _, _ := newSession(t)
	sess.Restore(context.Background())

	res := sess.Register(context.Background(), repository.RegisterPayload{
		Name:     "Imposter",
		Email:    devserver.SeedCandidateEmail,
		Password: "whatever-12345",
	}, domain.AccountKindCandidate)
	require.False(t, res.OK)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, session.StateAnonymous, sess.State())
}

func TestRegisterRejectsUnknownKind(t *testing.T) {
	sess, _, _ := newSession(t)
	sess.Restore(context.Background())

	res := sess.Register(context.Background(), repository.RegisterPayload{}, domain.AccountKind("manager"))
	assert.False(t, res.OK)
	assert.Equal(t, session.StateAnonymous, sess.State())
}

func TestInjectIdentity(t *testing.T) {
	sess, creds, _ := newSession(t)
	sess.Restore(context.Background())

	err := sess.InjectIdentity(domain.Identity{ID: 9, Role: "SUPERUSER"}, "tok")
	assert.Error(t, err, "invalid role must be refused")

	err = sess.InjectIdentity(domain.Identity{ID: 9, Role: domain.RoleCandidate}, "")
	assert.Error(t, err, "empty token must be refused")
	assert.Equal(t, session.StateAnonymous, sess.State())

	err = sess.InjectIdentity(domain.Identity{ID: 9, Name: "Asha", Role: domain.RoleCandidate}, "tok-inline")
	require.NoError(t, err)
	assert.True(t, sess.IsCandidate())

	token, readErr := creds.Token()
	require.NoError(t, readErr)
	assert.Equal(t, "tok-inline", token)
}
