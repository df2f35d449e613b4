package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/guard"
	"github.com/bpohire/portal/internal/session"
)

func snap(state session.State, role domain.Role) session.Snapshot {
	s := session.Snapshot{State: state}
	if state == session.StateAuthenticated {
		s.Identity = &domain.Identity{ID: 1, Role: role}
	}
	return s
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		required domain.Role
		snapshot session.Snapshot
		verdict  guard.Verdict
		redirect string
	}{
		{
			name:     "bootstrap not finished suspends the decision",
			required: domain.RoleCandidate,
			snapshot: snap(session.StateUnknown, ""),
			verdict:  guard.Pending,
		},
		{
			name:     "anonymous goes to login",
			required: domain.RoleEmployer,
			snapshot: snap(session.StateAnonymous, ""),
			verdict:  guard.Deny,
			redirect: "/login",
		},
		{
			name:     "role mismatch goes to own dashboard",
			required: domain.RoleAdmin,
			snapshot: snap(session.StateAuthenticated, domain.RoleEmployer),
			verdict:  guard.Deny,
			redirect: "/employer/dashboard",
		},
		{
			name:     "matching role is allowed",
			required: domain.RoleCandidate,
			snapshot: snap(session.StateAuthenticated, domain.RoleCandidate),
			verdict:  guard.Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := guard.Authorize(tt.required, tt.snapshot)
			assert.Equal(t, tt.verdict, d.Verdict)
			assert.Equal(t, tt.redirect, d.Redirect)
		})
	}
}

func TestAuthenticatedWithoutIdentityIsDenied(t *testing.T) {
	// An authenticated snapshot with no identity cannot happen through the
	// store, but the guard must still fail closed if handed one.
	d := guard.Authorize(domain.RoleAdmin, session.Snapshot{State: session.StateAuthenticated})
	assert.Equal(t, guard.Deny, d.Verdict)
	assert.Equal(t, "/login", d.Redirect)
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", guard.DashboardPath(domain.RoleAdmin))
	assert.Equal(t, "/employer/dashboard", guard.DashboardPath(domain.RoleEmployer))
	assert.Equal(t, "/candidate/dashboard", guard.DashboardPath(domain.RoleCandidate))
	assert.Equal(t, "/", guard.DashboardPath("SOMETHING_ELSE"))
}
