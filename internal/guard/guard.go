// Package guard decides whether the current session may enter a role-gated
// view, and where to send it otherwise.
package guard

import (
	"github.com/bpohire/portal/internal/domain"
	"github.com/bpohire/portal/internal/session"
)

type Verdict int

const (
	// Pending means the session bootstrap has not finished; render a neutral
	// loading state instead of deciding. Prevents the flash-redirect of an
	// already-authenticated operator on reload.
	Pending Verdict = iota
	Allow
	Deny
)

type Decision struct {
	Verdict  Verdict
	Redirect string
}

const LoginPath = "/login"

// Authorize gates a view requiring the given role. Anonymous sessions go to
// login; authenticated sessions with the wrong role go to their own
// dashboard, never an error page.
func Authorize(required domain.Role, snap session.Snapshot) Decision {
	switch snap.State {
	case session.StateUnknown:
		return Decision{Verdict: Pending}
	case session.StateAnonymous:
		return Decision{Verdict: Deny, Redirect: LoginPath}
	}

	if snap.Identity == nil {
		return Decision{Verdict: Deny, Redirect: LoginPath}
	}
	if snap.Identity.Role != required {
		return Decision{Verdict: Deny, Redirect: DashboardPath(snap.Identity.Role)}
	}
	return Decision{Verdict: Allow}
}

func DashboardPath(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "/admin/dashboard"
	case domain.RoleEmployer:
		return "/employer/dashboard"
	case domain.RoleCandidate:
		return "/candidate/dashboard"
	default:
		return "/"
	}
}
