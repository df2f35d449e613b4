package domain

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleEmployer  Role = "EMPLOYER"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// AccountKind is the role a visitor picks at registration. Admins are
// provisioned out of band and can never be registered.
type AccountKind string

const (
	AccountKindCandidate AccountKind = "candidate"
	AccountKindEmployer  AccountKind = "employer"
)

func (k AccountKind) Valid() bool {
	return k == AccountKindCandidate || k == AccountKindEmployer
}

func (k AccountKind) Role() Role {
	if k == AccountKindEmployer {
		return RoleEmployer
	}
	return RoleCandidate
}

// Identity is the authenticated user's profile as the backend reports it.
// The credential token is held by the credential store, not here.
type Identity struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
