package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bpohire/portal/internal/domain"
)

// AuthResponse is the login/registration payload: the credential token plus
// the identity fields flattened alongside it.
type AuthResponse struct {
	Token string `json:"token"`
	domain.Identity
}

// RegisterPayload carries the registration form. Company is only meaningful
// for employer accounts.
type RegisterPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
}

func (r *Repository) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	resp := &AuthResponse{}
	if err := r.client.Do(ctx, http.MethodPost, "/auth/login", nil, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (r *Repository) Register(ctx context.Context, payload RegisterPayload, kind domain.AccountKind) (*AuthResponse, error) {
	resp := &AuthResponse{}
	path := fmt.Sprintf("/auth/register/%s", kind)
	if err := r.client.Do(ctx, http.MethodPost, path, nil, payload, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Verify exchanges the stored credential for the identity it belongs to. The
// bearer header comes from the credential store via the transport layer.
func (r *Repository) Verify(ctx context.Context) (*domain.Identity, error) {
	identity := &domain.Identity{}
	if err := r.client.Do(ctx, http.MethodGet, "/auth/verify", nil, nil, identity); err != nil {
		return nil, err
	}
	return identity, nil
}
