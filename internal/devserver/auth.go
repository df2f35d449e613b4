package devserver

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bpohire/portal/internal/domain"
)

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type accountCtxKey struct{}

type authPayload struct {
	Token string `json:"token"`
	domain.Identity
}

func (s *Server) issueToken(a *account) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authClaims{
		Role: string(a.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(a.ID, 10),
		},
	})
	return token.SignedString(s.secret)
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			s.writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims := &authClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		})
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		id, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		s.store.mu.Lock()
		a, ok := s.store.accounts[id]
		s.store.mu.Unlock()
		if !ok || a.Blocked {
			s.writeError(w, http.StatusUnauthorized, "account unavailable")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountCtxKey{}, a)))
	})
}

func (s *Server) requireRole(role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a := r.Context().Value(accountCtxKey{}).(*account)
			if string(a.Role) != role {
				s.writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := s.readJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	s.store.mu.Lock()
	a := s.store.accountByEmail(req.Email)
	s.store.mu.Unlock()

	if a == nil || bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)) != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}
	if a.Blocked {
		s.writeError(w, http.StatusForbidden, "This account has been blocked")
		return
	}

	token, err := s.issueToken(a)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.writeJSON(w, http.StatusOK, authPayload{Token: token, Identity: a.identity()})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	kind := domain.AccountKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		s.writeError(w, http.StatusBadRequest, "unknown account kind")
		return
	}

	var req struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Phone    string `json:"phone"`
		Company  string `json:"company"`
	}
	if err := s.readJSON(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid registration payload")
		return
	}
	if kind == domain.AccountKindEmployer && req.Company == "" {
		s.writeError(w, http.StatusBadRequest, "company name is required for employer accounts")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	s.store.mu.Lock()
	if s.store.accountByEmail(req.Email) != nil {
		s.store.mu.Unlock()
		s.writeError(w, http.StatusBadRequest, "An account with this email already exists")
		return
	}
	a := &account{
		ID:           s.store.id(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		PasswordHash: string(hash),
		Role:         kind.Role(),
		// Employers go live only after admin approval; their account still
		// works immediately.
		Approved:  kind == domain.AccountKindCandidate,
		CreatedAt: time.Now(),
	}
	s.store.accounts[a.ID] = a
	s.store.mu.Unlock()

	token, err := s.issueToken(a)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.writeJSON(w, http.StatusOK, authPayload{Token: token, Identity: a.identity()})
}

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	a := r.Context().Value(accountCtxKey{}).(*account)
	s.writeJSON(w, http.StatusOK, a.identity())
}
