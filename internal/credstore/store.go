// Package credstore persists the bearer credential (and a display-only
// identity snapshot) across portal restarts. The store is the single source
// of truth for the token: the transport layer re-reads it at send time rather
// than caching it, so a concurrent logout is always respected.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bpohire/portal/internal/domain"
)

// Store holds the persisted credential. Token returns "" when no credential
// is stored; that is not an error. The snapshot is a display hint only and
// must never be used for an authorization decision.
type Store interface {
	Token() (string, error)
	SetToken(token string) error
	Snapshot() (*domain.Identity, error)
	SetSnapshot(identity *domain.Identity) error
	// Clear removes both the token and the snapshot. Clearing an already
	// empty store is a no-op.
	Clear() error
}

type fileState struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

// FileStore keeps the credential in a JSON file, the single-user analogue of
// browser local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return "", err
	}
	return st.Token, nil
}

func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return err
	}
	st.Token = token
	return s.write(st)
}

func (s *FileStore) Snapshot() (*domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return nil, err
	}
	return st.Identity, nil
}

func (s *FileStore) SetSnapshot(identity *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.read()
	if err != nil {
		return err
	}
	st.Identity = identity
	return s.write(st)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (s *FileStore) read() (*fileState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fileState{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	st := &fileState{}
	if err := json.Unmarshal(data, st); err != nil {
		// A corrupt file is treated as no credential rather than wedging the
		// portal in an unrecoverable state.
		return &fileState{}, nil
	}
	return st, nil
}

func (s *FileStore) write(st *fileState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
