// Package repository exposes the marketplace backend's REST surface as typed
// operations. All durable state lives behind these calls; the portal keeps
// only session and query state locally.
package repository

import (
	"github.com/bpohire/portal/internal/transport"
)

type Repository struct {
	client *transport.Client
}

func NewRepository(client *transport.Client) *Repository {
	return &Repository{
		client: client,
	}
}
