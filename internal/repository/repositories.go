package repository

import (
	"github.com/deppfellow/ecoleta/internal/server"
)

// Repositories groups every repository so services receive a single value.
type Repositories struct {
	Points *PointRepository
	Items  *ItemRepository
}

// NewRepositories builds the repositories over the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Points: NewPointRepository(s.DB.Pool),
		Items:  NewItemRepository(s.DB.Pool),
	}
}
