package service

import (
	"github.com/deppfellow/ecoleta/internal/lib/job"
	"github.com/deppfellow/ecoleta/internal/repository"
	"github.com/deppfellow/ecoleta/internal/server"
)

// Services groups every service so handlers receive a single value.
type Services struct {
	Points *PointService
	Items  *ItemService
	Job    *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Points: NewPointService(repos.Points, s.Uploads, s.Job.Client),
		Items:  NewItemService(repos.Items),
		Job:    s.Job,
	}, nil
}
