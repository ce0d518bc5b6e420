package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/deppfellow/ecoleta/internal/errs"
	"github.com/deppfellow/ecoleta/internal/lib/job"
	"github.com/deppfellow/ecoleta/internal/lib/upload"
	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/deppfellow/ecoleta/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// PointStore is the repository surface PointService needs.
type PointStore interface {
	List(ctx context.Context, filter model.PointFilter) ([]model.Point, error)
	GetByID(ctx context.Context, id int64) (*model.Point, error)
	ListItemTitles(ctx context.Context, pointID int64) ([]string, error)
	CreateWithItems(ctx context.Context, point model.Point, itemIDs model.ItemIDs) (*model.Point, error)
}

// ImageStore persists uploaded images. *upload.Storage implements it.
type ImageStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(name string) error
}

// TaskEnqueuer pushes background tasks. *asynq.Client implements it.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// enqueueTimeout bounds the post-commit enqueue so a slow Redis does not
// hold the registration response.
const enqueueTimeout = 3 * time.Second

var codePointNotFound = "POINT_NOT_FOUND"

// PointService lists, looks up and registers collection points.
type PointService struct {
	points PointStore
	images ImageStore
	jobs   TaskEnqueuer
}

func NewPointService(points PointStore, images ImageStore, jobs TaskEnqueuer) *PointService {
	return &PointService{
		points: points,
		images: images,
		jobs:   jobs,
	}
}

// List returns the points matching filter, ordered by id.
func (s *PointService) List(ctx context.Context, filter model.PointFilter) ([]model.Point, error) {
	return s.points.List(ctx, filter)
}

// Get returns a point with the titles of the items it accepts. An unknown
// id is a 400 POINT_NOT_FOUND error.
func (s *PointService) Get(ctx context.Context, id int64) (*model.PointDetail, error) {
	point, err := s.points.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPointNotFound) {
			return nil, errs.NewBadRequestError("Point not found.", true, &codePointNotFound, nil, nil)
		}
		return nil, err
	}

	titles, err := s.points.ListItemTitles(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.PointDetail{
		Point:      *point,
		ItemTitles: titles,
	}, nil
}

// RegisterPointInput is everything needed to register a point.
type RegisterPointInput struct {
	Point     model.Point
	ItemIDs   model.ItemIDs
	ImageName string
	Image     io.Reader
}

// Register stores the image, then inserts the point and its item
// associations atomically. If the insert fails the stored image is removed
// again. After commit a confirmation email job is enqueued; failing to
// enqueue is logged and does not fail the registration.
func (s *PointService) Register(ctx context.Context, in RegisterPointInput) (*model.Point, error) {
	logger := zerolog.Ctx(ctx)

	image, err := s.images.Save(in.ImageName, in.Image)
	if err != nil {
		var typeErr *upload.UnsupportedTypeError
		switch {
		case errors.As(err, &typeErr):
			return nil, imageError("must be one of: " + strings.Join(typeErr.Allowed, ", "))
		case errors.Is(err, upload.ErrEmptyFile):
			return nil, imageError("must not be empty")
		}
		return nil, fmt.Errorf("storing image: %w", err)
	}

	point := in.Point
	point.Image = image

	created, err := s.points.CreateWithItems(ctx, point, in.ItemIDs)
	if err != nil {
		if rmErr := s.images.Remove(image); rmErr != nil {
			logger.Error().Err(rmErr).Str("image", image).Msg("failed to remove image of rolled back point")
		}
		return nil, err
	}

	logger.Info().
		Int64("point_id", created.ID).
		Str("items", in.ItemIDs.String()).
		Msg("point registered")

	s.enqueueConfirmation(ctx, created)

	return created, nil
}

func imageError(msg string) error {
	return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
		Field: "image",
		Error: msg,
	}}, nil)
}

func (s *PointService) enqueueConfirmation(ctx context.Context, p *model.Point) {
	logger := zerolog.Ctx(ctx)

	task, err := job.NewPointRegisteredTask(job.PointRegisteredPayload{
		PointID: p.ID,
		To:      p.Email,
		Name:    p.Name,
		City:    p.City,
		UF:      p.UF,
	})
	if err != nil {
		logger.Error().Err(err).Int64("point_id", p.ID).Msg("failed to build point registered task")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, enqueueTimeout)
	defer cancel()

	info, err := s.jobs.EnqueueContext(ctx, task)
	if err != nil {
		logger.Warn().Err(err).Int64("point_id", p.ID).Msg("failed to enqueue point registered task")
		return
	}

	logger.Debug().Str("task_id", info.ID).Int64("point_id", p.ID).Msg("point registered task enqueued")
}
