package handler

import (
	"context"

	"github.com/deppfellow/ecoleta/internal/dto"
	"github.com/deppfellow/ecoleta/internal/errs"
	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/deppfellow/ecoleta/internal/server"
	"github.com/deppfellow/ecoleta/internal/service"
	"github.com/labstack/echo/v4"
)

// PointService is what PointHandler needs from the service layer.
type PointService interface {
	List(ctx context.Context, filter model.PointFilter) ([]model.Point, error)
	Get(ctx context.Context, id int64) (*model.PointDetail, error)
	Register(ctx context.Context, in service.RegisterPointInput) (*model.Point, error)
}

// PointHandler serves /points.
type PointHandler struct {
	Handler
	points PointService
}

func NewPointHandler(s *server.Server, points PointService) *PointHandler {
	return &PointHandler{
		Handler: NewHandler(s),
		points:  points,
	}
}

// ListPoints handles GET /points?city=&uf=&items=.
func (h *PointHandler) ListPoints(c echo.Context, req *dto.ListPointsRequest) ([]dto.PointResponse, error) {
	points, err := h.points.List(c.Request().Context(), req.Filter())
	if err != nil {
		return nil, err
	}

	return dto.NewPointResponses(points, h.server.Config.Server.PublicURL), nil
}

// GetPoint handles GET /points/:id.
func (h *PointHandler) GetPoint(c echo.Context, req *dto.GetPointRequest) (dto.PointDetailResponse, error) {
	detail, err := h.points.Get(c.Request().Context(), req.ID)
	if err != nil {
		return dto.PointDetailResponse{}, err
	}

	return dto.NewPointDetailResponse(*detail, h.server.Config.Server.PublicURL), nil
}

// CreatePoint handles the multipart POST /points. The text fields arrive
// validated in req; the image is read here from the "image" part.
func (h *PointHandler) CreatePoint(c echo.Context, req *dto.CreatePointRequest) (dto.PointResponse, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return dto.PointResponse{}, errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field: "image",
			Error: "is required",
		}}, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return dto.PointResponse{}, err
	}
	defer file.Close()

	point, err := h.points.Register(c.Request().Context(), service.RegisterPointInput{
		Point:     req.ToModel(),
		ItemIDs:   req.ItemIDs(),
		ImageName: fileHeader.Filename,
		Image:     file,
	})
	if err != nil {
		return dto.PointResponse{}, err
	}

	return dto.NewPointResponse(*point, h.server.Config.Server.PublicURL), nil
}
