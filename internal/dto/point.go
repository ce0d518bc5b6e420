package dto

import (
	"strings"

	"github.com/deppfellow/ecoleta/internal/model"
	"github.com/deppfellow/ecoleta/internal/validation"
	"github.com/shopspring/decimal"
)

// ListPointsRequest is the query of GET /points.
type ListPointsRequest struct {
	City  string `query:"city" validate:"required"`
	UF    string `query:"uf" validate:"required,len=2,alpha"`
	Items string `query:"items" validate:"required,item_ids"`
}

func (r *ListPointsRequest) Validate() error {
	r.UF = strings.ToUpper(strings.TrimSpace(r.UF))
	return validation.Struct(r)
}

// Filter converts the validated query into a model.PointFilter.
func (r *ListPointsRequest) Filter() model.PointFilter {
	ids, _ := model.ParseItemIDs(r.Items)
	return model.PointFilter{
		City:    r.City,
		UF:      r.UF,
		ItemIDs: ids,
	}
}

// GetPointRequest is the path of GET /points/:id.
type GetPointRequest struct {
	ID int64 `param:"id" validate:"gt=0"`
}

func (r *GetPointRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePointRequest is the multipart form of POST /points, minus the image
// file which the handler reads separately.
//
// Coordinates are bound as strings and parsed into decimals during
// validation so no precision is lost before they reach the NUMERIC columns.
type CreatePointRequest struct {
	Name      string `form:"name" validate:"required,max=255"`
	Email     string `form:"email" validate:"required,email,max=255"`
	Whatsapp  string `form:"whatsapp" validate:"required,max=32"`
	Latitude  string `form:"latitude" validate:"required,latitude"`
	Longitude string `form:"longitude" validate:"required,longitude"`
	City      string `form:"city" validate:"required,max=255"`
	UF        string `form:"uf" validate:"required,len=2,alpha"`
	Items     string `form:"items" validate:"required,item_ids"`

	latitude  decimal.Decimal
	longitude decimal.Decimal
}

func (r *CreatePointRequest) Validate() error {
	r.UF = strings.ToUpper(strings.TrimSpace(r.UF))
	if err := validation.Struct(r); err != nil {
		return err
	}

	var err error
	if r.latitude, err = decimal.NewFromString(strings.TrimSpace(r.Latitude)); err != nil {
		return validation.CustomValidationErrors{{Field: "latitude", Message: "must be a valid latitude"}}
	}
	if r.longitude, err = decimal.NewFromString(strings.TrimSpace(r.Longitude)); err != nil {
		return validation.CustomValidationErrors{{Field: "longitude", Message: "must be a valid longitude"}}
	}

	return nil
}

// ToModel builds the point to insert. Image is filled in by the service
// once the upload is stored.
func (r *CreatePointRequest) ToModel() model.Point {
	return model.Point{
		Name:      r.Name,
		Email:     r.Email,
		Whatsapp:  r.Whatsapp,
		Latitude:  r.latitude,
		Longitude: r.longitude,
		City:      r.City,
		UF:        r.UF,
	}
}

// ItemIDs returns the parsed items field.
func (r *CreatePointRequest) ItemIDs() model.ItemIDs {
	ids, _ := model.ParseItemIDs(r.Items)
	return ids
}

// PointResponse is a point as returned by every /points endpoint.
type PointResponse struct {
	ID        int64   `json:"id"`
	Image     string  `json:"image"`
	ImageURL  string  `json:"image_url"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
}

func NewPointResponse(p model.Point, publicURL string) PointResponse {
	return PointResponse{
		ID:        p.ID,
		Image:     p.Image,
		ImageURL:  ImageURL(publicURL, p.Image),
		Name:      p.Name,
		Email:     p.Email,
		Whatsapp:  p.Whatsapp,
		Latitude:  p.Latitude.InexactFloat64(),
		Longitude: p.Longitude.InexactFloat64(),
		City:      p.City,
		UF:        p.UF,
	}
}

// NewPointResponses never returns nil so an empty listing encodes as [].
func NewPointResponses(points []model.Point, publicURL string) []PointResponse {
	out := make([]PointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, NewPointResponse(p, publicURL))
	}
	return out
}

// PointItemResponse is one accepted item in the point detail.
type PointItemResponse struct {
	Title string `json:"title"`
}

// PointDetailResponse is the body of GET /points/:id.
type PointDetailResponse struct {
	Point PointResponse       `json:"serializedPoint"`
	Items []PointItemResponse `json:"items"`
}

func NewPointDetailResponse(d model.PointDetail, publicURL string) PointDetailResponse {
	items := make([]PointItemResponse, 0, len(d.ItemTitles))
	for _, title := range d.ItemTitles {
		items = append(items, PointItemResponse{Title: title})
	}

	return PointDetailResponse{
		Point: NewPointResponse(d.Point, publicURL),
		Items: items,
	}
}
