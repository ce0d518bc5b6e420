package dto

import "github.com/deppfellow/ecoleta/internal/model"

// ListItemsRequest is the empty input of GET /items.
type ListItemsRequest struct{}

func (r *ListItemsRequest) Validate() error {
	return nil
}

// ItemResponse is one entry of GET /items.
type ItemResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

func NewItemResponses(items []model.Item, publicURL string) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemResponse{
			ID:       item.ID,
			Title:    item.Title,
			ImageURL: ImageURL(publicURL, item.Image),
		})
	}
	return out
}
