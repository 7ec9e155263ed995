package hr

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Position is a job title an employee can hold.
type Position struct {
	ID           int    `json:"id,omitempty"`
	PositionCode string `json:"position_code"`
	Title        string `json:"title"`
}

type PositionService struct {
	client *httpapi.Client
}

func NewPositionService(client *httpapi.Client) *PositionService {
	return &PositionService{client: client}
}

func (s *PositionService) List(ctx context.Context) ([]Position, error) {
	var positions []Position
	if err := s.client.Get(ctx, httpapi.RoutePositions, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (s *PositionService) Create(ctx context.Context, position Position) (*Position, error) {
	var created Position
	if err := s.client.Post(ctx, httpapi.RoutePositions, position, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type positionUpdate struct {
	Title string `json:"title"`
}

func (s *PositionService) Update(ctx context.Context, id int, title string) (*Position, error) {
	var updated Position
	if err := s.client.Put(ctx, fmt.Sprintf("%s%d", httpapi.RoutePositions, id), positionUpdate{Title: title}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PositionService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s%d", httpapi.RoutePositions, id), nil)
}
