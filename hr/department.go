package hr

import (
	"context"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Department is an organizational unit.
type Department struct {
	DepartmentID   string `json:"DepartmentID"`
	DepartmentName string `json:"DepartmentName"`
	Description    string `json:"Description,omitempty"`
	Location       string `json:"Location,omitempty"`
	PhoneNumber    string `json:"PhoneNumber,omitempty"`
}

type DepartmentService struct {
	client *httpapi.Client
}

func NewDepartmentService(client *httpapi.Client) *DepartmentService {
	return &DepartmentService{client: client}
}

func (s *DepartmentService) List(ctx context.Context) ([]Department, error) {
	var departments []Department
	if err := s.client.Get(ctx, httpapi.RouteDepartments, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (s *DepartmentService) Count(ctx context.Context) (int, error) {
	var resp countResponse
	if err := s.client.Get(ctx, httpapi.RouteDepartmentCount, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (s *DepartmentService) Create(ctx context.Context, department Department) (*Department, error) {
	var created Department
	if err := s.client.Post(ctx, httpapi.RouteDepartments, department, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *DepartmentService) Update(ctx context.Context, id string, department Department) (*Department, error) {
	var updated Department
	if err := s.client.Put(ctx, httpapi.RouteDepartments+id, department, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, httpapi.RouteDepartments+id, nil)
}
