package hr

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// EducationLevel is a qualification attached to an employee.
type EducationLevel struct {
	ID            int    `json:"id,omitempty"`
	EmployeeID    int    `json:"employee_id,omitempty"`
	LevelCode     string `json:"level_code"`
	LevelName     string `json:"level_name"`
	Institution   string `json:"institution,omitempty"`
	Major         string `json:"major,omitempty"`
	GraduatedYear int    `json:"graduated_year,omitempty"`
}

type EducationService struct {
	client *httpapi.Client
}

func NewEducationService(client *httpapi.Client) *EducationService {
	return &EducationService{client: client}
}

// List returns education levels; a zero employeeID lists all of them.
func (s *EducationService) List(ctx context.Context, employeeID int) ([]EducationLevel, error) {
	path := httpapi.RouteEducation
	if employeeID > 0 {
		path = fmt.Sprintf("%s%d", httpapi.RouteEducation, employeeID)
	}
	var levels []EducationLevel
	if err := s.client.Get(ctx, path, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (s *EducationService) Create(ctx context.Context, employeeID int, level EducationLevel) (*EducationLevel, error) {
	var created EducationLevel
	if err := s.client.Post(ctx, fmt.Sprintf("%s%d", httpapi.RouteEducation, employeeID), level, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *EducationService) Update(ctx context.Context, id int, level EducationLevel) (*EducationLevel, error) {
	var updated EducationLevel
	if err := s.client.Put(ctx, fmt.Sprintf("%s%d", httpapi.RouteEducation, id), level, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *EducationService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s%d", httpapi.RouteEducation, id), nil)
}

type educationImportRequest struct {
	Levels []EducationLevel `json:"levels"`
}

// Import bulk-creates education levels parsed from an upload.
func (s *EducationService) Import(ctx context.Context, levels []EducationLevel) (*ImportResult, error) {
	var result ImportResult
	if err := s.client.Post(ctx, httpapi.RouteEducationImport, educationImportRequest{Levels: levels}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
