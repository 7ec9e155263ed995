package hr

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Employee is a personnel record. The backend keeps the original PascalCase
// column names on the wire.
type Employee struct {
	ID               int     `json:"id,omitempty"`
	EmployeeID       string  `json:"EmployeeID"`
	EmployeeName     string  `json:"EmployeeName"`
	PositionID       string  `json:"PositionID"`
	DepartmentID     string  `json:"DepartmentID"`
	ContractID       string  `json:"ContractID"`
	Salary           float64 `json:"Salary"`
	Gender           string  `json:"Gender,omitempty"`
	DateOfBirth      Date    `json:"DateOfBirth"`
	PlaceOfBirth     string  `json:"PlaceOfBirth"`
	IDNumber         string  `json:"IDNumber"`
	Phone            string  `json:"Phone"`
	Address          string  `json:"Address"`
	Email            string  `json:"Email"`
	MaritalStatus    string  `json:"MaritalStatus,omitempty"`
	Ethnicity        string  `json:"Ethnicity,omitempty"`
	EducationLevelID *string `json:"EducationLevelID,omitempty"`
	IDCardDate       *Date   `json:"IDCardDate,omitempty"`
	IDCardPlace      *string `json:"IDCardPlace,omitempty"`
	HealthInsurance  string  `json:"HealthInsurance"`
	SocialInsurance  string  `json:"SocialInsurance"`
	ProfileImageID   string  `json:"ID_profile_image,omitempty"`
	Hidden           bool    `json:"is_hidden,omitempty"`
}

// EmployeeService owns the employee list/detail/create/update/delete flows.
type EmployeeService struct {
	client *httpapi.Client
}

func NewEmployeeService(client *httpapi.Client) *EmployeeService {
	return &EmployeeService{client: client}
}

func (s *EmployeeService) List(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := s.client.Get(ctx, httpapi.RouteEmployees, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id int) (*Employee, error) {
	var employee Employee
	if err := s.client.Get(ctx, fmt.Sprintf("%s%d", httpapi.RouteEmployees, id), &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Create(ctx context.Context, employee Employee) (*Employee, error) {
	var created Employee
	if err := s.client.Post(ctx, httpapi.RouteEmployees, employee, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *EmployeeService) Update(ctx context.Context, id int, employee Employee) (*Employee, error) {
	var updated Employee
	if err := s.client.Patch(ctx, fmt.Sprintf("%s%d/", httpapi.RouteEmployees, id), employee, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s%d", httpapi.RouteEmployees, id), nil)
}

type countResponse struct {
	Count int `json:"count"`
}

// Count returns the total number of employees for the dashboard cards.
func (s *EmployeeService) Count(ctx context.Context) (int, error) {
	var resp countResponse
	if err := s.client.Get(ctx, httpapi.RouteEmployeeCount, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// ToggleHide flips an employee's hidden flag without deleting the record.
func (s *EmployeeService) ToggleHide(ctx context.Context, id int) error {
	return s.client.Patch(ctx, fmt.Sprintf("%s%d/toggle-hide/", httpapi.RouteEmployees, id), nil, nil)
}

type importRequest struct {
	Employees []Employee `json:"employees"`
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Import bulk-creates employees parsed from a spreadsheet or CSV upload.
func (s *EmployeeService) Import(ctx context.Context, employees []Employee) (*ImportResult, error) {
	var result ImportResult
	if err := s.client.Post(ctx, httpapi.RouteEmployeeImport, importRequest{Employees: employees}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
