package hr

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Payroll is one employee's pay record for a month.
type Payroll struct {
	ID           int     `json:"id,omitempty"`
	EmployeeID   int     `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Month        Date    `json:"month"`
	BaseSalary   float64 `json:"base_salary"`
	Allowance    float64 `json:"allowance"`
	Deduction    float64 `json:"deduction"`
	Net          float64 `json:"net_salary,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// NetSalary derives take-home pay: base plus allowance minus deduction. List
// responses carry the server-computed value in Net; this recomputes it for
// records built locally.
func (p Payroll) NetSalary() float64 {
	return p.BaseSalary + p.Allowance - p.Deduction
}

type PayrollService struct {
	client *httpapi.Client
}

func NewPayrollService(client *httpapi.Client) *PayrollService {
	return &PayrollService{client: client}
}

// List returns payroll records, optionally filtered to one month.
func (s *PayrollService) List(ctx context.Context, month *Date) ([]Payroll, error) {
	path := httpapi.RoutePayroll
	if month != nil {
		path += "?month=" + url.QueryEscape(month.String())
	}
	var payrolls []Payroll
	if err := s.client.Get(ctx, path, &payrolls); err != nil {
		return nil, err
	}
	return payrolls, nil
}

func (s *PayrollService) Get(ctx context.Context, id int) (*Payroll, error) {
	var payroll Payroll
	if err := s.client.Get(ctx, fmt.Sprintf("%s%d", httpapi.RoutePayroll, id), &payroll); err != nil {
		return nil, err
	}
	return &payroll, nil
}

func (s *PayrollService) Create(ctx context.Context, payroll Payroll) (*Payroll, error) {
	var created Payroll
	if err := s.client.Post(ctx, httpapi.RoutePayroll, payroll, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *PayrollService) Update(ctx context.Context, id int, payroll Payroll) (*Payroll, error) {
	var updated Payroll
	if err := s.client.Put(ctx, fmt.Sprintf("%s%d", httpapi.RoutePayroll, id), payroll, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *PayrollService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s%d", httpapi.RoutePayroll, id), nil)
}
