package hr

import (
	"context"
	"fmt"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Contract is an employment contract tied to an employee.
type Contract struct {
	ID           int     `json:"id,omitempty"`
	EmployeeID   int     `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ContractType string  `json:"contract_type"`
	StartDate    Date    `json:"start_date"`
	EndDate      *Date   `json:"end_date,omitempty"`
	Salary       float64 `json:"salary"`
	Status       string  `json:"status,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

type ContractService struct {
	client *httpapi.Client
}

func NewContractService(client *httpapi.Client) *ContractService {
	return &ContractService{client: client}
}

func (s *ContractService) List(ctx context.Context) ([]Contract, error) {
	var contracts []Contract
	if err := s.client.Get(ctx, httpapi.RouteContracts, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

func (s *ContractService) Get(ctx context.Context, id int) (*Contract, error) {
	var contract Contract
	if err := s.client.Get(ctx, fmt.Sprintf("%s%d", httpapi.RouteContractDetail, id), &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

func (s *ContractService) Create(ctx context.Context, contract Contract) (*Contract, error) {
	var created Contract
	if err := s.client.Post(ctx, httpapi.RouteContracts, contract, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ContractService) Update(ctx context.Context, id int, contract Contract) (*Contract, error) {
	var updated Contract
	if err := s.client.Put(ctx, fmt.Sprintf("%s%d", httpapi.RouteContracts, id), contract, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ContractService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s%d", httpapi.RouteContracts, id), nil)
}
