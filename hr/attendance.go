package hr

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jrsteele09/go-hr-console/httpapi"
)

// Attendance statuses the backend accepts.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceLeave   = "leave"
)

// Attendance is one employee's status for one day.
type Attendance struct {
	ID           int    `json:"id,omitempty"`
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	EmployeeCode string `json:"employee_code,omitempty"`
	Department   string `json:"department,omitempty"`
	Date         Date   `json:"date"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}

type AttendanceService struct {
	client *httpapi.Client
}

func NewAttendanceService(client *httpapi.Client) *AttendanceService {
	return &AttendanceService{client: client}
}

// List returns attendance records, optionally filtered to one day.
func (s *AttendanceService) List(ctx context.Context, day *Date) ([]Attendance, error) {
	path := httpapi.RouteAttendance
	if day != nil {
		path += "?date=" + url.QueryEscape(day.String())
	}
	var records []Attendance
	if err := s.client.Get(ctx, path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *AttendanceService) Create(ctx context.Context, record Attendance) (*Attendance, error) {
	var created Attendance
	if err := s.client.Post(ctx, httpapi.RouteAttendance, record, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *AttendanceService) Update(ctx context.Context, id int, record Attendance) (*Attendance, error) {
	var updated Attendance
	if err := s.client.Put(ctx, fmt.Sprintf("%s%d", httpapi.RouteAttendance, id), record, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *AttendanceService) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s%d", httpapi.RouteAttendance, id), nil)
}
