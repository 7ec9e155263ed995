package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jrsteele09/go-hr-console/hr"
	"github.com/jrsteele09/go-hr-console/internal/utils"
)

// RowError ties a parse failure to the 1-based spreadsheet row it came from.
// Imports collect row errors instead of failing the whole file on the first
// bad line.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// ReadEmployeesXLSX parses a bulk employee upload. The first row must be a
// header row using the exported column names; unrecognized columns are
// ignored so users can keep their own notes columns in the sheet.
func ReadEmployeesXLSX(r io.Reader) ([]hr.Employee, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return parseEmployeeRows(rows)
}

// ParseEmployeesCSV parses the CSV variant of the bulk employee upload.
func ParseEmployeesCSV(r io.Reader) ([]hr.Employee, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows handled per-row below

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, record)
	}
	return parseEmployeeRows(rows)
}

func parseEmployeeRows(rows [][]string) ([]hr.Employee, []RowError, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet is empty")
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"EmployeeID", "EmployeeName"} {
		if _, ok := columns[required]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var (
		employees []hr.Employee
		rowErrs   []RowError
	)
	for i, row := range rows[1:] {
		rowNum := i + 2
		employee, err := parseEmployeeRow(columns, row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: rowNum, Err: err})
			continue
		}
		employees = append(employees, employee)
	}
	return employees, rowErrs, nil
}

func parseEmployeeRow(columns map[string]int, row []string) (hr.Employee, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	employee := hr.Employee{
		EmployeeID:      field("EmployeeID"),
		EmployeeName:    field("EmployeeName"),
		PositionID:      field("PositionID"),
		DepartmentID:    field("DepartmentID"),
		ContractID:      field("ContractID"),
		Gender:          field("Gender"),
		PlaceOfBirth:    field("PlaceOfBirth"),
		IDNumber:        field("IDNumber"),
		Phone:           field("Phone"),
		Address:         field("Address"),
		Email:           field("Email"),
		MaritalStatus:   field("MaritalStatus"),
		Ethnicity:       field("Ethnicity"),
		HealthInsurance: field("HealthInsurance"),
		SocialInsurance: field("SocialInsurance"),
	}
	if v := field("EducationLevelID"); v != "" {
		employee.EducationLevelID = utils.Ptr(v)
	}
	if v := field("IDCardPlace"); v != "" {
		employee.IDCardPlace = utils.Ptr(v)
	}
	if employee.EmployeeID == "" {
		return hr.Employee{}, fmt.Errorf("missing EmployeeID")
	}
	if employee.EmployeeName == "" {
		return hr.Employee{}, fmt.Errorf("missing EmployeeName")
	}

	if raw := field("Salary"); raw != "" {
		salary, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return hr.Employee{}, fmt.Errorf("invalid Salary %q", raw)
		}
		employee.Salary = salary
	}

	if raw := field("DateOfBirth"); raw != "" {
		dob, err := parseSheetDate(raw)
		if err != nil {
			return hr.Employee{}, fmt.Errorf("invalid DateOfBirth %q", raw)
		}
		employee.DateOfBirth = dob
	}

	return employee, nil
}

// parseSheetDate accepts both ISO dates and Excel serial date numbers, since
// spreadsheets routinely reformat a date column as a number.
func parseSheetDate(raw string) (hr.Date, error) {
	if d, err := hr.ParseDate(raw); err == nil {
		return d, nil
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return hr.Date{}, fmt.Errorf("not a date: %q", raw)
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return hr.Date{}, err
	}
	return hr.NewDate(t.Year(), t.Month(), t.Day()), nil
}
