package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jrsteele09/go-hr-console/hr"
)

const (
	employeeSheet = "Employees"
	payrollSheet  = "Payroll"
)

var employeeHeaders = []string{
	"EmployeeID", "EmployeeName", "PositionID", "DepartmentID", "ContractID",
	"Salary", "Gender", "DateOfBirth", "PlaceOfBirth", "IDNumber", "Phone",
	"Address", "Email", "MaritalStatus", "Ethnicity", "HealthInsurance",
	"SocialInsurance",
}

// WriteEmployeesXLSX renders the employee list screen as a spreadsheet.
func WriteEmployeesXLSX(w io.Writer, employees []hr.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeeSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, employeeSheet, 1, toAnyRow(employeeHeaders)); err != nil {
		return err
	}

	for i, e := range employees {
		row := []any{
			e.EmployeeID, e.EmployeeName, e.PositionID, e.DepartmentID,
			e.ContractID, e.Salary, e.Gender, e.DateOfBirth.String(),
			e.PlaceOfBirth, e.IDNumber, e.Phone, e.Address, e.Email,
			e.MaritalStatus, e.Ethnicity, e.HealthInsurance, e.SocialInsurance,
		}
		if err := writeRow(f, employeeSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

var payrollHeaders = []string{
	"ID", "EmployeeID", "EmployeeName", "Month", "BaseSalary", "Allowance",
	"Deduction", "NetSalary", "Notes",
}

// WritePayrollXLSX renders a payroll run as a spreadsheet. The net salary
// column is recomputed locally so exported numbers always agree with the
// base/allowance/deduction columns beside them.
func WritePayrollXLSX(w io.Writer, payrolls []hr.Payroll) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payrollSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRow(f, payrollSheet, 1, toAnyRow(payrollHeaders)); err != nil {
		return err
	}

	for i, p := range payrolls {
		row := []any{
			p.ID, p.EmployeeID, p.EmployeeName, p.Month.String(),
			p.BaseSalary, p.Allowance, p.Deduction, p.NetSalary(), p.Notes,
		}
		if err := writeRow(f, payrollSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func toAnyRow(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
