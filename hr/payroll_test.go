package hr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-hr-console/hr"
	"github.com/jrsteele09/go-hr-console/httpapi"
	"github.com/jrsteele09/go-hr-console/session/storefakes"
)

func newClient(t *testing.T, handler http.Handler) *httpapi.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := storefakes.NewFakeStore()
	require.NoError(t, store.Save("tok", "refresh", nil))

	client, err := httpapi.NewClient(server.URL, store)
	require.NoError(t, err)
	return client
}

func TestNetSalary(t *testing.T) {
	p := hr.Payroll{BaseSalary: 1200, Allowance: 150, Deduction: 75.5}
	require.InDelta(t, 1274.5, p.NetSalary(), 0.0001)

	// No allowance or deduction: net equals base.
	require.InDelta(t, 1200, hr.Payroll{BaseSalary: 1200}.NetSalary(), 0.0001)
}

func TestPayrollListSendsMonthFilter(t *testing.T) {
	var gotMonth string
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMonth = r.URL.Query().Get("month")
		json.NewEncoder(w).Encode([]map[string]any{{
			"id":            3,
			"employee_id":   7,
			"employee_name": "Alice",
			"month":         "2025-02-01",
			"base_salary":   1000.0,
			"allowance":     100.0,
			"deduction":     50.0,
			"net_salary":    1050.0,
		}})
	}))

	month := hr.NewDate(2025, time.February, 1)
	payrolls, err := hr.NewPayrollService(client).List(context.Background(), &month)
	require.NoError(t, err)
	require.Equal(t, "2025-02-01", gotMonth)

	require.Len(t, payrolls, 1)
	p := payrolls[0]
	require.Equal(t, "Alice", p.EmployeeName)
	require.Equal(t, "2025-02-01", p.Month.String())
	require.InDelta(t, p.Net, p.NetSalary(), 0.0001)
}

func TestEmployeeWireFieldNames(t *testing.T) {
	// The backend keeps PascalCase column names on the wire; make sure the
	// create payload uses them, not Go-style names.
	var payload map[string]any
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	}))

	employee := hr.Employee{
		EmployeeID:   "E0001",
		EmployeeName: "Alice Nguyen",
		DepartmentID: "D01",
		PositionID:   "P01",
		ContractID:   "C01",
		Salary:       1500,
		DateOfBirth:  hr.NewDate(1990, time.June, 15),
	}
	_, err := hr.NewEmployeeService(client).Create(context.Background(), employee)
	require.NoError(t, err)

	require.Equal(t, "E0001", payload["EmployeeID"])
	require.Equal(t, "Alice Nguyen", payload["EmployeeName"])
	require.Equal(t, "1990-06-15", payload["DateOfBirth"])
	require.NotContains(t, payload, "employee_id")
}

func TestDateUnmarshalAcceptsDatetime(t *testing.T) {
	var d hr.Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-02-01T08:30:00"`), &d))
	require.Equal(t, "2025-02-01", d.String())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	require.True(t, d.IsZero())
}
