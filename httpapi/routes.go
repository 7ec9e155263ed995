package httpapi

// API endpoint path constants, relative to the configured base URL.
// All backend paths are defined here to ensure consistency and prevent typos
const (
	// Auth endpoints
	RouteAuthLogin          = "/auth/login"
	RouteAuthLogout         = "/auth/logout"
	RouteAuthRefreshToken   = "/auth/refresh_token"
	RouteAuthSignup         = "/auth/signup"
	RouteAuthChangePassword = "/auth/change-password"
	RouteAuthUsers          = "/auth/users/"

	// Employee endpoints
	RouteEmployees         = "/employee/"
	RouteEmployeeCount     = "/employee/count/"
	RouteEmployeeImport    = "/employees/import"
	RouteEmployeePositions = "/employee/positions/"

	// Contract endpoints (nested under the employee resource)
	RouteContracts      = "/employee/contracts/"
	RouteContractDetail = "/employee/contracts/detail/"

	// Org structure endpoints
	RouteDepartments     = "/department/"
	RouteDepartmentCount = "/department/count/"
	RoutePositions       = "/position/"

	// Payroll / attendance endpoints
	RoutePayroll    = "/payroll/"
	RouteAttendance = "/attendance/"

	// Education endpoints
	RouteEducation       = "/education/"
	RouteEducationImport = "/education/import"
)
