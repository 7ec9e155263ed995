package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jrsteele09/go-hr-console/auth"
	"github.com/jrsteele09/go-hr-console/export"
	"github.com/jrsteele09/go-hr-console/guard"
	"github.com/jrsteele09/go-hr-console/hr"
	"github.com/jrsteele09/go-hr-console/httpapi"
	"github.com/jrsteele09/go-hr-console/internal/config"
	"github.com/jrsteele09/go-hr-console/session"
)

type console struct {
	config config.Config
	store  session.Store
	client *httpapi.Client
	auth   *auth.Service
}

func (c *console) usage() {
	displayAppname(c.config.GetAppName())
	fmt.Print(`Usage: hrconsole <command> [flags]

Commands:
  login        Sign in (-user, -pass)
  logout       Sign out and clear stored credentials
  whoami       Show the signed-in account
  employees    List employees
  departments  List departments
  positions    List positions
  contracts    List contracts
  payroll      List payroll records (-month YYYY-MM-DD)
  attendance   List attendance records (-date YYYY-MM-DD)
  export       Export a screen to .xlsx (-screen employees|payroll, -out FILE)
  admin        Account manager (admin only): list, verify ID, delete ID
`)
}

func (c *console) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.auth.Logout(ctx)
	case "whoami":
		return c.whoami()
	case "employees":
		return c.employees(ctx)
	case "departments":
		return c.departments(ctx)
	case "positions":
		return c.positions(ctx)
	case "contracts":
		return c.contracts(ctx)
	case "payroll":
		return c.payroll(ctx, args)
	case "attendance":
		return c.attendance(ctx, args)
	case "export":
		return c.export(ctx, args)
	case "admin":
		return c.admin(ctx, args)
	default:
		c.usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *console) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("user", "", "username")
	password := fs.String("pass", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkGuard(guard.RequireAnonymous(c.store)); err != nil {
		fmt.Println("Already signed in - run `hrconsole logout` first.")
		return nil
	}
	if *username == "" || *password == "" {
		return fmt.Errorf("both -user and -pass are required")
	}

	displayAppname(c.config.GetAppName())
	user, err := c.auth.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	if user != nil {
		fmt.Printf("Signed in as %s (%s)\n", user.Username, user.Role)
	} else {
		fmt.Println("Signed in")
	}
	return nil
}

func (c *console) whoami() error {
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}
	user := c.auth.CurrentUser()
	if user == nil {
		fmt.Println("Signed in (no cached profile)")
		return nil
	}
	fmt.Printf("%s (%s)\n", user.Username, user.Role)
	return nil
}

func (c *console) employees(ctx context.Context) error {
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}
	employees, err := hr.NewEmployeeService(c.client).List(ctx)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "CODE\tNAME\tDEPARTMENT\tPOSITION\tPHONE\tEMAIL")
	for _, e := range employees {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.EmployeeID, e.EmployeeName, e.DepartmentID, e.PositionID, e.Phone, e.Email)
	}
	return w.Flush()
}

func (c *console) departments(ctx context.Context) error {
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}
	departments, err := hr.NewDepartmentService(c.client).List(ctx)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "CODE\tNAME\tLOCATION\tPHONE")
	for _, d := range departments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.DepartmentID, d.DepartmentName, d.Location, d.PhoneNumber)
	}
	return w.Flush()
}

func (c *console) positions(ctx context.Context) error {
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}
	positions, err := hr.NewPositionService(c.client).List(ctx)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tCODE\tTITLE")
	for _, p := range positions {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.PositionCode, p.Title)
	}
	return w.Flush()
}

func (c *console) contracts(ctx context.Context) error {
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}
	contracts, err := hr.NewContractService(c.client).List(ctx)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tEMPLOYEE\tTYPE\tSTART\tEND\tSTATUS")
	for _, ct := range contracts {
		end := ""
		if ct.EndDate != nil {
			end = ct.EndDate.String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			ct.ID, ct.EmployeeName, ct.ContractType, ct.StartDate, end, ct.Status)
	}
	return w.Flush()
}

func (c *console) payroll(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payroll", flag.ContinueOnError)
	month := fs.String("month", "", "filter by month (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}

	var filter *hr.Date
	if *month != "" {
		d, err := hr.ParseDate(*month)
		if err != nil {
			return err
		}
		filter = &d
	}

	payrolls, err := hr.NewPayrollService(c.client).List(ctx, filter)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tEMPLOYEE\tMONTH\tBASE\tALLOWANCE\tDEDUCTION\tNET")
	for _, p := range payrolls {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\n",
			p.ID, p.EmployeeName, p.Month, p.BaseSalary, p.Allowance, p.Deduction, p.NetSalary())
	}
	return w.Flush()
}

func (c *console) attendance(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("attendance", flag.ContinueOnError)
	day := fs.String("date", "", "filter by day (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}

	var filter *hr.Date
	if *day != "" {
		d, err := hr.ParseDate(*day)
		if err != nil {
			return err
		}
		filter = &d
	}

	records, err := hr.NewAttendanceService(c.client).List(ctx, filter)
	if err != nil {
		return err
	}
	w := newTable()
	fmt.Fprintln(w, "ID\tEMPLOYEE\tDATE\tSTATUS\tNOTES")
	for _, a := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.EmployeeName, a.Date, a.Status, a.Notes)
	}
	return w.Flush()
}

func (c *console) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	screen := fs.String("screen", "employees", "screen to export: employees or payroll")
	out := fs.String("out", "", "output .xlsx path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkGuard(guard.RequireAuthenticated(c.store)); err != nil {
		return err
	}
	if *out == "" {
		*out = *screen + ".xlsx"
	}

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %s: %w", *out, err)
	}
	defer f.Close()

	switch *screen {
	case "employees":
		employees, err := hr.NewEmployeeService(c.client).List(ctx)
		if err != nil {
			return err
		}
		if err := export.WriteEmployeesXLSX(f, employees); err != nil {
			return err
		}
	case "payroll":
		payrolls, err := hr.NewPayrollService(c.client).List(ctx, nil)
		if err != nil {
			return err
		}
		if err := export.WritePayrollXLSX(f, payrolls); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown screen %q", *screen)
	}

	fmt.Printf("Wrote %s\n", *out)
	return nil
}

func (c *console) admin(ctx context.Context, args []string) error {
	if err := checkGuard(guard.RequireRole(c.store, session.RoleAdmin)); err != nil {
		return err
	}
	action := "list"
	if len(args) > 0 {
		action = args[0]
	}

	switch action {
	case "list":
		accounts, err := c.auth.ListAccounts(ctx)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintln(w, "UID\tUSERNAME\tEMAIL\tROLE\tVERIFIED")
		for _, a := range accounts {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", a.UID, a.Username, a.Email, a.Role, a.Verified)
		}
		return w.Flush()
	case "verify":
		if len(args) < 2 {
			return fmt.Errorf("usage: admin verify <uid>")
		}
		return c.auth.VerifyAccount(ctx, args[1])
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: admin delete <uid>")
		}
		return c.auth.DeleteAccount(ctx, args[1])
	default:
		return fmt.Errorf("unknown admin action %q", action)
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
