package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fithouse/console/internal/auth"
	"github.com/fithouse/console/internal/customers"
	"github.com/fithouse/console/internal/dashboard"
	"github.com/fithouse/console/internal/memberships"
	"github.com/fithouse/console/internal/reports"
	"github.com/fithouse/console/internal/sales"
	"github.com/fithouse/console/internal/subscriptions"
	"github.com/fithouse/console/internal/users"
	"github.com/fithouse/console/pkg/config"
	"github.com/fithouse/console/pkg/logger"
	"github.com/fithouse/console/pkg/pagination"
	"github.com/fithouse/console/pkg/rest"
	"github.com/fithouse/console/pkg/session"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const usage = `fithouse console

Usage: console <command> [flags]

Session
  login -email <email> -password <password>
  logout

Customers
  customers [-page N] [-limit N]
  customer <id>
  create-customer -email <email> -nombre <name> [-doc-type CC|TI|PASAPORTE] [-doc-number N] [-phone N] [-address D] [-birth-date YYYY-MM-DD]
  mark-left <id>
  left

Subscriptions
  expiring [-page N] [-limit N]
  expired [-page N] [-limit N] [-customer-status all|active|inactive]
  assign -customer <id> -membership <id>

Users
  users [-page N] [-limit N]
  user <id>
  create-user -email <email> -password <pw> [-nombre <name>] [-phone N] [-role R] [-status S] [-birth-date YYYY-MM-DD]
  user-status <id> -status active|inactive

Memberships
  memberships [-page N] [-limit N] [-status active|inactive]
  create-membership -tipo dias|mes|anio -days N -price N
  membership-status <id> -status active|inactive

Sales & reporting
  sales [-page N] [-limit N] [-user-name U] [-membership-id M] [-from YYYY-MM-DD] [-to YYYY-MM-DD]
  dashboard
  report -from YYYY-MM-DD -to YYYY-MM-DD
`

type app struct {
	logg          *logger.Logger
	store         *session.Store
	auth          *auth.Service
	customers     *customers.Service
	users         *users.Service
	memberships   *memberships.Service
	subscriptions *subscriptions.Service
	sales         *sales.Service
	dashboard     *dashboard.Service
	reports       *reports.Service
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "console"})

	if err := godotenv.Load(); err != nil {
		logg.Debug(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "console",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := session.NewStore(cfg.Session)
	if err != nil {
		logg.Error(context.Background(), "failed to open session store", err)
		os.Exit(1)
	}

	client, err := rest.NewClient(cfg.API.BaseURL,
		rest.WithTokenSource(store),
		rest.WithLogger(logg),
		rest.WithTimeout(cfg.API.Timeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to build API client", err)
		os.Exit(1)
	}

	a := &app{
		logg:          logg,
		store:         store,
		auth:          auth.NewService(auth.NewAPI(client), store),
		customers:     customers.NewService(customers.NewAPI(client)),
		users:         users.NewService(users.NewAPI(client)),
		memberships:   memberships.NewService(memberships.NewAPI(client)),
		subscriptions: subscriptions.NewService(subscriptions.NewAPI(client)),
		sales:         sales.NewService(sales.NewAPI(client)),
		dashboard:     dashboard.NewService(dashboard.NewAPI(client)),
		reports:       reports.NewService(reports.NewAPI(client)),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		logg.Error(ctx, "command failed", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return errors.New("missing command")
	}
	command, args := args[0], args[1:]

	if command != "login" && command != "logout" && command != "help" && a.store.Expired(time.Now()) {
		a.logg.Warn(ctx, "stored session is expired, run login again")
	}

	switch command {
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
		return nil
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.auth.Logout()
	case "customers":
		return a.listCustomers(ctx, args)
	case "customer":
		return a.customerDetail(ctx, args)
	case "create-customer":
		return a.createCustomer(ctx, args)
	case "mark-left":
		return a.markLeft(ctx, args)
	case "left":
		return a.leftCustomers(ctx)
	case "expiring":
		return a.expiring(ctx, args)
	case "expired":
		return a.expired(ctx, args)
	case "assign":
		return a.assign(ctx, args)
	case "users":
		return a.listUsers(ctx, args)
	case "user":
		return a.userDetail(ctx, args)
	case "create-user":
		return a.createUser(ctx, args)
	case "user-status":
		return a.userStatus(ctx, args)
	case "memberships":
		return a.listMemberships(ctx, args)
	case "create-membership":
		return a.createMembership(ctx, args)
	case "membership-status":
		return a.membershipStatus(ctx, args)
	case "sales":
		return a.listSales(ctx, args)
	case "dashboard":
		return a.showDashboard(ctx)
	case "report":
		return a.report(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	a.logg.Info(ctx, "session stored")
	return printJSON(result)
}

func (a *app) listCustomers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customers", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.customers.ListCustomers(ctx, customers.ListParams{Page: *page, Limit: *limit})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) customerDetail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("customer", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id := fs.Arg(0)

	customer, err := a.customers.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	plans, err := a.subscriptions.CustomerMemberships(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{
		"customer":    customer,
		"memberships": plans,
	})
}

func (a *app) createCustomer(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-customer", flag.ExitOnError)
	email := fs.String("email", "", "customer email")
	nombre := fs.String("nombre", "", "full name")
	docType := fs.String("doc-type", "", "document type (CC, TI, PASAPORTE)")
	docNumber := fs.String("doc-number", "", "document number")
	phone := fs.String("phone", "", "phone number")
	address := fs.String("address", "", "address")
	birthDate := fs.String("birth-date", "", "birth date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	customer, err := a.customers.CreateCustomer(ctx, customers.CreateForm{
		Email:     *email,
		Nombre:    *nombre,
		DocType:   *docType,
		DocNumber: *docNumber,
		Phone:     *phone,
		Address:   *address,
		BirthDate: *birthDate,
	})
	if err != nil {
		return err
	}
	return printJSON(customer)
}

func (a *app) markLeft(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("mark-left", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	customer, err := a.customers.MarkAsLeft(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return printJSON(customer)
}

func (a *app) leftCustomers(ctx context.Context) error {
	result, err := a.customers.LeftCustomers(ctx)
	if err != nil {
		return err
	}
	return printJSON(result)
}

// expiring is one of the two flat endpoints: the whole set is fetched and
// paginated locally.
func (a *app) expiring(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expiring", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.subscriptions.ExpiringMemberships(ctx)
	if err != nil {
		return err
	}

	pager := pagination.NewPager(*limit)
	pager.SetTotal(len(result.Data))
	pager.GoToPage(*page)
	start, end := pager.Slice(len(result.Data))

	return printJSON(map[string]any{
		"message": result.Message,
		"data":    result.Data[start:end],
		"pagination": pagination.Pagination{
			Page:       pager.Page(),
			Limit:      pager.Limit(),
			Total:      len(result.Data),
			TotalPages: (len(result.Data) + pager.Limit() - 1) / pager.Limit(),
		},
	})
}

func (a *app) expired(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("expired", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 0, "page size")
	customerStatus := fs.String("customer-status", "all", "customer status filter (all, active, inactive)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.subscriptions.ExpiredMemberships(ctx, subscriptions.ExpiredParams{
		Page:           *page,
		Limit:          *limit,
		CustomerStatus: *customerStatus,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) assign(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	customerID := fs.String("customer", "", "customer id")
	membershipID := fs.String("membership", "", "membership id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.subscriptions.AssignMembership(ctx, *customerID, *membershipID)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) listUsers(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("users", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.users.ListUsers(ctx, users.ListParams{Page: *page, Limit: *limit})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) userDetail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.users.GetUser(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (a *app) createUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	nombre := fs.String("nombre", "", "full name")
	phone := fs.String("phone", "", "phone number")
	role := fs.String("role", "", "role (defaults to member)")
	status := fs.String("status", "", "status (defaults to active)")
	birthDate := fs.String("birth-date", "", "birth date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.users.CreateUser(ctx, users.CreateForm{
		Email:     *email,
		Password:  *password,
		Nombre:    *nombre,
		Phone:     *phone,
		Role:      *role,
		Status:    *status,
		BirthDate: *birthDate,
	})
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (a *app) userStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user-status", flag.ExitOnError)
	status := fs.String("status", "", "new status (active or inactive)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.users.UpdateUserStatus(ctx, fs.Arg(0), *status)
	if err != nil {
		return err
	}
	return printJSON(user)
}

func (a *app) listMemberships(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("memberships", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 0, "page size")
	status := fs.String("status", "", "status filter (active or inactive)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.memberships.ListMemberships(ctx, memberships.ListParams{
		Page:   *page,
		Limit:  *limit,
		Status: *status,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) createMembership(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-membership", flag.ExitOnError)
	tipo := fs.String("tipo", "", "duration kind (dias, mes, anio)")
	days := fs.Int("days", 0, "duration in days")
	price := fs.String("price", "0", "price in COP")
	if err := fs.Parse(args); err != nil {
		return err
	}

	precio, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", *price, err)
	}

	plan, err := a.memberships.CreateMembership(ctx, memberships.CreateForm{
		Tipo:         *tipo,
		DuracionDias: *days,
		Precio:       precio,
	})
	if err != nil {
		return err
	}
	return printJSON(plan)
}

func (a *app) membershipStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("membership-status", flag.ExitOnError)
	status := fs.String("status", "", "new status (active or inactive)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	plan, err := a.memberships.UpdateMembershipStatus(ctx, fs.Arg(0), *status)
	if err != nil {
		return err
	}
	return printJSON(plan)
}

func (a *app) listSales(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sales", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 0, "page size")
	userName := fs.String("user-name", "", "filter by seller name")
	membershipID := fs.String("membership-id", "", "filter by membership")
	from := fs.String("from", "", "start date, YYYY-MM-DD")
	to := fs.String("to", "", "end date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.sales.ListSales(ctx, sales.ListParams{
		Page:         *page,
		Limit:        *limit,
		UserName:     *userName,
		MembershipID: *membershipID,
		DateFrom:     *from,
		DateTo:       *to,
	})
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) showDashboard(ctx context.Context) error {
	result, err := a.dashboard.GetDashboard(ctx)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func (a *app) report(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	from := fs.String("from", "", "start date, YYYY-MM-DD")
	to := fs.String("to", "", "end date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.reports.GetReport(ctx, *from, *to)
	if err != nil {
		return err
	}
	return printJSON(result)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
