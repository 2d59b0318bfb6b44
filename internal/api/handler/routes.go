package handler

import (
	"net/http"

	"github.com/vfg2006/sales-ledger-api/internal/api/handler/router"
	"github.com/vfg2006/sales-ledger-api/internal/session"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/recording"
	"github.com/vfg2006/sales-ledger-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Authentication registra login, cadastro de usuário e troca de senha.
// loginLimit é aplicado apenas ao login.
func Authentication(service authenticating.Authenticator, loginLimit func(http.Handler) http.Handler) []router.Route {
	var loginMiddlewares []func(http.Handler) http.Handler
	if loginLimit != nil {
		loginMiddlewares = append(loginMiddlewares, loginLimit)
	}

	return []router.Route{
		{
			Path:        "/v1/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: loginMiddlewares,
		},
		{
			Path:    "/v1/users",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me/change-password",
			Method:  http.MethodPost,
			Handler: ChangePassword(service),
		},
	}
}

func Records(service recording.Recorder) []router.Route {
	return []router.Route{
		{Path: "/v1/branches", Method: http.MethodGet, Handler: ListBranches(service)},
		{Path: "/v1/branches", Method: http.MethodPost, Handler: CreateBranch(service)},
		{Path: "/v1/products", Method: http.MethodGet, Handler: ListProducts(service)},
		{Path: "/v1/products", Method: http.MethodPost, Handler: CreateProduct(service)},
		{Path: "/v1/sales", Method: http.MethodGet, Handler: ListSales(service)},
		{Path: "/v1/sales", Method: http.MethodPost, Handler: CreateSale(service)},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/branches/:id/sales",
			Method:  http.MethodGet,
			Handler: BranchSales(service),
		},
		{
			Path:    "/v1/reports/products/:id/price",
			Method:  http.MethodGet,
			Handler: ProductPrice(service),
		},
		{
			Path:    "/v1/reports/weekly",
			Method:  http.MethodGet,
			Handler: WeeklySales(service),
		},
		{
			Path:    "/v1/reports/total",
			Method:  http.MethodGet,
			Handler: TotalSales(service),
		},
		{
			Path:    "/v1/reports/branches",
			Method:  http.MethodGet,
			Handler: AllBranchesSales(service),
		},
	}
}

func Session(dispatcher *session.Dispatcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/menu",
			Method:  http.MethodGet,
			Handler: GetMenu(),
		},
		{
			Path:    "/v1/actions",
			Method:  http.MethodPost,
			Handler: RunAction(dispatcher),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
