package fx

import (
	"time"

	"go.uber.org/fx"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/report"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/user"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/middleware"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/routes"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	companySvc *company.Service,
	categorySvc *category.Service,
	transactionSvc *transaction.Service,
	saleSvc *sale.Service,
	leadSvc *lead.Service,
	payrollSvc *payroll.Service,
	reportSvc *report.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:        userSvc,
		CompanyService:     companySvc,
		CategoryService:    categorySvc,
		TransactionService: transactionSvc,
		SaleService:        saleSvc,
		LeadService:        leadSvc,
		PayrollService:     payrollSvc,
		ReportService:      reportSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
