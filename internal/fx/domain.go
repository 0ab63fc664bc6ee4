package fx

import (
	"go.uber.org/fx"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/report"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/user"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/infrastructure"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newOwnerCheckerService,
		newCompanyService,
		newCategoryService,
		newTransactionService,
		newSaleService,
		newLeadService,
		newPayrollService,
		newReportService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newOwnerCheckerService(userSvc *user.Service) *shared.OwnerCheckerService {
	return shared.NewOwnerCheckerService(userSvc)
}

func newCompanyService(
	repo *infrastructure.CompanyRepository,
	ownerChecker *shared.OwnerCheckerService,
) *company.Service {
	return company.NewService(repo, ownerChecker)
}

func newCategoryService(
	repo *infrastructure.CategoryRepository,
	ownerChecker *shared.OwnerCheckerService,
) *category.Service {
	return category.NewService(repo, ownerChecker)
}

func newTransactionService(
	repo *infrastructure.TransactionRepository,
	ownerChecker *shared.OwnerCheckerService,
) *transaction.Service {
	return transaction.NewService(repo, ownerChecker)
}

func newSaleService(
	repo *infrastructure.SaleRepository,
	ownerChecker *shared.OwnerCheckerService,
) *sale.Service {
	return sale.NewService(repo, ownerChecker)
}

func newLeadService(
	repo *infrastructure.LeadRepository,
	ownerChecker *shared.OwnerCheckerService,
) *lead.Service {
	return lead.NewService(repo, ownerChecker)
}

func newPayrollService(
	repo *infrastructure.EmployeeRepository,
	saleSvc *sale.Service,
	ownerChecker *shared.OwnerCheckerService,
) *payroll.Service {
	return payroll.NewService(repo, saleSvc, ownerChecker)
}

func newReportService(
	transactionSvc *transaction.Service,
	categorySvc *category.Service,
	saleSvc *sale.Service,
	leadSvc *lead.Service,
	ownerChecker *shared.OwnerCheckerService,
) *report.Service {
	return report.NewService(transactionSvc, categorySvc, saleSvc, leadSvc, ownerChecker)
}
