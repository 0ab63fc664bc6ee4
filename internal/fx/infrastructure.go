package fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/config"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/infrastructure"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newCompanyRepository,
		newCategoryRepository,
		newTransactionRepository,
		newSaleRepository,
		newLeadRepository,
		newEmployeeRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newCompanyRepository(db *gorm.DB) *infrastructure.CompanyRepository {
	return &infrastructure.CompanyRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newTransactionRepository(db *gorm.DB) *infrastructure.TransactionRepository {
	return &infrastructure.TransactionRepository{DB: db}
}

func newSaleRepository(db *gorm.DB) *infrastructure.SaleRepository {
	return &infrastructure.SaleRepository{DB: db}
}

func newLeadRepository(db *gorm.DB) *infrastructure.LeadRepository {
	return &infrastructure.LeadRepository{DB: db}
}

func newEmployeeRepository(db *gorm.DB) *infrastructure.EmployeeRepository {
	return &infrastructure.EmployeeRepository{DB: db}
}
