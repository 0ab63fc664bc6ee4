package infrastructure

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/config"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/category"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/company"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/sale"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/user"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/logger"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Failed to connect to the database")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to acquire the underlying database handle")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Database connection established")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Running migrations...")

	entities := []interface{}{
		&user.User{},
		&company.Company{},
		&category.Category{},
		&transaction.Transaction{},
		&sale.Sale{},
		&sale.Installment{},
		&lead.Lead{},
		&payroll.Employee{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().Err(err).Msgf("Migration failed for %T", entity)
			return err
		}
	}

	logger.Info().Msg("Migrations finished")
	return nil
}
