package transaction

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type Service struct {
	Repository Repository
	shared.BaseService
}

func NewService(repo Repository, ownerChecker *shared.OwnerCheckerService) *Service {
	return &Service{
		Repository: repo,
		BaseService: shared.BaseService{
			OwnerChecker: ownerChecker,
		},
	}
}

func (s *Service) Create(ctx context.Context, transaction *Transaction) error {
	if err := s.EnsureOwnerExists(ctx, transaction.OwnerId); err != nil {
		return err
	}

	if err := s.validate(transaction); err != nil {
		return err
	}

	transaction.Id = pkg.GenerateULIDObject()
	transaction.Date = truncateToDay(transaction.Date)

	if err := s.Repository.Create(ctx, transaction); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Update(ctx context.Context, transaction *Transaction) error {
	if err := s.EnsureOwnerExists(ctx, transaction.OwnerId); err != nil {
		return err
	}

	stored, err := s.GetByID(ctx, transaction.Id, transaction.OwnerId)
	if err != nil {
		return err
	}

	if err := s.validate(transaction); err != nil {
		return err
	}

	stored.Kind = transaction.Kind
	stored.Category = transaction.Category
	stored.Subcategory = transaction.Subcategory
	stored.Amount = transaction.Amount
	stored.CompanyTag = transaction.CompanyTag
	stored.Comment = transaction.Comment
	if !transaction.Date.IsZero() {
		stored.Date = truncateToDay(transaction.Date)
	}
	stored.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, stored); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, transactionID, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, transactionID, ownerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, transactionID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, transactionID, ownerID ulid.ULID) (*Transaction, error) {
	transaction, err := s.Repository.GetByIDAndOwner(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return transaction, nil
}

func (s *Service) List(ctx context.Context, ownerID ulid.ULID, filter ListFilter, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	transactions, total, err := s.Repository.List(ctx, ownerID, filter, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

// RecordsForWindow fetches the owner's records for a window as analytics
// input. The repository filters server-side; the window re-check stays with
// the aggregator.
func (s *Service) RecordsForWindow(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]analytics.Record, error) {
	if w.IsEmpty() {
		return nil, nil
	}
	transactions, err := s.Repository.ListForPeriod(ctx, ownerID, companyTag, w.Start, w.End)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return ToRecords(transactions), nil
}

func (s *Service) validate(transaction *Transaction) error {
	if transaction.Kind != analytics.KindIncome && transaction.Kind != analytics.KindExpense {
		return appErrors.NewValidationError("kind", "kind must be income or expense")
	}
	if transaction.Category == "" {
		return appErrors.NewValidationError("category", "category is required")
	}
	if transaction.Amount.IsNegative() {
		return appErrors.NewValidationError("amount", "amount must not be negative")
	}
	if transaction.Date.IsZero() {
		return appErrors.NewValidationError("date", "date is required")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
