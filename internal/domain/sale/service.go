package sale

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

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

// Create persists a sale with an even monthly installment schedule. Each
// installment gets TotalAmount/n rounded to cents; the rounding remainder
// lands on the first installment so the schedule sums exactly to the total.
func (s *Service) Create(ctx context.Context, sale *Sale, installmentCount int) error {
	if err := s.EnsureOwnerExists(ctx, sale.OwnerId); err != nil {
		return err
	}

	sale.ClientName = shared.NormalizeName(sale.ClientName)
	if sale.ClientName == "" {
		return appErrors.NewValidationError("clientName", "client name is required")
	}
	if !sale.TotalAmount.IsPositive() {
		return appErrors.NewValidationError("totalAmount", "total amount must be positive")
	}
	if sale.Date.IsZero() {
		return appErrors.NewValidationError("date", "date is required")
	}
	if installmentCount < 1 {
		installmentCount = 1
	}

	sale.Id = pkg.GenerateULIDObject()
	sale.Installments = buildSchedule(sale.Id, sale.TotalAmount, sale.Date, installmentCount)

	if err := s.Repository.Create(ctx, sale); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func buildSchedule(saleID ulid.ULID, total decimal.Decimal, firstDue time.Time, count int) []Installment {
	per := total.Div(decimal.NewFromInt(int64(count))).RoundDown(2)
	remainder := total.Sub(per.Mul(decimal.NewFromInt(int64(count))))

	installments := make([]Installment, 0, count)
	for i := 0; i < count; i++ {
		amount := per
		if i == 0 {
			amount = amount.Add(remainder)
		}
		installments = append(installments, Installment{
			Id:         pkg.GenerateULIDObject(),
			SaleId:     saleID,
			Seq:        i + 1,
			DueDate:    firstDue.AddDate(0, i, 0),
			Amount:     amount,
			PaidAmount: decimal.Zero,
		})
	}
	return installments
}

func (s *Service) Delete(ctx context.Context, saleID, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, saleID, ownerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, saleID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, saleID, ownerID ulid.ULID) (*Sale, error) {
	sale, err := s.Repository.GetByIDAndOwner(ctx, saleID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrSaleNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return sale, nil
}

func (s *Service) List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*Sale, int64, error) {
	sales, total, err := s.Repository.List(ctx, ownerID, companyTag, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return sales, total, nil
}

// RecordPayment marks one installment paid. A partial amount is accepted;
// the installment closes once the paid amount covers it.
func (s *Service) RecordPayment(ctx context.Context, saleID, installmentID, ownerID ulid.ULID, amount decimal.Decimal, paidAt time.Time) (*Sale, error) {
	if !amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "payment amount must be positive")
	}

	sale, err := s.GetByID(ctx, saleID, ownerID)
	if err != nil {
		return nil, err
	}

	var target *Installment
	for i := range sale.Installments {
		if sale.Installments[i].Id == installmentID {
			target = &sale.Installments[i]
			break
		}
	}
	if target == nil {
		return nil, appErrors.ErrInstallmentNotFound
	}

	target.PaidAmount = target.PaidAmount.Add(amount)
	if target.PaidAmount.GreaterThanOrEqual(target.Amount) {
		when := paidAt
		if when.IsZero() {
			when = time.Now()
		}
		target.PaidAt = &when
	}

	if err := s.Repository.UpdateInstallment(ctx, target); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return sale, nil
}

// Forecast distributes unpaid installment remainders over their due months,
// ascending, up to the given horizon. Months with nothing due are omitted.
func (s *Service) Forecast(ctx context.Context, ownerID ulid.ULID, companyTag string, months int) ([]ForecastBucket, error) {
	if err := s.EnsureOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if months < 1 {
		months = 6
	}

	unpaid, err := s.Repository.ListUnpaidInstallments(ctx, ownerID, companyTag)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	horizon := time.Now().UTC().AddDate(0, months, 0)
	byMonth := make(map[string]decimal.Decimal)
	for _, inst := range unpaid {
		if inst.DueDate.After(horizon) {
			continue
		}
		remaining := inst.Amount.Sub(inst.PaidAmount)
		if !remaining.IsPositive() {
			continue
		}
		key := inst.DueDate.UTC().Format("2006-01")
		byMonth[key] = byMonth[key].Add(remaining)
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make([]ForecastBucket, 0, len(keys))
	for _, key := range keys {
		buckets = append(buckets, ForecastBucket{Month: key, Expected: byMonth[key]})
	}
	return buckets, nil
}

// RevenueByManager sums sale totals per manager over [from, to], used as the
// bonus basis by payroll.
func (s *Service) RevenueByManager(ctx context.Context, ownerID ulid.ULID, from, to time.Time) (map[ulid.ULID]decimal.Decimal, error) {
	sales, err := s.Repository.ListForPeriod(ctx, ownerID, "", from, to)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	revenue := make(map[ulid.ULID]decimal.Decimal)
	for _, sl := range sales {
		if sl.ManagerId == nil {
			continue
		}
		revenue[*sl.ManagerId] = revenue[*sl.ManagerId].Add(sl.TotalAmount)
	}
	return revenue, nil
}
