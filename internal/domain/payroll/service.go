package payroll

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

// RevenueSource reports per-manager sale revenue over a period. The sale
// service is the production implementation.
type RevenueSource interface {
	RevenueByManager(ctx context.Context, ownerID ulid.ULID, from, to time.Time) (map[ulid.ULID]decimal.Decimal, error)
}

type Service struct {
	Repository Repository
	Revenue    RevenueSource
	shared.BaseService
}

func NewService(repo Repository, revenue RevenueSource, ownerChecker *shared.OwnerCheckerService) *Service {
	return &Service{
		Repository: repo,
		Revenue:    revenue,
		BaseService: shared.BaseService{
			OwnerChecker: ownerChecker,
		},
	}
}

func (s *Service) Create(ctx context.Context, employee *Employee) error {
	if err := s.EnsureOwnerExists(ctx, employee.OwnerId); err != nil {
		return err
	}
	if err := s.validate(employee); err != nil {
		return err
	}

	employee.Id = pkg.GenerateULIDObject()

	if err := s.Repository.Create(ctx, employee); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) Update(ctx context.Context, employee *Employee) error {
	existing, err := s.GetByID(ctx, employee.Id, employee.OwnerId)
	if err != nil {
		return err
	}
	if err := s.validate(employee); err != nil {
		return err
	}

	employee.CreatedAt = existing.CreatedAt
	if err := s.Repository.Update(ctx, employee); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, employeeID, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, employeeID, ownerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, employeeID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, employeeID, ownerID ulid.ULID) (*Employee, error) {
	employee, err := s.Repository.GetByIDAndOwner(ctx, employeeID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrEmployeeNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return employee, nil
}

func (s *Service) List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*Employee, int64, error) {
	employees, total, err := s.Repository.List(ctx, ownerID, companyTag, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return employees, total, nil
}

// ComputePayroll builds the payout sheet for one calendar month. Each
// employee's bonus is their BonusPercent of the revenue of sales they
// managed dated inside the month.
func (s *Service) ComputePayroll(ctx context.Context, ownerID ulid.ULID, year int, month time.Month) (*PayrollSummary, error) {
	if err := s.EnsureOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if month < time.January || month > time.December {
		return nil, appErrors.NewValidationError("month", "month must be between 1 and 12")
	}

	employees, err := s.Repository.ListAll(ctx, ownerID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	w := analytics.MonthWindow(year, month)
	revenue, err := s.Revenue.RevenueByManager(ctx, ownerID, w.Start, w.End)
	if err != nil {
		return nil, err
	}

	summary := &PayrollSummary{
		Month:       w.Start.Format("2006-01"),
		Lines:       make([]PayrollLine, 0, len(employees)),
		TotalBase:   decimal.Zero,
		TotalBonus:  decimal.Zero,
		TotalPayout: decimal.Zero,
	}

	for _, e := range employees {
		managed := revenue[e.Id]
		bonus := managed.Mul(e.BonusPercent).Div(decimal.NewFromInt(100))
		payout := e.BaseSalary.Add(bonus)

		summary.Lines = append(summary.Lines, PayrollLine{
			EmployeeId: e.Id,
			Name:       e.Name,
			Position:   e.Position,
			BaseSalary: e.BaseSalary,
			Revenue:    managed,
			Bonus:      bonus,
			Payout:     payout,
		})
		summary.TotalBase = summary.TotalBase.Add(e.BaseSalary)
		summary.TotalBonus = summary.TotalBonus.Add(bonus)
		summary.TotalPayout = summary.TotalPayout.Add(payout)
	}

	sort.Slice(summary.Lines, func(i, j int) bool {
		return summary.Lines[i].Name < summary.Lines[j].Name
	})

	return summary, nil
}

func (s *Service) validate(employee *Employee) error {
	employee.Name = shared.NormalizeName(employee.Name)
	if employee.Name == "" {
		return appErrors.NewValidationError("name", "name is required")
	}
	if employee.BaseSalary.IsNegative() {
		return appErrors.NewValidationError("baseSalary", "base salary cannot be negative")
	}
	if employee.BonusPercent.IsNegative() || employee.BonusPercent.GreaterThan(decimal.NewFromInt(100)) {
		return appErrors.NewValidationError("bonusPercent", "bonus percent must be between 0 and 100")
	}
	return nil
}
