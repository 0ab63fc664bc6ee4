package payroll_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/payroll"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type fakeRepository struct {
	createFn  func(ctx context.Context, e *payroll.Employee) error
	updateFn  func(ctx context.Context, e *payroll.Employee) error
	deleteFn  func(ctx context.Context, id ulid.ULID) error
	getFn     func(ctx context.Context, id, ownerID ulid.ULID) (*payroll.Employee, error)
	listFn    func(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*payroll.Employee, int64, error)
	listAllFn func(ctx context.Context, ownerID ulid.ULID) ([]*payroll.Employee, error)
}

func (f *fakeRepository) Create(ctx context.Context, e *payroll.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, e *payroll.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepository) GetByIDAndOwner(ctx context.Context, id, ownerID ulid.ULID) (*payroll.Employee, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id, ownerID)
	}
	return nil, nil
}

func (f *fakeRepository) List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*payroll.Employee, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, ownerID, companyTag, pagination)
	}
	return nil, 0, nil
}

func (f *fakeRepository) ListAll(ctx context.Context, ownerID ulid.ULID) ([]*payroll.Employee, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx, ownerID)
	}
	return nil, nil
}

type fakeRevenue struct {
	byManager map[ulid.ULID]decimal.Decimal
	gotFrom   time.Time
	gotTo     time.Time
}

func (f *fakeRevenue) RevenueByManager(ctx context.Context, ownerID ulid.ULID, from, to time.Time) (map[ulid.ULID]decimal.Decimal, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.byManager, nil
}

type fakeOwnerChecker struct {
	err error
}

func (f *fakeOwnerChecker) Exists(ctx context.Context, ownerID ulid.ULID) error {
	return f.err
}

func newService(repo payroll.Repository, revenue payroll.RevenueSource) *payroll.Service {
	checker := shared.NewOwnerCheckerService(&fakeOwnerChecker{})
	return payroll.NewService(repo, revenue, checker)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePayroll(t *testing.T) {
	owner := pkg.GenerateULIDObject()
	manager := pkg.GenerateULIDObject()
	junior := pkg.GenerateULIDObject()

	repo := &fakeRepository{
		listAllFn: func(ctx context.Context, ownerID ulid.ULID) ([]*payroll.Employee, error) {
			return []*payroll.Employee{
				{Id: manager, Name: "Anna", BaseSalary: dec("80000"), BonusPercent: dec("5")},
				{Id: junior, Name: "Boris", BaseSalary: dec("50000"), BonusPercent: dec("10")},
			}, nil
		},
	}
	revenue := &fakeRevenue{
		byManager: map[ulid.ULID]decimal.Decimal{
			manager: dec("300000"),
		},
	}
	svc := newService(repo, revenue)

	summary, err := svc.ComputePayroll(context.Background(), owner, 2024, time.March)
	if err != nil {
		t.Fatalf("ComputePayroll returned error: %v", err)
	}

	if summary.Month != "2024-03" {
		t.Errorf("expected month 2024-03, got %s", summary.Month)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(summary.Lines))
	}

	anna := summary.Lines[0]
	if anna.Name != "Anna" {
		t.Fatalf("expected lines sorted by name, got %s first", anna.Name)
	}
	if !anna.Bonus.Equal(dec("15000")) {
		t.Errorf("expected bonus 15000, got %s", anna.Bonus)
	}
	if !anna.Payout.Equal(dec("95000")) {
		t.Errorf("expected payout 95000, got %s", anna.Payout)
	}

	boris := summary.Lines[1]
	if !boris.Bonus.IsZero() {
		t.Errorf("expected zero bonus without managed sales, got %s", boris.Bonus)
	}
	if !boris.Payout.Equal(dec("50000")) {
		t.Errorf("expected payout 50000, got %s", boris.Payout)
	}

	if !summary.TotalBase.Equal(dec("130000")) {
		t.Errorf("expected total base 130000, got %s", summary.TotalBase)
	}
	if !summary.TotalBonus.Equal(dec("15000")) {
		t.Errorf("expected total bonus 15000, got %s", summary.TotalBonus)
	}
	if !summary.TotalPayout.Equal(dec("145000")) {
		t.Errorf("expected total payout 145000, got %s", summary.TotalPayout)
	}

	if revenue.gotFrom != time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected revenue window start: %s", revenue.gotFrom)
	}
	if revenue.gotTo != time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected revenue window end: %s", revenue.gotTo)
	}
}

func TestComputePayrollExactFractionalBonus(t *testing.T) {
	owner := pkg.GenerateULIDObject()
	manager := pkg.GenerateULIDObject()

	repo := &fakeRepository{
		listAllFn: func(ctx context.Context, ownerID ulid.ULID) ([]*payroll.Employee, error) {
			return []*payroll.Employee{
				{Id: manager, Name: "Anna", BaseSalary: dec("0"), BonusPercent: dec("2.5")},
			}, nil
		},
	}
	revenue := &fakeRevenue{
		byManager: map[ulid.ULID]decimal.Decimal{manager: dec("99999.99")},
	}
	svc := newService(repo, revenue)

	summary, err := svc.ComputePayroll(context.Background(), owner, 2024, time.January)
	if err != nil {
		t.Fatalf("ComputePayroll returned error: %v", err)
	}
	if !summary.Lines[0].Bonus.Equal(dec("2499.99975")) {
		t.Errorf("expected exact bonus 2499.99975, got %s", summary.Lines[0].Bonus)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(&fakeRepository{}, &fakeRevenue{})
	owner := pkg.GenerateULIDObject()

	cases := []struct {
		name     string
		employee *payroll.Employee
	}{
		{"missing name", &payroll.Employee{OwnerId: owner}},
		{"negative salary", &payroll.Employee{OwnerId: owner, Name: "Anna", BaseSalary: dec("-1")}},
		{"bonus above 100", &payroll.Employee{OwnerId: owner, Name: "Anna", BonusPercent: dec("101")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tc.employee)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestComputePayrollRejectsBadMonth(t *testing.T) {
	svc := newService(&fakeRepository{}, &fakeRevenue{})

	_, err := svc.ComputePayroll(context.Background(), pkg.GenerateULIDObject(), 2024, time.Month(13))
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %v", err)
	}
}
