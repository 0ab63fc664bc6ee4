package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/transaction"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type fakeRepository struct {
	createFn        func(ctx context.Context, tx *transaction.Transaction) error
	updateFn        func(ctx context.Context, tx *transaction.Transaction) error
	deleteFn        func(ctx context.Context, id ulid.ULID) error
	getFn           func(ctx context.Context, id, ownerID ulid.ULID) (*transaction.Transaction, error)
	listFn          func(ctx context.Context, ownerID ulid.ULID, filter transaction.ListFilter, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error)
	listForPeriodFn func(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*transaction.Transaction, error)
}

func (f *fakeRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if f.createFn != nil {
		return f.createFn(ctx, tx)
	}
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, tx)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepository) GetByIDAndOwner(ctx context.Context, id, ownerID ulid.ULID) (*transaction.Transaction, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id, ownerID)
	}
	return nil, nil
}

func (f *fakeRepository) List(ctx context.Context, ownerID ulid.ULID, filter transaction.ListFilter, pagination *pkg.PaginationParams) ([]*transaction.Transaction, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, ownerID, filter, pagination)
	}
	return nil, 0, nil
}

func (f *fakeRepository) ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*transaction.Transaction, error) {
	if f.listForPeriodFn != nil {
		return f.listForPeriodFn(ctx, ownerID, companyTag, from, to)
	}
	return nil, nil
}

type fakeOwnerChecker struct {
	err error
}

func (f *fakeOwnerChecker) Exists(ctx context.Context, ownerID ulid.ULID) error {
	return f.err
}

func newService(repo transaction.Repository) *transaction.Service {
	checker := shared.NewOwnerCheckerService(&fakeOwnerChecker{})
	return transaction.NewService(repo, checker)
}

func validTransaction() *transaction.Transaction {
	return &transaction.Transaction{
		OwnerId:    pkg.GenerateULIDObject(),
		Kind:       analytics.KindIncome,
		Category:   "Продажи",
		Amount:     decimal.NewFromInt(100000),
		Date:       time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		CompanyTag: "Alpha",
	}
}

func TestCreateAssignsIDAndTruncatesDate(t *testing.T) {
	var stored *transaction.Transaction
	repo := &fakeRepository{
		createFn: func(ctx context.Context, tx *transaction.Transaction) error {
			stored = tx
			return nil
		},
	}

	svc := newService(repo)
	tx := validTransaction()

	if err := svc.Create(context.Background(), tx); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stored == nil {
		t.Fatal("transaction was not persisted")
	}
	if pkg.IsEmptyULID(stored.Id) {
		t.Fatal("expected generated id")
	}
	if stored.Date.Hour() != 0 || stored.Date.Minute() != 0 {
		t.Fatalf("date not truncated to day: %s", stored.Date)
	}
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(tx *transaction.Transaction)
	}{
		{"bad kind", func(tx *transaction.Transaction) { tx.Kind = "transfer" }},
		{"missing category", func(tx *transaction.Transaction) { tx.Category = "" }},
		{"negative amount", func(tx *transaction.Transaction) { tx.Amount = decimal.NewFromInt(-5) }},
		{"zero date", func(tx *transaction.Transaction) { tx.Date = time.Time{} }},
	}

	svc := newService(&fakeRepository{})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := validTransaction()
			tc.mutate(tx)

			err := svc.Create(context.Background(), tx)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestCreateRejectsUnknownOwner(t *testing.T) {
	checker := shared.NewOwnerCheckerService(&fakeOwnerChecker{err: appErrors.ErrUserNotFound})
	svc := transaction.NewService(&fakeRepository{}, checker)

	err := svc.Create(context.Background(), validTransaction())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "USER_NOT_FOUND" {
		t.Fatalf("expected USER_NOT_FOUND, got %v", err)
	}
}

func TestRecordsForWindowEmptyWindowSkipsFetch(t *testing.T) {
	called := false
	repo := &fakeRepository{
		listForPeriodFn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*transaction.Transaction, error) {
			called = true
			return nil, nil
		},
	}

	svc := newService(repo)
	w := analytics.Range(
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)

	records, err := svc.RecordsForWindow(context.Background(), pkg.GenerateULIDObject(), "", w)
	if err != nil {
		t.Fatalf("RecordsForWindow: %v", err)
	}
	if called {
		t.Fatal("repository must not be queried for an empty window")
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestRecordsForWindowConvertsTransactions(t *testing.T) {
	ownerID := pkg.GenerateULIDObject()
	repo := &fakeRepository{
		listForPeriodFn: func(ctx context.Context, gotOwner ulid.ULID, companyTag string, from, to time.Time) ([]*transaction.Transaction, error) {
			if gotOwner != ownerID {
				t.Fatalf("owner = %s, want %s", gotOwner, ownerID)
			}
			if companyTag != "Alpha" {
				t.Fatalf("companyTag = %q, want Alpha", companyTag)
			}
			return []*transaction.Transaction{
				{
					Id:       pkg.GenerateULIDObject(),
					Kind:     analytics.KindIncome,
					Category: "Продажи",
					Amount:   decimal.NewFromInt(500),
					Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		},
	}

	svc := newService(repo)
	records, err := svc.RecordsForWindow(context.Background(), ownerID, "Alpha", analytics.MonthWindow(2024, time.January))
	if err != nil {
		t.Fatalf("RecordsForWindow: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if !records[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("amount = %s, want 500", records[0].Amount)
	}
}
