package lead_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/analytics"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/lead"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/domain/shared"
	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type fakeRepository struct {
	createFn        func(ctx context.Context, l *lead.Lead) error
	updateFn        func(ctx context.Context, l *lead.Lead) error
	deleteFn        func(ctx context.Context, id ulid.ULID) error
	getFn           func(ctx context.Context, id, ownerID ulid.ULID) (*lead.Lead, error)
	listFn          func(ctx context.Context, ownerID ulid.ULID, companyTag string, status lead.Status, pagination *pkg.PaginationParams) ([]*lead.Lead, int64, error)
	listForPeriodFn func(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*lead.Lead, error)
}

func (f *fakeRepository) Create(ctx context.Context, l *lead.Lead) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, l *lead.Lead) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepository) GetByIDAndOwner(ctx context.Context, id, ownerID ulid.ULID) (*lead.Lead, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id, ownerID)
	}
	return nil, nil
}

func (f *fakeRepository) List(ctx context.Context, ownerID ulid.ULID, companyTag string, status lead.Status, pagination *pkg.PaginationParams) ([]*lead.Lead, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, ownerID, companyTag, status, pagination)
	}
	return nil, 0, nil
}

func (f *fakeRepository) ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*lead.Lead, error) {
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

func newService(repo lead.Repository) *lead.Service {
	checker := shared.NewOwnerCheckerService(&fakeOwnerChecker{})
	return lead.NewService(repo, checker)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateAssignsIDAndDefaultStatus(t *testing.T) {
	var stored *lead.Lead
	repo := &fakeRepository{
		createFn: func(ctx context.Context, l *lead.Lead) error {
			stored = l
			return nil
		},
	}
	svc := newService(repo)

	l := &lead.Lead{
		OwnerId: pkg.GenerateULIDObject(),
		Name:    "Acme",
		Source:  "  instagram  ",
		Date:    day(2024, time.March, 10),
	}
	if err := svc.Create(context.Background(), l); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if stored == nil {
		t.Fatal("lead was not persisted")
	}
	if pkg.IsEmptyULID(stored.Id) {
		t.Error("expected a generated lead id")
	}
	if stored.Status != lead.StatusNew {
		t.Errorf("expected default status %q, got %q", lead.StatusNew, stored.Status)
	}
	if stored.Source != "instagram" {
		t.Errorf("expected normalized source, got %q", stored.Source)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newService(&fakeRepository{})
	owner := pkg.GenerateULIDObject()

	cases := []struct {
		name string
		lead *lead.Lead
	}{
		{"missing source", &lead.Lead{OwnerId: owner, Date: day(2024, time.March, 10)}},
		{"unknown status", &lead.Lead{OwnerId: owner, Source: "vk", Status: "frozen", Date: day(2024, time.March, 10)}},
		{"missing date", &lead.Lead{OwnerId: owner, Source: "vk"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(context.Background(), tc.lead)
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != "VALIDATION_ERROR" {
				t.Errorf("expected validation error, got %s", appErr.Code)
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newService(&fakeRepository{})

	err := svc.UpdateStatus(context.Background(), pkg.GenerateULIDObject(), pkg.GenerateULIDObject(), "frozen")
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestConversionStats(t *testing.T) {
	owner := pkg.GenerateULIDObject()
	w := analytics.MonthWindow(2024, time.March)

	repo := &fakeRepository{
		listForPeriodFn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*lead.Lead, error) {
			return []*lead.Lead{
				{Source: "instagram", Status: lead.StatusConverted, Date: day(2024, time.March, 1)},
				{Source: "instagram", Status: lead.StatusNew, Date: day(2024, time.March, 5)},
				{Source: "instagram", Status: lead.StatusLost, Date: day(2024, time.March, 9)},
				{Source: "instagram", Status: lead.StatusConverted, Date: day(2024, time.March, 12)},
				{Source: "referral", Status: lead.StatusQualified, Date: day(2024, time.March, 20)},
			}, nil
		},
	}
	svc := newService(repo)

	stats, err := svc.ConversionStats(context.Background(), owner, "", w)
	if err != nil {
		t.Fatalf("ConversionStats returned error: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(stats))
	}

	ig := stats[0]
	if ig.Source != "instagram" || ig.Total != 4 || ig.Converted != 2 {
		t.Errorf("unexpected instagram stats: %+v", ig)
	}
	if ig.Conversion.StringFixed(1) != "50.0" {
		t.Errorf("expected 50.0%% conversion, got %s", ig.Conversion.StringFixed(1))
	}

	ref := stats[1]
	if ref.Source != "referral" || ref.Total != 1 || ref.Converted != 0 {
		t.Errorf("unexpected referral stats: %+v", ref)
	}
	if !ref.Conversion.IsZero() {
		t.Errorf("expected zero conversion, got %s", ref.Conversion)
	}
}

func TestConversionStatsEmptyWindow(t *testing.T) {
	called := false
	repo := &fakeRepository{
		listForPeriodFn: func(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*lead.Lead, error) {
			called = true
			return nil, nil
		},
	}
	svc := newService(repo)

	w := analytics.Range(day(2024, time.March, 10), day(2024, time.March, 1))
	stats, err := svc.ConversionStats(context.Background(), pkg.GenerateULIDObject(), "", w)
	if err != nil {
		t.Fatalf("ConversionStats returned error: %v", err)
	}
	if stats != nil {
		t.Errorf("expected no stats for an empty window, got %+v", stats)
	}
	if called {
		t.Error("repository should not be queried for an empty window")
	}
}
