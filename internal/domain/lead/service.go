package lead

import (
	"context"
	"errors"
	"sort"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
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

func (s *Service) Create(ctx context.Context, lead *Lead) error {
	if err := s.EnsureOwnerExists(ctx, lead.OwnerId); err != nil {
		return err
	}

	lead.Source = shared.NormalizeName(lead.Source)
	if lead.Source == "" {
		return appErrors.NewValidationError("source", "source is required")
	}
	if lead.Status == "" {
		lead.Status = StatusNew
	}
	if !lead.Status.IsValid() {
		return appErrors.NewValidationError("status", "unknown lead status")
	}
	if lead.Date.IsZero() {
		return appErrors.NewValidationError("date", "date is required")
	}

	lead.Id = pkg.GenerateULIDObject()

	if err := s.Repository.Create(ctx, lead); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateStatus(ctx context.Context, leadID, ownerID ulid.ULID, status Status) error {
	if !status.IsValid() {
		return appErrors.NewValidationError("status", "unknown lead status")
	}

	lead, err := s.GetByID(ctx, leadID, ownerID)
	if err != nil {
		return err
	}

	lead.Status = status
	if err := s.Repository.Update(ctx, lead); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, leadID, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, leadID, ownerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, leadID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, leadID, ownerID ulid.ULID) (*Lead, error) {
	lead, err := s.Repository.GetByIDAndOwner(ctx, leadID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrLeadNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return lead, nil
}

func (s *Service) List(ctx context.Context, ownerID ulid.ULID, companyTag string, status Status, pagination *pkg.PaginationParams) ([]*Lead, int64, error) {
	leads, total, err := s.Repository.List(ctx, ownerID, companyTag, status, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return leads, total, nil
}

// ConversionStats builds the per-source funnel for leads dated inside the
// window. Sources come out ordered by descending lead count, name-ascending
// on ties.
func (s *Service) ConversionStats(ctx context.Context, ownerID ulid.ULID, companyTag string, w analytics.Window) ([]SourceConversion, error) {
	if err := s.EnsureOwnerExists(ctx, ownerID); err != nil {
		return nil, err
	}
	if w.IsEmpty() {
		return nil, nil
	}

	leads, err := s.Repository.ListForPeriod(ctx, ownerID, companyTag, w.Start, w.End)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	type counter struct {
		total     int
		converted int
	}
	bySource := make(map[string]*counter)
	for _, l := range leads {
		if !w.Contains(l.Date) {
			continue
		}
		c := bySource[l.Source]
		if c == nil {
			c = &counter{}
			bySource[l.Source] = c
		}
		c.total++
		if l.Status == StatusConverted {
			c.converted++
		}
	}

	stats := make([]SourceConversion, 0, len(bySource))
	for source, c := range bySource {
		conversion := decimal.Zero
		if c.total > 0 {
			conversion = decimal.NewFromInt(int64(c.converted)).
				Div(decimal.NewFromInt(int64(c.total))).
				Mul(decimal.NewFromInt(100))
		}
		stats = append(stats, SourceConversion{
			Source:     source,
			Total:      c.total,
			Converted:  c.converted,
			Conversion: conversion,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Source < stats[j].Source
	})

	return stats, nil
}
