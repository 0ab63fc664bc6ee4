package company

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
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

func (s *Service) Create(ctx context.Context, company *Company) error {
	if err := s.EnsureOwnerExists(ctx, company.OwnerId); err != nil {
		return err
	}

	company.Name = shared.NormalizeName(company.Name)
	if company.Name == "" {
		return appErrors.NewValidationError("name", "name is required")
	}
	company.Tag = shared.NormalizeName(company.Tag)
	if company.Tag == "" {
		company.Tag = company.Name
	}

	company.Id = pkg.GenerateULIDObject()

	if err := s.Repository.Create(ctx, company); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("company")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Update(ctx context.Context, company *Company) error {
	if err := s.EnsureOwnerExists(ctx, company.OwnerId); err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, company.Id, company.OwnerId)
	if err != nil {
		return err
	}

	if name := shared.NormalizeName(company.Name); name != "" {
		existing.Name = name
	}
	if tag := shared.NormalizeName(company.Tag); tag != "" {
		existing.Tag = tag
	}
	if company.Color != "" {
		existing.Color = company.Color
	}

	if err := s.Repository.Update(ctx, existing); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("company")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, companyID, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, companyID, ownerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, companyID, ownerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, companyID, ownerID ulid.ULID) (*Company, error) {
	company, err := s.Repository.GetByID(ctx, companyID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCompanyNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return company, nil
}

func (s *Service) List(ctx context.Context, ownerID ulid.ULID) ([]*Company, error) {
	companies, err := s.Repository.List(ctx, ownerID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return companies, nil
}

// ResolveTag validates a company filter supplied by a client. Empty means
// "all companies" and passes through.
func (s *Service) ResolveTag(ctx context.Context, tag string, ownerID ulid.ULID) (string, error) {
	if tag == "" {
		return "", nil
	}
	company, err := s.Repository.GetByTag(ctx, tag, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", appErrors.ErrCompanyNotFound
		}
		return "", appErrors.NewDatabaseError(err)
	}
	return company.Tag, nil
}
