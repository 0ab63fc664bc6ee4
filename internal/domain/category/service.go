package category

import (
	"context"
	"errors"

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

func (s *Service) Create(ctx context.Context, category *Category) error {
	if err := s.EnsureOwnerExists(ctx, category.OwnerId); err != nil {
		return err
	}

	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "name is required")
	}
	if category.Kind != "income" && category.Kind != "expense" {
		return appErrors.NewValidationError("kind", "kind must be income or expense")
	}

	category.Id = pkg.GenerateULIDObject()
	category.IsActive = true

	if err := s.Repository.Create(ctx, category); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("category")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Update(ctx context.Context, category *Category) error {
	if err := s.EnsureOwnerExists(ctx, category.OwnerId); err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, category.Id, category.OwnerId)
	if err != nil {
		return err
	}

	if name := shared.NormalizeName(category.Name); name != "" {
		existing.Name = name
	}
	if category.Kind == "income" || category.Kind == "expense" {
		existing.Kind = category.Kind
	}
	existing.Bucket = category.Bucket

	if err := s.Repository.Update(ctx, existing); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("category")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, categoryID, ownerID ulid.ULID) error {
	if _, err := s.GetByID(ctx, categoryID, ownerID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, categoryID, ownerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, categoryID, ownerID ulid.ULID) (*Category, error) {
	category, err := s.Repository.GetByID(ctx, categoryID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return category, nil
}

func (s *Service) List(ctx context.Context, ownerID ulid.ULID) ([]*Category, error) {
	categories, err := s.Repository.List(ctx, ownerID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return categories, nil
}

// EnsureDefaults seeds the owner's default categories, including the
// special bucket labels, if the owner has none yet.
func (s *Service) EnsureDefaults(ctx context.Context, ownerID ulid.ULID) error {
	existing, err := s.Repository.List(ctx, ownerID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if len(existing) > 0 {
		return nil
	}
	if err := s.Repository.SeedDefaults(ctx, GetDefaultCategoriesForOwner(ownerID)); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// BucketTable resolves the owner's special-category mapping for the
// aggregator.
func (s *Service) BucketTable(ctx context.Context, ownerID ulid.ULID) (analytics.BucketTable, error) {
	categories, err := s.Repository.List(ctx, ownerID)
	if err != nil {
		return analytics.DefaultBuckets(), appErrors.NewDatabaseError(err)
	}
	return BucketTableForOwner(categories), nil
}
