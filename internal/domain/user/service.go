package user

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Register records an owner provisioned upstream. Called on the first
// request carrying an identity this service has not seen yet.
func (s *Service) Register(ctx context.Context, user *User) error {
	if pkg.IsEmptyULID(user.Id) {
		user.Id = pkg.GenerateULIDObject()
	}
	if err := s.Repository.Upsert(ctx, user); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	u, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return u, nil
}

func (s *Service) Exists(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Exists(ctx, id)
}
