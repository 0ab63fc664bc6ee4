package shared

import (
	"context"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/errors"
)

type OwnerCheckerService struct {
	owners OwnerChecker
}

func NewOwnerCheckerService(owners OwnerChecker) *OwnerCheckerService {
	return &OwnerCheckerService{owners: owners}
}

func (s *OwnerCheckerService) EnsureOwnerExists(ctx context.Context, ownerID ulid.ULID) error {
	if s.owners == nil {
		return appErrors.ErrInternalServer
	}

	if err := s.owners.Exists(ctx, ownerID); err != nil {
		return appErrors.ErrUserNotFound.WithError(err)
	}

	return nil
}

// BaseService is embedded by domain services that scope every operation to
// an owner.
type BaseService struct {
	OwnerChecker *OwnerCheckerService
}

func (b *BaseService) EnsureOwnerExists(ctx context.Context, ownerID ulid.ULID) error {
	if b.OwnerChecker == nil {
		return appErrors.ErrInternalServer
	}
	return b.OwnerChecker.EnsureOwnerExists(ctx, ownerID)
}
