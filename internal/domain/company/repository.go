package company

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, companyID, ownerID ulid.ULID) error
	GetByID(ctx context.Context, companyID, ownerID ulid.ULID) (*Company, error)
	GetByTag(ctx context.Context, tag string, ownerID ulid.ULID) (*Company, error)
	List(ctx context.Context, ownerID ulid.ULID) ([]*Company, error)
}
