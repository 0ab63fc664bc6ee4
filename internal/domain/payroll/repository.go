package payroll

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, employee *Employee) error
	Update(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, employeeID ulid.ULID) error
	GetByIDAndOwner(ctx context.Context, employeeID, ownerID ulid.ULID) (*Employee, error)
	List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*Employee, int64, error)
	ListAll(ctx context.Context, ownerID ulid.ULID) ([]*Employee, error)
}
