package sale

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	Update(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, saleID ulid.ULID) error
	GetByIDAndOwner(ctx context.Context, saleID, ownerID ulid.ULID) (*Sale, error)
	List(ctx context.Context, ownerID ulid.ULID, companyTag string, pagination *pkg.PaginationParams) ([]*Sale, int64, error)
	ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*Sale, error)
	UpdateInstallment(ctx context.Context, installment *Installment) error
	ListUnpaidInstallments(ctx context.Context, ownerID ulid.ULID, companyTag string) ([]*Installment, error)
}
