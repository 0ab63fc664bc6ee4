package lead

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, leadID ulid.ULID) error
	GetByIDAndOwner(ctx context.Context, leadID, ownerID ulid.ULID) (*Lead, error)
	List(ctx context.Context, ownerID ulid.ULID, companyTag string, status Status, pagination *pkg.PaginationParams) ([]*Lead, int64, error)
	ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*Lead, error)
}
