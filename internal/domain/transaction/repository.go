package transaction

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Lassen11/profit-pulse-tracker-59-sub000/internal/pkg"
)

type ListFilter struct {
	Kind       string
	CompanyTag string
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID) error
	GetByIDAndOwner(ctx context.Context, transactionID, ownerID ulid.ULID) (*Transaction, error)
	List(ctx context.Context, ownerID ulid.ULID, filter ListFilter, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)
	// ListForPeriod returns all records of the owner (optionally scoped to a
	// company) dated inside [from, to], both ends inclusive. Reports consume
	// this list wholesale and aggregate in memory.
	ListForPeriod(ctx context.Context, ownerID ulid.ULID, companyTag string, from, to time.Time) ([]*Transaction, error)
}
