package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID, ownerID ulid.ULID) error
	GetByID(ctx context.Context, categoryID, ownerID ulid.ULID) (*Category, error)
	GetByName(ctx context.Context, name string, ownerID ulid.ULID) (*Category, error)
	List(ctx context.Context, ownerID ulid.ULID) ([]*Category, error)
	SeedDefaults(ctx context.Context, categories []*Category) error
}
