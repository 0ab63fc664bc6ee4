package user

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Upsert(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id ulid.ULID) (*User, error)
	Exists(ctx context.Context, id ulid.ULID) error
}
