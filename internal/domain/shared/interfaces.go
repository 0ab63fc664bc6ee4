package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type OwnerChecker interface {
	Exists(ctx context.Context, ownerID ulid.ULID) error
}
