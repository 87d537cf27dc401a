package ports

import (
	"context"

	"github.com/google/uuid"

	"vemio-dashboard/internal/views/core/domain"
)

type ViewStorePort interface {
	Save(ctx context.Context, v domain.View) error

	// Get returns false when the view does not exist or has expired.
	Get(ctx context.Context, id uuid.UUID) (domain.View, bool)

	// Update applies fn to the stored view atomically and returns the result.
	Update(ctx context.Context, id uuid.UUID, fn func(v *domain.View)) (domain.View, bool)

	Delete(ctx context.Context, id uuid.UUID) bool
}
