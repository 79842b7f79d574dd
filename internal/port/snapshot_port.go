package port

import (
	"context"

	"github.com/nikolayk812/cart-engine/internal/domain"
)

// SnapshotRepository stores the whole cart as one unit per owner.
// Load reports found=false both when no snapshot exists and when the stored
// content is malformed: a broken snapshot is "no cart", never an error the
// cart surfaces to its caller.
type SnapshotRepository interface {
	Load(ctx context.Context, ownerID string) (items []domain.LineItem, found bool, err error)
	Save(ctx context.Context, ownerID string, items []domain.LineItem) error
	Delete(ctx context.Context, ownerID string) (bool, error)
}
