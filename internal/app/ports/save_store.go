package ports

import (
	"context"

	"ogvalley/internal/domain/valley"
)

// SaveStore keeps whole-world snapshots under a key. Load returns
// ErrNotFound when nothing is stored.
type SaveStore interface {
	Load(ctx context.Context, key string) (valley.SaveData, error)
	Save(ctx context.Context, key string, data valley.SaveData) error
	Delete(ctx context.Context, key string) error
}
