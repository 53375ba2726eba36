package ports

import (
	"context"

	"ogvalley/internal/domain/valley"
)

// WorldSession serializes every read and write of the live World. fn runs
// with exclusive access and must not retain w after it returns.
type WorldSession interface {
	Do(ctx context.Context, fn func(w *valley.World) error) error
}
