package shared

import (
	"context"
	"io"
)

// ImageStore persists uploaded files (payment proofs, identity documents)
// and returns an opaque reference for later retrieval.
type ImageStore interface {
	Save(ctx context.Context, kind, filename string, data io.Reader) (string, error)
}
