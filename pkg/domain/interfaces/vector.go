package interfaces

import (
	"context"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
)

// VectorRepository is the read-only view of the external vector store.
// The store's collections do not share a reliable date field, so queries
// filter by user only; callers narrow to a time window client-side.
type VectorRepository interface {
	// QueryByUser returns up to topK vectors for the user, with raw
	// metadata included for timestamp resolution.
	QueryByUser(ctx context.Context, userID string, topK int) ([]*model.EmbeddingVector, error)
}
