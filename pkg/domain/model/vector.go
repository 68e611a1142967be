package model

import (
	"time"

	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// EmbeddingDimension is the dimension of the embedding vector
// Gemini text-embedding-004 uses 768 dimensions
const EmbeddingDimension = 768

// EmbeddingVector is a read-only snapshot of one semantically indexed user
// event as returned by the vector store. The store's schemas are
// heterogeneous, so timestamp material is carried as raw metadata and
// resolved into OccurredAt by the gathering step.
type EmbeddingVector struct {
	ID            string
	Values        []float32
	DataType      types.DataType
	ActivityLabel string // free text, may be empty
	Metadata      map[string]any
	OccurredAt    time.Time // zero until resolved from Metadata
}

// Snippet returns a short human-readable evidence string for the vector,
// preferring the activity label over the opaque store ID.
func (v *EmbeddingVector) Snippet() string {
	if v.ActivityLabel != "" {
		return v.ActivityLabel
	}
	return v.ID
}
