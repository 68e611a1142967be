package memory

import (
	"context"
	"sync"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
)

type vectorRepository struct {
	mu      sync.RWMutex
	vectors map[string][]*model.EmbeddingVector // userID -> vectors, insertion order
}

func newVectorRepository() *vectorRepository {
	return &vectorRepository{
		vectors: make(map[string][]*model.EmbeddingVector),
	}
}

func (r *vectorRepository) QueryByUser(ctx context.Context, userID string, topK int) ([]*model.EmbeddingVector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.vectors[userID]
	n := len(stored)
	if topK > 0 && topK < n {
		n = topK
	}

	result := make([]*model.EmbeddingVector, 0, n)
	for _, v := range stored[:n] {
		copied := *v
		result = append(result, &copied)
	}

	return result, nil
}

// Seed loads vectors for a user. The production vector store is written by
// an external indexer; this stands in for it in development and tests.
func (m *Memory) Seed(userID string, vectors ...*model.EmbeddingVector) {
	m.vector.mu.Lock()
	defer m.vector.mu.Unlock()

	m.vector.vectors[userID] = append(m.vector.vectors[userID], vectors...)
}
