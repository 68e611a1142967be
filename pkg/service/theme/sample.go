package theme

import (
	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
)

// MaxSampleSize caps the evidence passed to the labeling step.
const MaxSampleSize = 5

// Sample picks up to MaxSampleSize representative members by fixed-stride
// selection over gathering order. Stride sampling spreads the evidence
// across the whole period instead of front-loading it, and needs no seed
// to stay deterministic.
func Sample(c *model.ThemeCluster) []*model.EmbeddingVector {
	n := len(c.Members)
	if n <= MaxSampleSize {
		out := make([]*model.EmbeddingVector, n)
		copy(out, c.Members)
		return out
	}

	out := make([]*model.EmbeddingVector, 0, MaxSampleSize)
	for i := 0; i < MaxSampleSize; i++ {
		out = append(out, c.Members[i*n/MaxSampleSize])
	}
	return out
}
