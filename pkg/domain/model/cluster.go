package model

import (
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// ThemeCluster is a transient grouping of vectors that share a composite
// theme key. Centroid, Cohesion and RankScore are computed once when
// membership is finalized; clusters are never updated incrementally.
type ThemeCluster struct {
	Key      string
	DataType types.DataType
	Label    string // normalized activity label, empty for label-less clusters
	Members  []*EmbeddingVector
	Centroid []float32
	Cohesion float64 // mean cosine similarity to centroid, in [0,1]

	// RankScore is Cohesion * sqrt(len(Members)): cohesion weighted so
	// that larger recurring themes outrank small tight ones.
	RankScore float64
}

// Size returns the number of member vectors.
func (c *ThemeCluster) Size() int {
	return len(c.Members)
}

// RelatedDataTypes returns the distinct data types among members, in first
// occurrence order.
func (c *ThemeCluster) RelatedDataTypes() []types.DataType {
	seen := make(map[types.DataType]bool, 2)
	result := make([]types.DataType, 0, 2)
	for _, m := range c.Members {
		if !seen[m.DataType] {
			seen[m.DataType] = true
			result = append(result, m.DataType)
		}
	}
	return result
}
