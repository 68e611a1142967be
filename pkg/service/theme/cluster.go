package theme

import (
	"math"
	"strings"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// Cluster groups vectors by exact composite key and computes each group's
// centroid and cohesion. Grouping is categorical, not distance-based: one
// O(n) pass over the input, fully deterministic. Clusters are returned in
// first-occurrence order of their keys.
func Cluster(vectors []*model.EmbeddingVector) []*model.ThemeCluster {
	groups := make(map[string]*model.ThemeCluster)
	order := make([]string, 0)

	for _, v := range vectors {
		label := NormalizeLabel(v.ActivityLabel)
		key := ClusterKey(v.DataType, label)

		c, ok := groups[key]
		if !ok {
			c = &model.ThemeCluster{
				Key:      key,
				DataType: v.DataType,
				Label:    label,
			}
			groups[key] = c
			order = append(order, key)
		}
		c.Members = append(c.Members, v)
	}

	clusters := make([]*model.ThemeCluster, 0, len(order))
	for _, key := range order {
		c := groups[key]
		finalize(c)
		clusters = append(clusters, c)
	}

	return clusters
}

// NormalizeLabel case-folds and trims an activity label for keying.
func NormalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ClusterKey builds the composite grouping key. Vectors without an
// activity label cluster on data type alone.
func ClusterKey(dt types.DataType, normalizedLabel string) string {
	if normalizedLabel == "" {
		return dt.String()
	}
	return dt.String() + ":" + normalizedLabel
}

// finalize computes centroid, cohesion and rank score once membership is
// complete.
func finalize(c *model.ThemeCluster) {
	c.Centroid = centroid(c.Members)
	c.Cohesion = cohesion(c.Members, c.Centroid)
	c.RankScore = c.Cohesion * math.Sqrt(float64(len(c.Members)))
}

// centroid is the component-wise mean of the member vectors, accumulated
// in float64 to keep long sums stable.
func centroid(members []*model.EmbeddingVector) []float32 {
	if len(members) == 0 || len(members[0].Values) == 0 {
		return nil
	}

	dim := len(members[0].Values)
	sum := make([]float64, dim)
	for _, m := range members {
		if len(m.Values) != dim {
			continue
		}
		for i, v := range m.Values {
			sum[i] += float64(v)
		}
	}

	result := make([]float32, dim)
	n := float64(len(members))
	for i, s := range sum {
		result[i] = float32(s / n)
	}
	return result
}

// cohesion is the mean cosine similarity of members to the centroid,
// clamped to [0,1]. A singleton is perfectly self-similar.
func cohesion(members []*model.EmbeddingVector, centroid []float32) float64 {
	if len(members) == 1 {
		return 1.0
	}
	if len(members) == 0 || len(centroid) == 0 {
		return 0
	}

	var sum float64
	for _, m := range members {
		sum += CosineSimilarity(m.Values, centroid)
	}

	mean := sum / float64(len(members))
	return math.Max(0, math.Min(1, mean))
}

// CosineSimilarity returns the cosine of the angle between a and b.
// Zero vectors and mismatched dimensions yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
