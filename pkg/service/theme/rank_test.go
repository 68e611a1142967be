package theme_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model/config"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/service/theme"
)

func buildClusters(sizes map[string]int) []*model.EmbeddingVector {
	vectors := make([]*model.EmbeddingVector, 0)
	i := 0
	for label, n := range sizes {
		for j := 0; j < n; j++ {
			vectors = append(vectors, vec(fmt.Sprintf("v%d", i), types.DataTypeLocation, label, 1, 0, 0))
			i++
		}
	}
	return vectors
}

func TestRank(t *testing.T) {
	weekly := config.PeriodConfig{Type: types.PeriodWeekly, MaxKeywords: 3, MinDataPoints: 2}

	t.Run("larger cluster outranks smaller at equal cohesion", func(t *testing.T) {
		// 10 vectors split 7/3: identical values give both clusters
		// cohesion 1, so sqrt(size) decides.
		vectors := make([]*model.EmbeddingVector, 0, 10)
		for i := 0; i < 7; i++ {
			vectors = append(vectors, vec(fmt.Sprintf("a%d", i), types.DataTypeLocation, "badminton", 1, 0))
		}
		for i := 0; i < 3; i++ {
			vectors = append(vectors, vec(fmt.Sprintf("b%d", i), types.DataTypeVoice, "journal", 0, 1))
		}

		ranked := theme.Rank(theme.Cluster(vectors), weekly)
		gt.Array(t, ranked).Length(2)
		gt.Value(t, ranked[0].Key).Equal("location:badminton")
		gt.Value(t, ranked[0].Size()).Equal(7)
		gt.Value(t, ranked[1].Key).Equal("voice:journal")
	})

	t.Run("truncates to period cap", func(t *testing.T) {
		vectors := buildClusters(map[string]int{"a": 1, "b": 1, "c": 1, "d": 1, "e": 1})

		ranked := theme.Rank(theme.Cluster(vectors), weekly)
		gt.Array(t, ranked).Length(3)
	})

	t.Run("equal score and size break ties by key", func(t *testing.T) {
		vectors := buildClusters(map[string]int{"zebra": 2, "apple": 2})

		ranked := theme.Rank(theme.Cluster(vectors), weekly)
		gt.Array(t, ranked).Length(2)
		gt.Value(t, ranked[0].Key).Equal("location:apple")
		gt.Value(t, ranked[1].Key).Equal("location:zebra")
	})

	t.Run("rejects period below minimum data points", func(t *testing.T) {
		cfg := config.PeriodConfig{Type: types.PeriodMonthly, MaxKeywords: 5, MinDataPoints: 5}
		vectors := buildClusters(map[string]int{"a": 2, "b": 2})

		ranked := theme.Rank(theme.Cluster(vectors), cfg)
		gt.Array(t, ranked).Length(0)
	})

	t.Run("does not mutate input order", func(t *testing.T) {
		vectors := buildClusters(map[string]int{"a": 1, "b": 3})
		clusters := theme.Cluster(vectors)
		firstKey := clusters[0].Key

		theme.Rank(clusters, weekly)
		gt.Value(t, clusters[0].Key).Equal(firstKey)
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		cfg := config.PeriodConfig{Type: types.PeriodWeekly, MaxKeywords: 3, MinDataPoints: 0}
		gt.Array(t, theme.Rank(nil, cfg)).Length(0)
	})
}
