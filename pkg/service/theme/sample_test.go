package theme_test

import (
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/service/theme"
)

func memberCluster(n int) *model.ThemeCluster {
	c := &model.ThemeCluster{Key: "location:walk"}
	for i := 0; i < n; i++ {
		c.Members = append(c.Members, vec(fmt.Sprintf("v%d", i), types.DataTypeLocation, "walk", 1, 0))
	}
	return c
}

func TestSample(t *testing.T) {
	t.Run("small clusters return all members", func(t *testing.T) {
		sample := theme.Sample(memberCluster(3))
		gt.Array(t, sample).Length(3)
		gt.Value(t, sample[0].ID).Equal("v0")
		gt.Value(t, sample[2].ID).Equal("v2")
	})

	t.Run("large clusters are capped", func(t *testing.T) {
		sample := theme.Sample(memberCluster(100))
		gt.Array(t, sample).Length(theme.MaxSampleSize)
	})

	t.Run("stride sampling spreads across the cluster", func(t *testing.T) {
		sample := theme.Sample(memberCluster(10))
		gt.Array(t, sample).Length(5)
		gt.Value(t, sample[0].ID).Equal("v0")
		gt.Value(t, sample[1].ID).Equal("v2")
		gt.Value(t, sample[2].ID).Equal("v4")
		gt.Value(t, sample[3].ID).Equal("v6")
		gt.Value(t, sample[4].ID).Equal("v8")
	})

	t.Run("deterministic", func(t *testing.T) {
		c := memberCluster(23)
		first := theme.Sample(c)
		second := theme.Sample(c)
		gt.Value(t, len(first)).Equal(len(second))
		for i := range first {
			gt.Value(t, first[i].ID).Equal(second[i].ID)
		}
	})

	t.Run("does not alias the member slice", func(t *testing.T) {
		c := memberCluster(2)
		sample := theme.Sample(c)
		sample[0] = nil
		gt.Value(t, c.Members[0].ID).Equal("v0")
	})
}
