package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/repository/memory"
)

func TestVectorQueryByUser(t *testing.T) {
	ctx := context.Background()

	newVec := func(id string) *model.EmbeddingVector {
		return &model.EmbeddingVector{
			ID:       id,
			DataType: types.DataTypeLocation,
			Values:   []float32{1, 0},
		}
	}

	t.Run("returns seeded vectors in insertion order", func(t *testing.T) {
		repo := memory.New()
		repo.Seed("user-1", newVec("v1"), newVec("v2"), newVec("v3"))

		vectors, err := repo.Vector().QueryByUser(ctx, "user-1", 100)
		gt.NoError(t, err)
		gt.Array(t, vectors).Length(3)
		gt.Value(t, vectors[0].ID).Equal("v1")
		gt.Value(t, vectors[2].ID).Equal("v3")
	})

	t.Run("honors topK", func(t *testing.T) {
		repo := memory.New()
		for i := 0; i < 10; i++ {
			repo.Seed("user-1", newVec(fmt.Sprintf("v%d", i)))
		}

		vectors, err := repo.Vector().QueryByUser(ctx, "user-1", 4)
		gt.NoError(t, err)
		gt.Array(t, vectors).Length(4)
	})

	t.Run("unknown user returns empty", func(t *testing.T) {
		repo := memory.New()

		vectors, err := repo.Vector().QueryByUser(ctx, "nobody", 100)
		gt.NoError(t, err)
		gt.Array(t, vectors).Length(0)
	})

	t.Run("results are copies", func(t *testing.T) {
		repo := memory.New()
		repo.Seed("user-1", newVec("v1"))

		first, err := repo.Vector().QueryByUser(ctx, "user-1", 1)
		gt.NoError(t, err)
		first[0].ActivityLabel = "mutated"

		second, err := repo.Vector().QueryByUser(ctx, "user-1", 1)
		gt.NoError(t, err)
		gt.Value(t, second[0].ActivityLabel).Equal("")
	})
}
