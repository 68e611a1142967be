package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/lifetrace-app/lifetrace/pkg/domain/interfaces"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/repository/firestore"
	"github.com/lifetrace-app/lifetrace/pkg/repository/memory"
)

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func newKeyword(userID, keyword string, pt types.PeriodType) *model.LifeKeyword {
	return &model.LifeKeyword{
		UserID:           userID,
		Keyword:          keyword,
		Description:      "description of " + keyword,
		Emoji:            "🏸",
		Category:         types.CategoryFitness,
		PeriodType:       pt,
		PeriodLabel:      "2026-W36",
		PeriodStart:      time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		PeriodEnd:        time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond),
		Confidence:       0.87,
		DominanceScore:   0.4,
		DataPointCount:   12,
		SampleDataPoints: []string{"badminton club", "evening rally"},
		RelatedDataTypes: []types.DataType{types.DataTypeLocation, types.DataTypeHealth},
		LabelModel:       "gemini-2.0-flash",
	}
}

func runKeywordRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("AppendAll assigns IDs and timestamps", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		keywords := []*model.LifeKeyword{
			newKeyword("user-1", "Badminton", types.PeriodWeekly),
			newKeyword("user-1", "Morning Runs", types.PeriodWeekly),
		}

		ids, err := repo.Keyword().AppendAll(ctx, keywords)
		gt.NoError(t, err).Required()
		gt.Array(t, ids).Length(2)
		gt.Value(t, ids[0]).NotEqual(ids[1])
	})

	t.Run("Get retrieves a persisted keyword", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		kw := newKeyword("user-1", "Badminton", types.PeriodWeekly)
		ids, err := repo.Keyword().AppendAll(ctx, []*model.LifeKeyword{kw})
		gt.NoError(t, err).Required()

		retrieved, err := repo.Keyword().Get(ctx, "user-1", ids[0])
		gt.NoError(t, err).Required()

		gt.Value(t, retrieved.ID).Equal(ids[0])
		gt.Value(t, retrieved.UserID).Equal("user-1")
		gt.Value(t, retrieved.Keyword).Equal("Badminton")
		gt.Value(t, retrieved.Description).Equal(kw.Description)
		gt.Value(t, retrieved.Emoji).Equal("🏸")
		gt.Value(t, retrieved.Category).Equal(types.CategoryFitness)
		gt.Value(t, retrieved.PeriodType).Equal(types.PeriodWeekly)
		gt.Value(t, retrieved.PeriodLabel).Equal("2026-W36")
		gt.Number(t, retrieved.Confidence).Equal(0.87)
		gt.Number(t, retrieved.DominanceScore).Equal(0.4)
		gt.Value(t, retrieved.DataPointCount).Equal(12)
		gt.Array(t, retrieved.SampleDataPoints).Length(2)
		gt.Array(t, retrieved.RelatedDataTypes).Length(2)
		gt.Value(t, retrieved.LabelModel).Equal("gemini-2.0-flash")
		gt.Bool(t, retrieved.CreatedAt.IsZero()).False()
	})

	t.Run("Get does not cross users", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		ids, err := repo.Keyword().AppendAll(ctx, []*model.LifeKeyword{
			newKeyword("user-1", "Badminton", types.PeriodWeekly),
		})
		gt.NoError(t, err).Required()

		_, err = repo.Keyword().Get(ctx, "user-2", ids[0])
		gt.Error(t, err)
	})

	t.Run("Get returns error for unknown keyword", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Keyword().Get(ctx, "user-1", model.NewLifeKeywordID())
		gt.Error(t, err)
	})

	t.Run("ListByPeriod filters by period type", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Keyword().AppendAll(ctx, []*model.LifeKeyword{
			newKeyword("user-1", "Badminton", types.PeriodWeekly),
			newKeyword("user-1", "Morning Runs", types.PeriodWeekly),
			newKeyword("user-1", "Quarter of Travel", types.PeriodQuarterly),
		})
		gt.NoError(t, err).Required()

		weekly, err := repo.Keyword().ListByPeriod(ctx, "user-1", types.PeriodWeekly)
		gt.NoError(t, err).Required()
		gt.Array(t, weekly).Length(2)

		quarterly, err := repo.Keyword().ListByPeriod(ctx, "user-1", types.PeriodQuarterly)
		gt.NoError(t, err).Required()
		gt.Array(t, quarterly).Length(1)
		gt.Value(t, quarterly[0].Keyword).Equal("Quarter of Travel")

		yearly, err := repo.Keyword().ListByPeriod(ctx, "user-1", types.PeriodYearly)
		gt.NoError(t, err).Required()
		gt.Array(t, yearly).Length(0)
	})

	t.Run("ListByPeriod is scoped to the user", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Keyword().AppendAll(ctx, []*model.LifeKeyword{
			newKeyword("user-1", "Badminton", types.PeriodWeekly),
			newKeyword("user-2", "Piano Practice", types.PeriodWeekly),
		})
		gt.NoError(t, err).Required()

		listed, err := repo.Keyword().ListByPeriod(ctx, "user-1", types.PeriodWeekly)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(1)
		gt.Value(t, listed[0].Keyword).Equal("Badminton")
	})

	t.Run("history accumulates across runs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first := newKeyword("user-1", "Badminton", types.PeriodWeekly)
		_, err := repo.Keyword().AppendAll(ctx, []*model.LifeKeyword{first})
		gt.NoError(t, err).Required()

		second := newKeyword("user-1", "Badminton", types.PeriodWeekly)
		second.PeriodLabel = "2026-W37"
		_, err = repo.Keyword().AppendAll(ctx, []*model.LifeKeyword{second})
		gt.NoError(t, err).Required()

		listed, err := repo.Keyword().ListByPeriod(ctx, "user-1", types.PeriodWeekly)
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(2)
	})
}

func TestKeywordRepository_Memory(t *testing.T) {
	runKeywordRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestKeywordRepository_Firestore(t *testing.T) {
	runKeywordRepositoryTest(t, newFirestoreRepository)
}
