package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

type keywordRepository struct {
	mu       sync.RWMutex
	keywords map[string]map[model.LifeKeywordID]*model.LifeKeyword // userID -> id -> keyword
}

func newKeywordRepository() *keywordRepository {
	return &keywordRepository{
		keywords: make(map[string]map[model.LifeKeywordID]*model.LifeKeyword),
	}
}

func (r *keywordRepository) AppendAll(ctx context.Context, keywords []*model.LifeKeyword) ([]model.LifeKeywordID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	ids := make([]model.LifeKeywordID, 0, len(keywords))
	for _, kw := range keywords {
		if kw.ID == "" {
			kw.ID = model.NewLifeKeywordID()
		}
		kw.CreatedAt = now

		if _, exists := r.keywords[kw.UserID][kw.ID]; exists {
			return nil, goerr.New("keyword already exists", goerr.V("id", kw.ID))
		}

		if r.keywords[kw.UserID] == nil {
			r.keywords[kw.UserID] = make(map[model.LifeKeywordID]*model.LifeKeyword)
		}
		copied := *kw
		r.keywords[kw.UserID][kw.ID] = &copied
		ids = append(ids, kw.ID)
	}

	return ids, nil
}

func (r *keywordRepository) Get(ctx context.Context, userID string, id model.LifeKeywordID) (*model.LifeKeyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kw, ok := r.keywords[userID][id]
	if !ok {
		return nil, goerr.Wrap(ErrNotFound, "keyword not found", goerr.V("id", id))
	}

	copied := *kw
	return &copied, nil
}

func (r *keywordRepository) ListByPeriod(ctx context.Context, userID string, periodType types.PeriodType) ([]*model.LifeKeyword, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.LifeKeyword, 0)
	for _, kw := range r.keywords[userID] {
		if kw.PeriodType != periodType {
			continue
		}
		copied := *kw
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}
