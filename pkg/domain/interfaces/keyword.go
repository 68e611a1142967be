package interfaces

import (
	"context"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// KeywordRepository persists extracted life keywords. The collection is
// append-only: existing documents are never updated in place.
type KeywordRepository interface {
	// AppendAll writes the keywords as a single batch and returns their
	// generated IDs in input order. Keywords without an ID are assigned
	// one; CreatedAt is set to the write time.
	AppendAll(ctx context.Context, keywords []*model.LifeKeyword) ([]model.LifeKeywordID, error)

	// Get retrieves a keyword by ID
	Get(ctx context.Context, userID string, id model.LifeKeywordID) (*model.LifeKeyword, error)

	// ListByPeriod returns the user's keywords for a period type, newest
	// first.
	ListByPeriod(ctx context.Context, userID string, periodType types.PeriodType) ([]*model.LifeKeyword, error)
}
