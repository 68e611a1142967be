package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lifetrace-app/lifetrace/pkg/domain/interfaces"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// KeywordUseCase serves read access to persisted life keywords.
type KeywordUseCase struct {
	repo interfaces.Repository
}

func NewKeywordUseCase(repo interfaces.Repository) *KeywordUseCase {
	return &KeywordUseCase{repo: repo}
}

// ListByPeriod returns the user's keywords for a period type, newest first.
func (uc *KeywordUseCase) ListByPeriod(ctx context.Context, userID string, periodType types.PeriodType) ([]*model.LifeKeyword, error) {
	if err := periodType.Validate(); err != nil {
		return nil, err
	}

	keywords, err := uc.repo.Keyword().ListByPeriod(ctx, userID, periodType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list keywords",
			goerr.V(UserIDKey, userID), goerr.V(PeriodTypeKey, periodType))
	}

	return keywords, nil
}
