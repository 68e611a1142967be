package usecase

import (
	"github.com/lifetrace-app/lifetrace/pkg/domain/interfaces"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model/config"
	"github.com/lifetrace-app/lifetrace/pkg/service/labeler"
)

type UseCases struct {
	repo          interfaces.Repository
	extractionCfg *config.ExtractionConfig
	Extract       *ExtractUseCase
	Keyword       *KeywordUseCase
}

type Option func(*UseCases)

func WithExtractionConfig(cfg *config.ExtractionConfig) Option {
	return func(uc *UseCases) {
		uc.extractionCfg = cfg
	}
}

func New(repo interfaces.Repository, labelerSvc labeler.Service, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:          repo,
		extractionCfg: config.DefaultExtractionConfig(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Extract = NewExtractUseCase(repo, labelerSvc, uc.extractionCfg)
	uc.Keyword = NewKeywordUseCase(repo)

	return uc
}
