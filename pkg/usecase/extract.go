package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lifetrace-app/lifetrace/pkg/domain/interfaces"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model/config"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
	"github.com/lifetrace-app/lifetrace/pkg/service/labeler"
	"github.com/lifetrace-app/lifetrace/pkg/service/theme"
	"github.com/lifetrace-app/lifetrace/pkg/utils/logging"
)

// maxConcurrentLabels bounds the labeling fan-out to respect the LLM
// provider's rate limits.
const maxConcurrentLabels = 5

// ExtractUseCase runs the thematic cluster and keyword extraction engine
// for one (user, period) invocation. Invocations share no mutable state,
// so different users may run in parallel without coordination.
type ExtractUseCase struct {
	repo      interfaces.Repository
	labeler   labeler.Service
	cfg       *config.ExtractionConfig
	queryTopK int
}

// NewExtractUseCase creates a new ExtractUseCase instance
func NewExtractUseCase(repo interfaces.Repository, labelerSvc labeler.Service, cfg *config.ExtractionConfig) *ExtractUseCase {
	if cfg == nil {
		cfg = config.DefaultExtractionConfig()
	}
	return &ExtractUseCase{
		repo:      repo,
		labeler:   labelerSvc,
		cfg:       cfg,
		queryTopK: defaultQueryTopK,
	}
}

// ExtractResult reports what one invocation did. A zero-keyword result
// with a nil error means the run succeeded and found no significant
// themes; callers must not treat it as a failure.
type ExtractResult struct {
	UserID       string
	Window       *model.PeriodWindow
	TotalVectors int
	ClusterCount int
	Synthesized  int
	Skipped      int // clusters dropped on labeler failure
	GatedOut     int // candidates below the confidence floor
	KeywordIDs   []model.LifeKeywordID
	Keywords     []*model.LifeKeyword
}

// Extract gathers the user's vectors for the period containing ref,
// clusters and ranks them, labels the top clusters, and persists the
// keywords that clear the confidence floor. Persistence is all-or-nothing:
// nothing is written until every retained cluster has been labeled or
// explicitly skipped.
func (uc *ExtractUseCase) Extract(ctx context.Context, userID string, periodType types.PeriodType, ref time.Time) (*ExtractResult, error) {
	logger := logging.From(ctx)

	if uc.labeler == nil {
		return nil, goerr.Wrap(ErrLabelerNotAvailable, "cannot extract keywords")
	}

	periodCfg, ok := uc.cfg.Period(periodType)
	if !ok {
		return nil, goerr.Wrap(ErrPeriodNotConfigured, "unknown period type",
			goerr.V(PeriodTypeKey, periodType))
	}

	window, err := model.PeriodWindowFor(periodType, ref)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute period window")
	}

	result := &ExtractResult{UserID: userID, Window: window}

	vectors, err := uc.gather(ctx, userID, window)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to gather vectors",
			goerr.V(UserIDKey, userID), goerr.V(PeriodTypeKey, periodType))
	}
	result.TotalVectors = len(vectors)

	clusters := theme.Cluster(vectors)
	result.ClusterCount = len(clusters)

	ranked := theme.Rank(clusters, periodCfg)
	if len(ranked) == 0 {
		logger.Info("insufficient data for period, no keywords extracted",
			"user_id", userID,
			"period", window.Label,
			"total_vectors", result.TotalVectors,
			"min_data_points", periodCfg.MinDataPoints)
		return result, nil
	}

	// Label retained clusters concurrently. A labeler failure only skips
	// its own cluster, so workers never return an error to the group.
	candidates := make([]*model.LifeKeyword, len(ranked))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLabels)
	for i, cluster := range ranked {
		g.Go(func() error {
			candidates[i] = uc.synthesize(gctx, userID, cluster, window, result.TotalVectors)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, goerr.Wrap(err, "keyword synthesis failed")
	}

	// No partial persistence: a cancelled invocation writes nothing.
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "extraction cancelled before persistence")
	}

	survivors := make([]*model.LifeKeyword, 0, len(candidates))
	for _, kw := range candidates {
		if kw == nil {
			result.Skipped++
			continue
		}
		result.Synthesized++
		if kw.Confidence < uc.cfg.MinConfidence {
			result.GatedOut++
			logger.Debug("keyword below confidence floor",
				"keyword", kw.Keyword,
				"confidence", kw.Confidence,
				"min_confidence", uc.cfg.MinConfidence)
			continue
		}
		survivors = append(survivors, kw)
	}

	if len(survivors) > 0 {
		ids, err := uc.repo.Keyword().AppendAll(ctx, survivors)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to persist keywords",
				goerr.V(UserIDKey, userID), goerr.V(PeriodTypeKey, periodType))
		}
		result.KeywordIDs = ids
		result.Keywords = survivors
	}

	logger.Info("keyword extraction completed",
		"user_id", userID,
		"period", window.Label,
		"total_vectors", result.TotalVectors,
		"clusters", result.ClusterCount,
		"synthesized", result.Synthesized,
		"skipped", result.Skipped,
		"gated_out", result.GatedOut,
		"persisted", len(result.KeywordIDs))

	return result, nil
}
