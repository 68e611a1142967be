package usecase

import (
	"context"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/service/labeler"
	"github.com/lifetrace-app/lifetrace/pkg/service/theme"
	"github.com/lifetrace-app/lifetrace/pkg/utils/logging"
)

// synthesize labels one cluster and assembles the keyword candidate.
// Labeler failures (timeout, malformed response) are recoverable: the
// cluster is logged and dropped, returning nil.
func (uc *ExtractUseCase) synthesize(ctx context.Context, userID string, cluster *model.ThemeCluster, window *model.PeriodWindow, totalVectors int) *model.LifeKeyword {
	sample := theme.Sample(cluster)
	snippets := make([]string, 0, len(sample))
	for _, v := range sample {
		snippets = append(snippets, v.Snippet())
	}

	category := theme.InferCategory(cluster.Label)

	labeled, err := uc.labeler.Label(ctx, labeler.Input{
		Samples:     snippets,
		DataTypes:   cluster.RelatedDataTypes(),
		Category:    category,
		PeriodType:  window.Type,
		PeriodLabel: window.Label,
	})
	if err != nil {
		logging.From(ctx).Warn("skipping cluster, labeling failed",
			"user_id", userID,
			"cluster_key", cluster.Key,
			"members", cluster.Size(),
			"error", err.Error())
		return nil
	}

	return &model.LifeKeyword{
		UserID:           userID,
		Keyword:          labeled.Keyword,
		Description:      labeled.Description,
		Emoji:            labeled.Emoji,
		Category:         category,
		PeriodType:       window.Type,
		PeriodLabel:      window.Label,
		PeriodStart:      window.Start,
		PeriodEnd:        window.End,
		Confidence:       cluster.Cohesion,
		DominanceScore:   float64(cluster.Size()) / float64(totalVectors),
		DataPointCount:   cluster.Size(),
		SampleDataPoints: snippets,
		RelatedDataTypes: cluster.RelatedDataTypes(),
		LabelModel:       uc.labeler.Model(),
	}
}
