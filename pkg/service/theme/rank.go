package theme

import (
	"sort"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/domain/model/config"
)

// Rank orders clusters by rank score and truncates to the period's cap.
// When the total vector count is below the period's minimum the whole
// period is rejected and an empty slice is returned: too little evidence
// to synthesize anything.
func Rank(clusters []*model.ThemeCluster, cfg config.PeriodConfig) []*model.ThemeCluster {
	total := 0
	for _, c := range clusters {
		total += c.Size()
	}
	if total < cfg.MinDataPoints {
		return nil
	}

	ranked := make([]*model.ThemeCluster, len(clusters))
	copy(ranked, clusters)

	// Ties break by larger membership, then by key so ordering stays
	// reproducible across runs.
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RankScore != ranked[j].RankScore {
			return ranked[i].RankScore > ranked[j].RankScore
		}
		if ranked[i].Size() != ranked[j].Size() {
			return ranked[i].Size() > ranked[j].Size()
		}
		return ranked[i].Key < ranked[j].Key
	})

	if cfg.MaxKeywords > 0 && len(ranked) > cfg.MaxKeywords {
		ranked = ranked[:cfg.MaxKeywords]
	}

	return ranked
}
