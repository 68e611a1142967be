package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lifetrace-app/lifetrace/pkg/domain/model"
	"github.com/lifetrace-app/lifetrace/pkg/utils/logging"
)

// defaultQueryTopK bounds the broad per-user fetch from the vector store.
// The store cannot filter by date across its heterogeneous schemas, so we
// over-fetch and narrow client-side.
const defaultQueryTopK = 2000

// timestampFields is checked in order during timestamp resolution; the
// first present and parseable field wins.
var timestampFields = []string{"timestamp", "date", "startDate", "createdAt", "recordedAt"}

// gather fetches the user's vectors and narrows them to the period
// window. Vectors with no resolvable timestamp are dropped. An empty
// result is normal (new users).
func (uc *ExtractUseCase) gather(ctx context.Context, userID string, window *model.PeriodWindow) ([]*model.EmbeddingVector, error) {
	vectors, err := uc.repo.Vector().QueryByUser(ctx, userID, uc.queryTopK)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query vectors", goerr.V(UserIDKey, userID))
	}

	gathered := make([]*model.EmbeddingVector, 0, len(vectors))
	unresolved := 0
	for _, v := range vectors {
		occurredAt, ok := resolveTimestamp(v)
		if !ok {
			unresolved++
			continue
		}
		v.OccurredAt = occurredAt
		if window.Contains(occurredAt) {
			gathered = append(gathered, v)
		}
	}

	if unresolved > 0 {
		logging.From(ctx).Debug("dropped vectors without resolvable timestamp",
			"user_id", userID, "dropped", unresolved)
	}

	return gathered, nil
}

// resolveTimestamp derives the event instant from heterogeneous metadata.
func resolveTimestamp(v *model.EmbeddingVector) (time.Time, bool) {
	if !v.OccurredAt.IsZero() {
		return v.OccurredAt, true
	}

	for _, field := range timestampFields {
		raw, ok := v.Metadata[field]
		if !ok {
			continue
		}
		if t, ok := parseTimestamp(raw); ok {
			return t, true
		}
	}

	return time.Time{}, false
}

// timestampLayouts are tried in order for string-valued timestamp fields.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp accepts the timestamp encodings observed in the store:
// time values, RFC3339 variants, date-only strings, and epoch seconds or
// milliseconds.
func parseTimestamp(raw any) (time.Time, bool) {
	switch val := raw.(type) {
	case time.Time:
		return val.UTC(), true

	case string:
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false

	case int64:
		return epochToTime(val), true

	case float64:
		return epochToTime(int64(val)), true

	default:
		return time.Time{}, false
	}
}

// epochToTime treats values above 1e12 as milliseconds, otherwise seconds.
func epochToTime(v int64) time.Time {
	if v > 1_000_000_000_000 {
		return time.UnixMilli(v).UTC()
	}
	return time.Unix(v, 0).UTC()
}
