package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// LifeKeywordID is a UUID-based identifier for LifeKeyword
type LifeKeywordID string

// NewLifeKeywordID generates a new UUID v4 LifeKeywordID
func NewLifeKeywordID() LifeKeywordID {
	return LifeKeywordID(uuid.New().String())
}

// LifeKeyword is the engine's output: one labeled dominant theme for a
// user's period. Records are immutable after creation and persisted
// append-only. They carry enough provenance (category, period bounds,
// scores, sample evidence, creation instant) for an external admin tool to
// heuristically associate each keyword with the labeling call that
// produced it.
type LifeKeyword struct {
	ID          LifeKeywordID
	UserID      string
	Keyword     string
	Description string
	Emoji       string
	Category    types.Category
	PeriodType  types.PeriodType
	PeriodLabel string
	PeriodStart time.Time
	PeriodEnd   time.Time

	// Confidence is the source cluster's cohesion; DominanceScore is the
	// cluster's share of all vectors gathered for the period.
	Confidence     float64
	DominanceScore float64

	DataPointCount   int
	SampleDataPoints []string
	RelatedDataTypes []types.DataType

	// LabelModel records which model produced the label, for audit linkage.
	LabelModel string

	CreatedAt time.Time
}
