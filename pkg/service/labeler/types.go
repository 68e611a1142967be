package labeler

import (
	"context"

	"github.com/lifetrace-app/lifetrace/pkg/domain/types"
)

// Service turns a cluster's sample evidence into a human-readable life
// keyword. Implementations may be slow and may fail; callers treat a
// failure as "skip this cluster", never as a run failure.
type Service interface {
	// Label generates a keyword for one theme cluster
	Label(ctx context.Context, input Input) (*Result, error)

	// Model identifies the underlying model for audit provenance
	Model() string
}

// Input represents the evidence and period metadata for one label request
type Input struct {
	Samples     []string // representative member snippets, ≤5
	DataTypes   []types.DataType
	Category    types.Category
	PeriodType  types.PeriodType
	PeriodLabel string
}

// Result is the structured label produced by the LLM
type Result struct {
	Keyword     string
	Description string
	Emoji       string
}

// llmResponse is the structured output from the LLM
type llmResponse struct {
	Keyword     string `json:"keyword"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}
