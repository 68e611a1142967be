package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// PeriodType is the time granularity of one extraction run.
type PeriodType string

const (
	PeriodWeekly    PeriodType = "weekly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
)

// AllPeriodTypes lists every supported period type in ascending span order.
func AllPeriodTypes() []PeriodType {
	return []PeriodType{PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly}
}

// Validate checks if the PeriodType is one of the supported granularities
func (p PeriodType) Validate() error {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return nil
	default:
		return goerr.New("invalid period type", goerr.V("periodType", p))
	}
}

// String returns the string representation of PeriodType
func (p PeriodType) String() string {
	return string(p)
}
