package usecase

import "errors"

// Sentinel errors for use case layer
var (
	ErrPeriodNotConfigured = errors.New("period type not configured")
	ErrLabelerNotAvailable = errors.New("labeling service not available")
)

// Context keys for error values
const (
	UserIDKey     = "user_id"
	PeriodTypeKey = "period_type"
)
