package usecase

// ResolveTimestamp is exported for testing
var ResolveTimestamp = resolveTimestamp

// ParseTimestamp is exported for testing
var ParseTimestamp = parseTimestamp

// EpochToTime is exported for testing
var EpochToTime = epochToTime
