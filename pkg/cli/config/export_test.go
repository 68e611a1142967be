package config

// NewPeriodsForTest creates a Periods config for testing purposes
func NewPeriodsForTest(path string) *Periods {
	return &Periods{path: path}
}
