package memory

import (
	"errors"

	"github.com/lifetrace-app/lifetrace/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested document does not exist
var ErrNotFound = errors.New("not found")

// Repository is an alias for Memory
type Repository = Memory

// Memory is the in-memory Repository used for development and tests.
type Memory struct {
	vector  *vectorRepository
	keyword *keywordRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		vector:  newVectorRepository(),
		keyword: newKeywordRepository(),
	}
}

func (m *Memory) Vector() interfaces.VectorRepository {
	return m.vector
}

func (m *Memory) Keyword() interfaces.KeywordRepository {
	return m.keyword
}

func (m *Memory) Close() error {
	return nil
}
