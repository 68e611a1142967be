package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Vector() VectorRepository
	Keyword() KeywordRepository

	Close() error
}
