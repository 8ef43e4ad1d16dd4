package store

import (
	"errors"

	"cafeapi/model"
)

// ErrNotFound is returned by FindByName when no cafe matches the given name.
var ErrNotFound = errors.New("cafe not found")

// Store is the persistence contract for cafe records. Two implementations
// exist: GormStore (ORM, engine-agnostic) and SQLStore (raw statements,
// sqlite only). They must be externally indistinguishable.
type Store interface {
	// Add persists the cafe and fills in its assigned ID.
	Add(cafe *model.Cafe) error
	// ListAll returns every stored cafe ordered by id. The slice is empty,
	// never nil, when the store holds no records.
	ListAll() ([]model.Cafe, error)
	// FindByName does a case-sensitive exact match. When duplicate names
	// exist the match with the lowest id wins.
	FindByName(name string) (*model.Cafe, error)
}
