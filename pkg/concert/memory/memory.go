// Package memory implements an in-memory concert repository.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"concerts/pkg/concert"
)

// Repository provides an in-memory implementation of concert.Repository.
// The zero value is an empty repository.
type Repository struct {
	concerts sync.Map // int64 -> concert.Concert
	seq      atomic.Int64
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{}
}

// Create stores the concert under the next identifier.
func (r *Repository) Create(ctx context.Context, c concert.Concert) (concert.Concert, error) {
	c.ID = r.seq.Add(1)
	r.concerts.Store(c.ID, c)
	return c, nil
}

// Get retrieves a concert by ID.
func (r *Repository) Get(ctx context.Context, id int64) (concert.Concert, error) {
	v, ok := r.concerts.Load(id)
	if !ok {
		return concert.Concert{}, concert.ErrNotFound
	}
	return v.(concert.Concert), nil
}

// List returns the concerts stored in the window, skipping gaps.
func (r *Repository) List(ctx context.Context, w concert.Window) ([]concert.Concert, error) {
	out := make([]concert.Concert, 0)
	for id := w.Start; id < w.End(); id++ {
		if v, ok := r.concerts.Load(id); ok {
			out = append(out, v.(concert.Concert))
		}
	}
	return out, nil
}

// DeleteAll clears the map and then resets the counter. The two steps are
// not atomic together: a concurrent Create may land between them.
func (r *Repository) DeleteAll(ctx context.Context) error {
	r.concerts.Clear()
	r.seq.Store(0)
	return nil
}
