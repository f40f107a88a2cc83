// Package concert defines the Concert record and the contract every concert
// store satisfies.
package concert

import (
	"context"
	"errors"

	"concerts/pkg/date"
)

// Concert is a scheduled performance. Records are immutable once created.
type Concert struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Date  date.Date `json:"date" swaggertype:"string" example:"2025-05-01"`
}

// Window selects the identifiers Start, Start+1, ..., Start+Size-1.
type Window struct {
	Start int64
	Size  int
}

// End returns the first identifier past the window.
func (w Window) End() int64 {
	return w.Start + int64(w.Size)
}

// Repository stores concerts keyed by a store-assigned identifier.
//
// Identifiers start at 1 and strictly increase until DeleteAll, which empties
// the store and restarts numbering. Create and DeleteAll are each atomic but
// not with respect to one another: a Create that races a DeleteAll may
// survive the clear, or be handed an identifier the reset later re-issues.
type Repository interface {
	// Create stores c under the next identifier. c.ID is ignored.
	Create(ctx context.Context, c Concert) (Concert, error)
	Get(ctx context.Context, id int64) (Concert, error)
	// List returns the concerts whose identifiers fall in w, ascending.
	List(ctx context.Context, w Window) ([]Concert, error)
	DeleteAll(ctx context.Context) error
}

// ErrNotFound indicates the requested concert does not exist.
var ErrNotFound = errors.New("concert not found")
