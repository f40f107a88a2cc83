// Package performer defines the Performer record: an artist or band that
// plays at concerts.
package performer

import (
	"context"
	"errors"
)

// Performer is identified by a database-assigned ID.
type Performer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" validate:"required,max=255"`
	ImageURI string `json:"imageUri,omitempty" validate:"omitempty,max=1024"`
}

// Repository defines behavior for persisting performers.
type Repository interface {
	Create(ctx context.Context, p Performer) (Performer, error)
	Get(ctx context.Context, id int64) (Performer, error)
	List(ctx context.Context) ([]Performer, error)
	Update(ctx context.Context, p Performer) error
	Delete(ctx context.Context, id int64) error
}

// ErrNotFound indicates the requested performer does not exist.
var ErrNotFound = errors.New("performer not found")
