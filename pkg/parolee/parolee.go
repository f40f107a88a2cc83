// Package parolee defines the Parolee record: a person identified by name,
// gender and date of birth.
package parolee

import (
	"context"
	"errors"

	"concerts/pkg/date"
)

// Gender is stored by name.
type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

// Parolee is identified by a database-assigned ID.
type Parolee struct {
	ID          int64     `json:"id"`
	LastName    string    `json:"lastName" validate:"required,max=255"`
	FirstName   string    `json:"firstName" validate:"required,max=255"`
	Gender      Gender    `json:"gender" validate:"omitempty,oneof=Male Female"`
	DateOfBirth date.Date `json:"dateOfBirth" swaggertype:"string" example:"1913-07-11"`
}

// Repository defines behavior for persisting parolees.
type Repository interface {
	Create(ctx context.Context, p Parolee) (Parolee, error)
	Get(ctx context.Context, id int64) (Parolee, error)
	// List returns every parolee ordered by first name.
	List(ctx context.Context) ([]Parolee, error)
	FindByFirstName(ctx context.Context, firstName string) ([]Parolee, error)
	Update(ctx context.Context, p Parolee) error
	Delete(ctx context.Context, id int64) error
}

// ErrNotFound indicates the requested parolee does not exist.
var ErrNotFound = errors.New("parolee not found")
