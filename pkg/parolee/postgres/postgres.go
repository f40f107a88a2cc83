package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"concerts/pkg/parolee"
)

// Schema creates the parolees table.
const Schema = `CREATE TABLE IF NOT EXISTS parolees (
	id            BIGSERIAL PRIMARY KEY,
	last_name     TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	gender        TEXT NOT NULL DEFAULT '',
	date_of_birth DATE
)`

const columns = "id,last_name,first_name,gender,date_of_birth"

// Repository persists parolees in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the parolees table if it does not exist.
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create parolees table: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (parolee.Parolee, error) {
	var p parolee.Parolee
	var gender string
	err := s.Scan(&p.ID, &p.LastName, &p.FirstName, &gender, &p.DateOfBirth)
	p.Gender = parolee.Gender(gender)
	return p, err
}

// Create inserts a new parolee.
func (r *Repository) Create(ctx context.Context, p parolee.Parolee) (parolee.Parolee, error) {
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO parolees (last_name,first_name,gender,date_of_birth) VALUES ($1,$2,$3,$4) RETURNING id",
		p.LastName, p.FirstName, string(p.Gender), p.DateOfBirth).Scan(&p.ID)
	if err != nil {
		return parolee.Parolee{}, fmt.Errorf("insert parolee: %w", err)
	}
	return p, nil
}

// Get retrieves a parolee by ID.
func (r *Repository) Get(ctx context.Context, id int64) (parolee.Parolee, error) {
	p, err := scan(r.db.QueryRowContext(ctx, "SELECT "+columns+" FROM parolees WHERE id=$1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return parolee.Parolee{}, parolee.ErrNotFound
	}
	return p, err
}

// List fetches all parolees ordered by first name.
func (r *Repository) List(ctx context.Context) ([]parolee.Parolee, error) {
	return r.query(ctx, "SELECT "+columns+" FROM parolees ORDER BY first_name, id")
}

// FindByFirstName fetches the parolees with the given first name.
func (r *Repository) FindByFirstName(ctx context.Context, firstName string) ([]parolee.Parolee, error) {
	return r.query(ctx, "SELECT "+columns+" FROM parolees WHERE first_name=$1 ORDER BY id", firstName)
}

func (r *Repository) query(ctx context.Context, q string, args ...any) ([]parolee.Parolee, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	parolees := make([]parolee.Parolee, 0)
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		parolees = append(parolees, p)
	}
	return parolees, rows.Err()
}

// Update updates an existing parolee.
func (r *Repository) Update(ctx context.Context, p parolee.Parolee) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE parolees SET last_name=$2, first_name=$3, gender=$4, date_of_birth=$5 WHERE id=$1",
		p.ID, p.LastName, p.FirstName, string(p.Gender), p.DateOfBirth)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return parolee.ErrNotFound
	}
	return nil
}

// Delete removes a parolee by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM parolees WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return parolee.ErrNotFound
	}
	return nil
}
