package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"concerts/pkg/performer"
)

// Schema creates the performers table.
const Schema = `CREATE TABLE IF NOT EXISTS performers (
	id        BIGSERIAL PRIMARY KEY,
	name      TEXT NOT NULL,
	image_uri TEXT NOT NULL DEFAULT ''
)`

// Repository persists performers in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the performers table if it does not exist.
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create performers table: %w", err)
	}
	return nil
}

// Create inserts a new performer.
func (r *Repository) Create(ctx context.Context, p performer.Performer) (performer.Performer, error) {
	err := r.db.QueryRowContext(ctx, "INSERT INTO performers (name,image_uri) VALUES ($1,$2) RETURNING id", p.Name, p.ImageURI).Scan(&p.ID)
	if err != nil {
		return performer.Performer{}, fmt.Errorf("insert performer: %w", err)
	}
	return p, nil
}

// Get retrieves a performer by ID.
func (r *Repository) Get(ctx context.Context, id int64) (performer.Performer, error) {
	var p performer.Performer
	err := r.db.QueryRowContext(ctx, "SELECT id,name,image_uri FROM performers WHERE id=$1", id).Scan(&p.ID, &p.Name, &p.ImageURI)
	if errors.Is(err, sql.ErrNoRows) {
		return performer.Performer{}, performer.ErrNotFound
	}
	return p, err
}

// List fetches all performers ordered by ID.
func (r *Repository) List(ctx context.Context) ([]performer.Performer, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,name,image_uri FROM performers ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	performers := make([]performer.Performer, 0)
	for rows.Next() {
		var p performer.Performer
		if err := rows.Scan(&p.ID, &p.Name, &p.ImageURI); err != nil {
			return nil, err
		}
		performers = append(performers, p)
	}
	return performers, rows.Err()
}

// Update updates an existing performer.
func (r *Repository) Update(ctx context.Context, p performer.Performer) error {
	res, err := r.db.ExecContext(ctx, "UPDATE performers SET name=$2, image_uri=$3 WHERE id=$1", p.ID, p.Name, p.ImageURI)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return performer.ErrNotFound
	}
	return nil
}

// Delete removes a performer by ID.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM performers WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return performer.ErrNotFound
	}
	return nil
}
