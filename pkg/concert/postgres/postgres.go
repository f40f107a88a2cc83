package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"concerts/pkg/concert"
)

// Schema creates the concerts table.
const Schema = `CREATE TABLE IF NOT EXISTS concerts (
	id    BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	date  DATE
)`

// Repository persists concerts in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the concerts table if it does not exist.
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create concerts table: %w", err)
	}
	return nil
}

// Create inserts a new concert and returns it with its identity value.
func (r *Repository) Create(ctx context.Context, c concert.Concert) (concert.Concert, error) {
	err := r.db.QueryRowContext(ctx, "INSERT INTO concerts (title,date) VALUES ($1,$2) RETURNING id", c.Title, c.Date).Scan(&c.ID)
	if err != nil {
		return concert.Concert{}, fmt.Errorf("insert concert: %w", err)
	}
	return c, nil
}

// Get retrieves a concert by ID.
func (r *Repository) Get(ctx context.Context, id int64) (concert.Concert, error) {
	var c concert.Concert
	err := r.db.QueryRowContext(ctx, "SELECT id,title,date FROM concerts WHERE id=$1", id).Scan(&c.ID, &c.Title, &c.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return concert.Concert{}, concert.ErrNotFound
	}
	if err != nil {
		return concert.Concert{}, fmt.Errorf("select concert %d: %w", id, err)
	}
	return c, nil
}

// List fetches the concerts whose identifiers fall in the window.
func (r *Repository) List(ctx context.Context, w concert.Window) ([]concert.Concert, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id,title,date FROM concerts WHERE id >= $1 AND id < $2 ORDER BY id", w.Start, w.End())
	if err != nil {
		return nil, fmt.Errorf("select concerts: %w", err)
	}
	defer rows.Close()
	concerts := make([]concert.Concert, 0)
	for rows.Next() {
		var c concert.Concert
		if err := rows.Scan(&c.ID, &c.Title, &c.Date); err != nil {
			return nil, err
		}
		concerts = append(concerts, c)
	}
	return concerts, rows.Err()
}

// DeleteAll truncates the table and restarts the identity sequence.
func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "TRUNCATE concerts RESTART IDENTITY"); err != nil {
		return fmt.Errorf("truncate concerts: %w", err)
	}
	return nil
}
