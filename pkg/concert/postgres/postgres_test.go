package postgres

import (
	"context"
	"testing"

	"concerts/internal/testdb"
	"concerts/pkg/concert"
	"concerts/pkg/concert/concerttest"
)

func TestRepository(t *testing.T) {
	db := testdb.Postgres(t)
	repo := New(db)
	if err := repo.CreateSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	concerttest.Run(t, func(t *testing.T) concert.Repository {
		if err := repo.DeleteAll(context.Background()); err != nil {
			t.Fatalf("reset: %v", err)
		}
		return repo
	})
}
