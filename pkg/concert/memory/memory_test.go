package memory

import (
	"context"
	"testing"
	"time"

	"concerts/pkg/concert"
	"concerts/pkg/concert/concerttest"
	"concerts/pkg/date"
)

func TestRepository(t *testing.T) {
	concerttest.Run(t, func(t *testing.T) concert.Repository { return New() })
}

func TestHalcyonDays(t *testing.T) {
	ctx := context.Background()
	repo := New()
	c, err := repo.Create(ctx, concert.Concert{Title: "Halcyon Days", Date: date.Of(2025, time.May, 1)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1, got %d", c.ID)
	}
	got, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Halcyon Days" || got.Date.String() != "2025-05-01" {
		t.Fatalf("unexpected concert %+v", got)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if _, err := repo.Get(ctx, 1); err == nil {
		t.Fatal("expected error after delete all")
	}
	c, err = repo.Create(ctx, concert.Concert{Title: "Second Wind", Date: date.Of(2025, time.May, 2)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1 again, got %d", c.ID)
	}
}

func TestZeroValue(t *testing.T) {
	var repo Repository
	ctx := context.Background()
	c, err := repo.Create(ctx, concert.Concert{Title: "Unplanned"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1, got %d", c.ID)
	}
	if _, err := repo.Get(ctx, 1); err != nil {
		t.Fatalf("get: %v", err)
	}
}
