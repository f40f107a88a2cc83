package postgres

import (
	"context"
	"errors"
	"testing"

	"concerts/internal/testdb"
	"concerts/pkg/performer"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(testdb.Postgres(t))
	if err := repo.CreateSchema(ctx); err != nil {
		t.Fatalf("schema: %v", err)
	}

	p, err := repo.Create(ctx, performer.Performer{Name: "Ariana Grande", ImageURI: "ari.jpg"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
	got, err := repo.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != p {
		t.Fatalf("expected %+v, got %+v", p, got)
	}

	p.ImageURI = "ari-2.jpg"
	if err := repo.Update(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}
	if list[0].ImageURI != "ari-2.jpg" {
		t.Fatalf("update not applied: %+v", list[0])
	}

	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, p.ID); !errors.Is(err, performer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, p.ID); !errors.Is(err, performer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
	if err := repo.Update(ctx, p); !errors.Is(err, performer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating missing, got %v", err)
	}
}
