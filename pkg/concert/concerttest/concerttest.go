// Package concerttest holds the behaviour every concert.Repository must show.
// Backend packages call Run from their own tests.
package concerttest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"concerts/pkg/concert"
	"concerts/pkg/date"
)

// Run exercises repo. newRepo must return an empty repository.
func Run(t *testing.T, newRepo func(t *testing.T) concert.Repository) {
	t.Run("CreateGet", func(t *testing.T) { testCreateGet(t, newRepo(t)) })
	t.Run("IncreasingIDs", func(t *testing.T) { testIncreasingIDs(t, newRepo(t)) })
	t.Run("GetMissing", func(t *testing.T) { testGetMissing(t, newRepo(t)) })
	t.Run("DeleteAllResets", func(t *testing.T) { testDeleteAllResets(t, newRepo(t)) })
	t.Run("ListWindow", func(t *testing.T) { testListWindow(t, newRepo(t)) })
	t.Run("ConcurrentCreate", func(t *testing.T) { testConcurrentCreate(t, newRepo(t)) })
}

func testCreateGet(t *testing.T, repo concert.Repository) {
	ctx := context.Background()
	c, err := repo.Create(ctx, concert.Concert{ID: 99, Title: "Halcyon Days", Date: date.Of(2025, time.May, 1)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1, got %d", c.ID)
	}
	got, err := repo.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != c {
		t.Fatalf("expected %+v, got %+v", c, got)
	}
}

func testIncreasingIDs(t *testing.T, repo concert.Repository) {
	ctx := context.Background()
	var last int64
	for i := 0; i < 5; i++ {
		c, err := repo.Create(ctx, concert.Concert{Title: "Night", Date: date.Of(2024, time.January, i+1)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if c.ID <= last {
			t.Fatalf("id %d not greater than %d", c.ID, last)
		}
		last = c.ID
	}
}

func testGetMissing(t *testing.T, repo concert.Repository) {
	if _, err := repo.Get(context.Background(), 42); !errors.Is(err, concert.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testDeleteAllResets(t *testing.T, repo concert.Repository) {
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, concert.Concert{Title: "Encore", Date: date.Of(2025, time.June, 1)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, concert.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete all, got %v", err)
	}
	list, err := repo.List(ctx, concert.Window{Start: 1, Size: 10})
	if err != nil || len(list) != 0 {
		t.Fatalf("list after delete all: %v len=%d", err, len(list))
	}
	c, err := repo.Create(ctx, concert.Concert{Title: "Restart", Date: date.Of(2025, time.July, 4)})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 {
		t.Fatalf("expected id 1 after reset, got %d", c.ID)
	}
}

func testListWindow(t *testing.T, repo concert.Repository) {
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		if _, err := repo.Create(ctx, concert.Concert{Title: "Set", Date: date.Of(2025, time.March, i+1)}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	cases := []struct {
		name string
		w    concert.Window
		want []int64
	}{
		{"middle", concert.Window{Start: 2, Size: 2}, []int64{2, 3}},
		{"all", concert.Window{Start: 1, Size: 10}, []int64{1, 2, 3, 4}},
		{"past end", concert.Window{Start: 4, Size: 5}, []int64{4}},
		{"beyond", concert.Window{Start: 10, Size: 5}, nil},
		{"empty", concert.Window{Start: 1, Size: 0}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := repo.List(ctx, tc.w)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if list == nil {
				t.Fatal("list must not be nil")
			}
			if len(list) != len(tc.want) {
				t.Fatalf("expected %d concerts, got %d", len(tc.want), len(list))
			}
			for i, c := range list {
				if c.ID != tc.want[i] {
					t.Fatalf("position %d: expected id %d, got %d", i, tc.want[i], c.ID)
				}
			}
		})
	}
}

func testConcurrentCreate(t *testing.T, repo concert.Repository) {
	ctx := context.Background()
	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.Create(ctx, concert.Concert{Title: "Crowd", Date: date.Of(2025, time.August, 8)})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- c.ID
		}()
	}
	wg.Wait()
	close(ids)
	seen := make(map[int64]bool, n)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d ids, got %d", n, len(seen))
	}
}
