package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"deeplinkr/internal/app/model"
)

func TestMemoryRepository_PutIfAbsent(t *testing.T) {
	repo := NewMemoryLinkRepository()
	ctx := context.Background()

	link := &model.Link{Code: "abc123", OriginalURL: "https://example.com"}
	if err := repo.Create(ctx, link); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	clash := &model.Link{Code: "abc123", OriginalURL: "https://other.example.com"}
	if err := repo.Create(ctx, clash); !errors.Is(err, ErrCodeTaken) {
		t.Fatalf("expected ErrCodeTaken, got %v", err)
	}

	// The original record must survive the clash untouched.
	stored, err := repo.GetByCode(ctx, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if stored.OriginalURL != "https://example.com" {
		t.Fatalf("record overwritten: %q", stored.OriginalURL)
	}
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryLinkRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Link{Code: "abc123", OriginalURL: "https://example.com"}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetByCode(ctx, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	got.OriginalURL = "mutated"

	again, err := repo.GetByCode(ctx, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if again.OriginalURL != "https://example.com" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestMemoryRepository_ConcurrentIncrements(t *testing.T) {
	repo := NewMemoryLinkRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Link{Code: "abc123", OriginalURL: "https://example.com"}); err != nil {
		t.Fatal(err)
	}

	const k = 200
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.IncrementClicks(ctx, "abc123"); err != nil {
				t.Errorf("IncrementClicks error: %v", err)
			}
		}()
	}
	wg.Wait()

	link, err := repo.GetByCode(ctx, "abc123")
	if err != nil {
		t.Fatal(err)
	}
	if link.ClickCount != k {
		t.Fatalf("click count = %d, want %d", link.ClickCount, k)
	}
}

func TestMemoryRepository_IncrementMissing(t *testing.T) {
	repo := NewMemoryLinkRepository()
	if err := repo.IncrementClicks(context.Background(), "nope"); !errors.Is(err, ErrLinkNotFound) {
		t.Fatalf("expected ErrLinkNotFound, got %v", err)
	}
}
