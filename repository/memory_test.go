package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"catering_manager/model"
)

func TestMemoryOrderRepoConcurrentUpdates(t *testing.T) {
	repo := &MemoryOrderRepo{orders: map[string]*model.Order{}}
	ctx := context.Background()

	order := &model.Order{PublicCode: "ORD-TEST01", Status: model.StatusPending, PeopleCount: 10}
	if err := repo.Create(ctx, order); err != nil {
		t.Fatal(err)
	}

	// Równoległe inkrementacje nie mogą się zgubić
	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, "ORD-TEST01", func(o *model.Order) error {
				o.PeopleCount++
				return nil
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	saved, err := repo.GetByCode(ctx, "ORD-TEST01")
	if err != nil {
		t.Fatal(err)
	}
	if saved.PeopleCount != 10+workers {
		t.Errorf("peopleCount = %d, want %d", saved.PeopleCount, 10+workers)
	}
}

func TestMemoryOrderRepoUpdateRollsBackOnError(t *testing.T) {
	repo := &MemoryOrderRepo{orders: map[string]*model.Order{}}
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Order{PublicCode: "ORD-TEST02", Status: model.StatusPending}); err != nil {
		t.Fatal(err)
	}

	_, err := repo.Update(ctx, "ORD-TEST02", func(o *model.Order) error {
		o.Status = model.StatusAccepted
		return context.Canceled
	})
	if err == nil {
		t.Fatal("expected error from update fn")
	}

	saved, err := repo.GetByCode(ctx, "ORD-TEST02")
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != model.StatusPending {
		t.Errorf("status = %q, want PENDING after failed update", saved.Status)
	}
}

func TestMemoryAvailabilityRepo(t *testing.T) {
	repo := &MemoryAvailabilityRepo{entries: map[string]*model.Availability{}}
	ctx := context.Background()

	day := time.Date(2026, 10, 10, 14, 30, 0, 0, time.UTC)
	if err := repo.Upsert(ctx, &model.Availability{Date: day, IsAvailable: true}); err != nil {
		t.Fatal(err)
	}

	// Wyszukiwanie ignoruje składnik czasu
	entry, err := repo.GetByDate(ctx, time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetByDate: %v", err)
	}
	if !entry.IsAvailable {
		t.Error("expected available entry")
	}

	// Upsert tego samego dnia nadpisuje wpis zamiast tworzyć drugi
	if err := repo.Upsert(ctx, &model.Availability{Date: day, IsAvailable: false}); err != nil {
		t.Fatal(err)
	}
	all, err := repo.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 {
		t.Fatalf("entries = %d, want 1", len(all))
	}
	if all[0].IsAvailable {
		t.Error("expected entry flipped to unavailable")
	}

	removed, err := repo.DeleteBefore(ctx, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}
