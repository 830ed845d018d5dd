package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/adapter/persistence/seed"
	"arton_garage/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func newLeads() *Collection[entities.Lead] {
	return NewCollection(func(l entities.Lead) string { return l.ID }, nil)
}

func TestCollection_CreatePrepends(t *testing.T) {
	ctx := context.Background()
	c := newLeads()
	for _, id := range []string{"a", "b", "c"} {
		if _, err := c.Create(ctx, entities.Lead{ID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	list, _ := c.List(ctx)
	got := []string{list[0].ID, list[1].ID, list[2].ID}
	if diff := cmp.Diff([]string{"c", "b", "a"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.Create(ctx, entities.Lead{ID: "b"}); !errors.Is(err, persistence.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCollection_UnknownIDReturnsZero(t *testing.T) {
	ctx := context.Background()
	c := newLeads()

	got, err := c.GetByID(ctx, "missing")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero value, got %+v err=%v", got, err)
	}
	updated, err := c.Update(ctx, entities.Lead{ID: "missing"})
	if err != nil || updated.ID != "" {
		t.Fatalf("expected zero value on update, got %+v err=%v", updated, err)
	}
	deleted, err := c.Delete(ctx, "missing")
	if err != nil || deleted.ID != "" {
		t.Fatalf("expected zero value on delete, got %+v err=%v", deleted, err)
	}
}

func TestCollection_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	c := newLeads()
	_, _ = c.Create(ctx, entities.Lead{ID: "a", Name: "A"})
	_, _ = c.Create(ctx, entities.Lead{ID: "b", Name: "B"})

	if _, err := c.Update(ctx, entities.Lead{ID: "a", Name: "A2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := c.GetByID(ctx, "a")
	if got.Name != "A2" {
		t.Fatalf("expected replaced entity, got %+v", got)
	}

	deleted, _ := c.Delete(ctx, "b")
	if deleted.ID != "b" {
		t.Fatalf("expected deleted entity b, got %+v", deleted)
	}
	list, _ := c.List(ctx)
	if len(list) != 1 || list[0].ID != "a" {
		t.Fatalf("unexpected list after delete: %+v", list)
	}
}

func TestWorkOrderRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	r := NewWorkOrderRepository()
	_, _ = r.Create(ctx, entities.WorkOrder{ID: "os1", Items: []entities.WorkOrderItem{{ID: "i1", Quantity: 1}}})

	got, _ := r.GetByID(ctx, "os1")
	got.Items[0].Quantity = 99

	again, _ := r.GetByID(ctx, "os1")
	if again.Items[0].Quantity != 1 {
		t.Fatalf("store was mutated through a read copy")
	}
}

func TestWorkOrderRepository_GetByTrackingCode(t *testing.T) {
	ctx := context.Background()
	r := NewWorkOrderRepository()
	_, _ = r.Create(ctx, entities.WorkOrder{ID: "os1", TrackingCode: "ART-2024-001"})

	for _, code := range []string{"ART-2024-001", "art-2024-001", "Art-2024-001"} {
		o, err := r.GetByTrackingCode(ctx, code)
		if err != nil || o.ID != "os1" {
			t.Fatalf("code %q: expected os1, got %+v err=%v", code, o, err)
		}
	}
	o, _ := r.GetByTrackingCode(ctx, "ART-9999")
	if o.ID != "" {
		t.Fatalf("expected no match, got %+v", o)
	}
}

func TestWorkOrderPaymentRepository_ListByWorkOrderID(t *testing.T) {
	ctx := context.Background()
	r := NewWorkOrderPaymentRepository()
	_, _ = r.Create(ctx, entities.WorkOrderPayment{ID: "p1", WorkOrderID: "os1"})
	_, _ = r.Create(ctx, entities.WorkOrderPayment{ID: "p2", WorkOrderID: "os2"})
	_, _ = r.Create(ctx, entities.WorkOrderPayment{ID: "p3", WorkOrderID: "os1"})

	got, _ := r.ListByWorkOrderID(ctx, "os1")
	if len(got) != 2 || got[0].ID != "p3" || got[1].ID != "p1" {
		t.Fatalf("unexpected payments: %+v", got)
	}
	none, _ := r.ListByWorkOrderID(ctx, "os9")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", none)
	}
}

func TestCollection_ConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	c := newLeads()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = c.Create(ctx, entities.Lead{ID: string(rune('A' + i))})
			_, _ = c.List(ctx)
		}(i)
	}
	wg.Wait()
	list, _ := c.List(ctx)
	if len(list) != 50 {
		t.Fatalf("expected 50 leads, got %d", len(list))
	}
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	data, err := seed.Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repos := NewRepositories()

	if err := persistence.SeedIfEmpty(ctx, repos, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products, _ := repos.Products.List(ctx)
	got := make([]string, 0, len(products))
	for _, p := range products {
		got = append(got, p.ID)
	}
	if diff := cmp.Diff([]string{"m1", "m2", "1", "2"}, got); diff != "" {
		t.Fatalf("seed order mismatch (-want +got):\n%s", diff)
	}

	t.Run("second run keeps data", func(t *testing.T) {
		if err := persistence.SeedIfEmpty(ctx, repos, data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		leads, _ := repos.Leads.List(ctx)
		if len(leads) != 1 {
			t.Fatalf("expected 1 lead, got %d", len(leads))
		}
	})

	settings, _ := repos.Settings.Get(ctx)
	if settings.Name != "ART ON WHEELS" {
		t.Fatalf("unexpected settings: %+v", settings)
	}
}
