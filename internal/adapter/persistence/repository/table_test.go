package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/adapter/persistence/seed"
	"arton_garage/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestTable_CRUD(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	tbl := NewTable(ddb, "garage_leads", func(l entities.Lead) string { return l.ID })

	created := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		if _, err := tbl.Create(ctx, entities.Lead{ID: id, Name: "Lead " + id, Status: entities.LeadStatusNovo, CreatedAt: created}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("duplicate id", func(t *testing.T) {
		_, err := tbl.Create(ctx, entities.Lead{ID: "a"})
		if !errors.Is(err, persistence.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		list, err := tbl.List(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{}
		for _, l := range list {
			got = append(got, l.ID)
		}
		if diff := cmp.Diff([]string{"c", "b", "a"}, got); diff != "" {
			t.Fatalf("order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("get round trips json names and time", func(t *testing.T) {
		got, err := tbl.GetByID(ctx, "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := entities.Lead{ID: "b", Name: "Lead b", Status: entities.LeadStatusNovo, CreatedAt: created}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("lead mismatch (-want +got):\n%s", diff)
		}
		if _, ok := ddb.tables["garage_leads"]["b"]["created_at"]; !ok {
			t.Fatalf("expected json attribute names in the stored item")
		}
	})

	t.Run("update keeps position", func(t *testing.T) {
		if _, err := tbl.Update(ctx, entities.Lead{ID: "a", Name: "Renamed"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		list, _ := tbl.List(ctx)
		if list[2].ID != "a" || list[2].Name != "Renamed" {
			t.Fatalf("unexpected list after update: %+v", list)
		}
		missing, err := tbl.Update(ctx, entities.Lead{ID: "zzz"})
		if err != nil || missing.ID != "" {
			t.Fatalf("expected zero value for unknown id, got %+v err=%v", missing, err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := tbl.Delete(ctx, "c")
		if err != nil || deleted.ID != "c" {
			t.Fatalf("expected deleted c, got %+v err=%v", deleted, err)
		}
		again, err := tbl.Delete(ctx, "c")
		if err != nil || again.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", again, err)
		}
	})
}

func TestWorkOrderDynamoRepository_GetByTrackingCode(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderDynamoRepository(newFakeDynamo(), "garage_work_orders")
	order := entities.WorkOrder{
		ID:           "os1",
		TrackingCode: "ART-2024-001",
		Status:       entities.WorkOrderStatusEmReparacao,
		Items:        []entities.WorkOrderItem{{ID: "i1", Description: "Óleo", Quantity: 4, UnitPrice: 25, Type: entities.WorkOrderItemPeca}},
		Checklist:    entities.DefaultChecklist(),
	}
	if _, err := repo.Create(ctx, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetByTrackingCode(ctx, "art-2024-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(order, got); diff != "" {
		t.Fatalf("work order mismatch (-want +got):\n%s", diff)
	}

	none, err := repo.GetByTrackingCode(ctx, "nope")
	if err != nil || none.ID != "" {
		t.Fatalf("expected not found, got %+v err=%v", none, err)
	}
}

func TestWorkOrderPaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWorkOrderPaymentDynamoRepository(newFakeDynamo(), "garage_work_order_payments")
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	_, _ = repo.Create(ctx, entities.WorkOrderPayment{ID: "p1", WorkOrderID: "os1", Amount: 100, Date: base, Status: entities.PaymentStatusAprovado, ProviderPayloadRaw: json.RawMessage(`{"id":"p1"}`)})
	_, _ = repo.Create(ctx, entities.WorkOrderPayment{ID: "p2", WorkOrderID: "os1", Amount: 135, Date: base.Add(time.Hour), Status: entities.PaymentStatusAprovado})
	_, _ = repo.Create(ctx, entities.WorkOrderPayment{ID: "p3", WorkOrderID: "os2", Amount: 1, Date: base, Status: entities.PaymentStatusAprovado})

	if _, err := repo.Create(ctx, entities.WorkOrderPayment{ID: "p1", WorkOrderID: "os1"}); !errors.Is(err, persistence.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	got, err := repo.ListByWorkOrderID(ctx, "os1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p2" || got[1].ID != "p1" {
		t.Fatalf("unexpected payments: %+v", got)
	}
	if string(got[1].ProviderPayloadRaw) != `{"id":"p1"}` || !got[1].Date.Equal(base) {
		t.Fatalf("payload or date not preserved: %+v", got[1])
	}
	if got[0].ProviderPayloadRaw != nil {
		t.Fatalf("expected nil payload, got %q", got[0].ProviderPayloadRaw)
	}
}

func TestSettingsDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingsDynamoRepository(newFakeDynamo(), "garage_settings")

	empty, err := repo.Get(ctx)
	if err != nil || empty.Name != "" {
		t.Fatalf("expected zero settings, got %+v err=%v", empty, err)
	}
	s := entities.StoreSettings{Name: "ART ON WHEELS", Phone: "+351 912 345 678", AIProvider: entities.AIProviderGemini}
	if _, err := repo.Save(ctx, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.Get(ctx)
	if diff := cmp.Diff(s, got); diff != "" {
		t.Fatalf("settings mismatch (-want +got):\n%s", diff)
	}
}

func TestEnsureTablesAndSeed(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()

	if err := EnsureTables(ctx, ddb, "garage_"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ddb.created) != 9 {
		t.Fatalf("expected 9 tables, got %v", ddb.created)
	}
	if err := EnsureTables(ctx, ddb, "garage_"); err != nil {
		t.Fatalf("existing tables must be ignored, got %v", err)
	}

	data, err := seed.Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repos := newRepositories(ddb, "garage_")
	if err := persistence.SeedIfEmpty(ctx, repos, data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	records, _ := repos.FinancialRecords.List(ctx)
	if len(records) != 5 || records[0].ID != "f1" || records[4].ID != "f5" {
		t.Fatalf("unexpected seeded ledger: %+v", records)
	}
	post, _ := repos.BlogPosts.GetBySlug(ctx, "guia-jantes-forjadas")
	if post.ID != "b1" {
		t.Fatalf("expected seeded post b1, got %+v", post)
	}
}
