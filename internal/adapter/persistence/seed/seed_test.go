package seed

import (
	"testing"
	"time"

	"arton_garage/internal/domain/entities"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("collections sizes", func(t *testing.T) {
		got := []int{len(d.Products), len(d.Services), len(d.Leads), len(d.BlogPosts), len(d.FinancialRecords), len(d.WorkOrders), len(d.Appointments)}
		want := []int{4, 2, 1, 1, 5, 2, 1}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("sizes mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("work order ART-2024-001", func(t *testing.T) {
		o := d.WorkOrders[0]
		if o.TrackingCode != "ART-2024-001" {
			t.Fatalf("unexpected tracking code %q", o.TrackingCode)
		}
		if o.Total() != 235 {
			t.Fatalf("expected total 235, got %v", o.Total())
		}
		if o.Progress() != 50 {
			t.Fatalf("expected progress 50, got %d", o.Progress())
		}
		if o.Checklist.OilLevel {
			t.Fatalf("expected oil level unchecked")
		}
	})

	t.Run("lead timestamp", func(t *testing.T) {
		want := time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
		if !d.Leads[0].CreatedAt.Equal(want) {
			t.Fatalf("expected %v, got %v", want, d.Leads[0].CreatedAt)
		}
		if d.Leads[0].Status != entities.LeadStatusNovo {
			t.Fatalf("unexpected status %q", d.Leads[0].Status)
		}
	})

	t.Run("product specs and ids", func(t *testing.T) {
		if d.Products[2].ID != "1" {
			t.Fatalf("expected quoted id to stay a string, got %q", d.Products[2].ID)
		}
		specs := d.Products[0].Specs
		if specs == nil || specs.Year == nil || *specs.Year != 2023 || specs.EngineSize != "1103 cc" {
			t.Fatalf("unexpected specs: %+v", specs)
		}
		if d.Products[3].Specs != nil {
			t.Fatalf("expected no specs for tyres")
		}
	})

	t.Run("settings", func(t *testing.T) {
		if d.Settings.AIProvider != entities.AIProviderGemini || d.Settings.Phone != "+351 912 345 678" {
			t.Fatalf("unexpected settings: %+v", d.Settings)
		}
	})
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("leads: [")); err == nil {
		t.Fatalf("expected error")
	}
}
