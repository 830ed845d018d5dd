package response

import (
	"encoding/json"
	"testing"
	"time"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"

	"github.com/google/go-cmp/cmp"
)

func sampleWorkOrder() entities.WorkOrder {
	return entities.WorkOrder{
		ID:           "os1",
		TrackingCode: "ART-2024-001",
		ClientName:   "Daniel Oliveira",
		ClientEmail:  "daniel@email.com",
		Vehicle:      "Ducati Panigale V4",
		Plate:        "AA-00-BB",
		Status:       entities.WorkOrderStatusEmReparacao,
		Items: []entities.WorkOrderItem{
			{ID: "i1", Description: "Óleo", Quantity: 4, UnitPrice: 25, Type: entities.WorkOrderItemPeca},
			{ID: "i2", Description: "Filtro", Quantity: 1, UnitPrice: 15, Type: entities.WorkOrderItemPeca},
			{ID: "i3", Description: "Mão de Obra", Quantity: 2, UnitPrice: 60, Type: entities.WorkOrderItemServico},
		},
	}
}

func TestFromWorkOrder(t *testing.T) {
	res := FromWorkOrder(sampleWorkOrder())
	if res.Total != 235 || res.Progress != 50 || res.Status != "Em Reparação" {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
	if res.Items[0].Subtotal != 100 || res.Items[2].Type != "Serviço" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}

	empty := FromWorkOrder(entities.WorkOrder{ID: "os9"})
	if empty.Items == nil || empty.Total != 0 {
		t.Fatalf("expected empty items and zero total, got %+v", empty)
	}
}

func TestFromTracking_HidesClientContact(t *testing.T) {
	raw, err := json.Marshal(FromTracking(sampleWorkOrder()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	for _, key := range []string{"client_name", "client_email", "client_phone"} {
		if _, ok := body[key]; ok {
			t.Fatalf("tracking response must not expose %s", key)
		}
	}
	if body["progress"] != 50.0 || body["total"] != 235.0 {
		t.Fatalf("unexpected tracking body %v", body)
	}
}

func TestFromWorkOrderPayment(t *testing.T) {
	now := time.Now().UTC()
	p := entities.WorkOrderPayment{
		ID:                 "pay-1",
		WorkOrderID:        "os1",
		Amount:             235,
		Date:               now,
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: json.RawMessage(`{"id":123,"status":"approved"}`),
	}

	res := FromWorkOrderPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" || res.WorkOrderID != "os1" || res.Status != "aprovado" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}

	p.ProviderPayloadRaw = json.RawMessage(`not-json`)
	if res := FromWorkOrderPayment(p); res.ProviderPayload != nil || res.ProviderPayloadRaw != "not-json" {
		t.Fatalf("expected raw-only payload, got %+v", res)
	}
}

func TestFromLedger(t *testing.T) {
	res := FromLedger([]entities.FinancialRecord{
		{ID: "f1", Type: entities.FinancialRecordInflow, Amount: 850},
		{ID: "f2", Type: entities.FinancialRecordOutflow, Amount: 200},
	})
	want := usecase.LedgerSummary{TotalInflow: 850, TotalOutflow: 200, Balance: 650}
	if diff := cmp.Diff(want, res.Summary); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}
	if FromLedger(nil).Records == nil {
		t.Fatalf("expected empty records slice")
	}
}

func TestFromPublicSettings(t *testing.T) {
	res := FromPublicSettings(usecase.PublicSettings{
		Settings: entities.StoreSettings{Name: "Arton", Phone: "+351 912 345 678"},
		Links:    entities.ContactLinks{WhatsApp: "https://wa.me/351912345678", Call: "tel:+351912345678"},
	})
	raw, _ := json.Marshal(res)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)
	if body["name"] != "Arton" || body["whatsapp_url"] != "https://wa.me/351912345678" {
		t.Fatalf("unexpected body %v", body)
	}
}
