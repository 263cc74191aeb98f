package entities

import (
	"testing"
	"time"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	all := []OrderStatus{OrderStatusPendente, OrderStatusEmAndamento, OrderStatusConcluida}
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPendente, OrderStatusEmAndamento}:  true,
		{OrderStatusEmAndamento, OrderStatusConcluida}: true,
		{OrderStatusConcluida, OrderStatusEmAndamento}: true,
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			if got != allowed[[2]OrderStatus{from, to}] {
				t.Errorf("%s -> %s: expected %v, got %v", from, to, !got, got)
			}
		}
	}

	if OrderStatus("Cancelada").Valid() {
		t.Fatalf("unknown status must not be valid")
	}
	if OrderStatus("Cancelada").CanTransitionTo(OrderStatusPendente) {
		t.Fatalf("unknown status must not transition")
	}
}

func TestChecklist(t *testing.T) {
	t.Run("set and get known keys", func(t *testing.T) {
		var c Checklist
		for _, k := range ChecklistKeys {
			if !c.Set(k, true) {
				t.Fatalf("expected %s to be accepted", k)
			}
			if v, ok := c.Get(k); !ok || !v {
				t.Fatalf("expected %s to be true", k)
			}
		}
		if len(c.Map()) != 7 {
			t.Fatalf("expected 7 keys, got %d", len(c.Map()))
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		var c Checklist
		if c.Set("garantia", true) {
			t.Fatalf("unknown key must be rejected")
		}
		if IsChecklistKey("garantia") {
			t.Fatalf("unknown key reported as known")
		}
		if c != (Checklist{}) {
			t.Fatalf("checklist changed: %+v", c)
		}
	})

	t.Run("from map drops unknown keys", func(t *testing.T) {
		c := ChecklistFromMap(map[string]bool{ChecklistPreco: true, "x": true})
		if !c.Preco || c.Fiscal {
			t.Fatalf("unexpected checklist: %+v", c)
		}
	})
}

func TestOrderPatch_Apply(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	base := Order{
		ID:          "OS-2025-00000001",
		Description: "old",
		Status:      OrderStatusPendente,
		Checklist:   Checklist{Preco: true},
		Image:       &Attachment{FileName: "a.png", UploadStatus: UploadStatusUploaded},
	}

	desc := "new"
	out := OrderPatch{
		Description: &desc,
		Checklist:   map[string]bool{ChecklistFiscal: true},
		UpdatedBy:   "Ana",
		UpdatedAt:   now,
	}.Apply(base)

	if out.Description != "new" || !out.Checklist.Preco || !out.Checklist.Fiscal {
		t.Fatalf("unexpected order: %+v", out)
	}
	if out.LastUpdatedBy != "Ana" || !out.UpdatedAt.Equal(now) {
		t.Fatalf("audit not stamped: %+v", out)
	}
	out.Image.FileName = "changed.png"
	if base.Image.FileName != "a.png" {
		t.Fatalf("apply must not alias attachments")
	}
}

func TestEmployeeKey(t *testing.T) {
	if EmployeeKey("  João ") != EmployeeKey("JOÃO") {
		t.Fatalf("expected case-insensitive keys")
	}
	if EmployeeKey("Álvaro") != EmployeeKey("ÁLVARO") {
		t.Fatalf("expected accented letters to fold")
	}
	if EmployeeKey("Ana") == EmployeeKey("Ana Paula") {
		t.Fatalf("distinct names must not collide")
	}
}
