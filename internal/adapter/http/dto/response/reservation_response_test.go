package response

import (
	"testing"
	"time"

	"agenda_etech/internal/domain/entities"
)

func TestFromReservation(t *testing.T) {
	now := time.Now().UTC()
	r := entities.Reservation{
		ID:              "RES-1",
		CreatedAt:       now,
		Motivo:          entities.ReservaMotivoSuporte,
		Data:            "2024-05-10",
		Hora:            "14:00",
		Viatura:         "VT01",
		ClienteNome:     "Ana Dias",
		ClienteContato:  "(11) 99999-0000",
		ClienteEndereco: "Rua Azul, 12",
	}

	res := FromReservation(r)
	if res.ID != "RES-1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Motivo != "Suporte" || res.Status != entities.StatusReservado {
		t.Fatalf("unexpected motivo/status: %+v", res)
	}
	if res.Data != "2024-05-10" || res.Hora != "14:00" || res.Viatura != "VT01" {
		t.Fatalf("unexpected schedule fields: %+v", res)
	}
	if res.ClienteNome != "Ana Dias" || res.ClienteContato != "(11) 99999-0000" || res.ClienteEndereco != "Rua Azul, 12" {
		t.Fatalf("unexpected customer fields: %+v", res)
	}
}

func TestFromReservations(t *testing.T) {
	if got := FromReservations(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
	got := FromReservations([]entities.Reservation{{ID: "RES-1"}, {ID: "RES-2"}})
	if len(got) != 2 || got[0].ID != "RES-1" || got[1].ID != "RES-2" {
		t.Fatalf("unexpected mapping: %+v", got)
	}
}
