package usecase

import (
	"context"
	"errors"
	"testing"

	"agenda_etech/internal/domain/entities"
	mock_interfaces "agenda_etech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleAgenda() entities.Agenda {
	return entities.Agenda{
		Viaturas: []string{"VT01", "VT02"},
		Dias: []entities.AgendaDay{
			{
				Data: "2024-05-10",
				PorViatura: map[string][]entities.AgendaItem{
					"VT01": {
						{Tipo: entities.TipoOS, ID: "OS-1", Motivo: "Instalação", Cliente: &entities.Cliente{Nome: "Maria Souza"}},
					},
					"VT02": {
						{Tipo: entities.TipoOS, ID: "OS-2", Motivo: "Suporte", Cliente: &entities.Cliente{Nome: "Carlos Lima"}},
					},
				},
			},
		},
	}
}

func TestAgendaUseCase_Load(t *testing.T) {
	t.Run("gateway failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAgendaGateway(ctrl)
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewAgendaUseCase(gw, repo)

		gw.EXPECT().FetchAgenda(gomock.Any()).Return(entities.Agenda{}, errors.New("timeout"))

		if _, err := uc.Load(context.Background(), ""); err == nil || err.Error() != "timeout" {
			t.Fatalf("expected timeout error, got %v", err)
		}
	})

	t.Run("merges local reservations into day and vehicle buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAgendaGateway(ctrl)
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewAgendaUseCase(gw, repo)

		gw.EXPECT().FetchAgenda(gomock.Any()).Return(sampleAgenda(), nil)
		repo.EXPECT().List(gomock.Any()).Return([]entities.Reservation{
			{ID: "RES-1", Data: "2024-05-10", Hora: "14:00", Viatura: "VT01", Motivo: entities.ReservaMotivoSuporte, ClienteNome: "Ana Dias"},
			{ID: "RES-2", Data: "2024-05-11", Hora: "09:00", Viatura: "VT03", Motivo: entities.ReservaMotivoInstalacao, ClienteNome: "Pedro Luz"},
		}, nil)

		agenda, err := uc.Load(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(agenda.Dias) != 2 || agenda.Dias[0].Data != "2024-05-10" || agenda.Dias[1].Data != "2024-05-11" {
			t.Fatalf("unexpected days: %+v", agenda.Dias)
		}

		vt01 := agenda.Dias[0].PorViatura["VT01"]
		if len(vt01) != 2 {
			t.Fatalf("expected OS + reservation on VT01, got %+v", vt01)
		}
		merged := vt01[1]
		if merged.Tipo != entities.TipoReservaLocal || merged.Status != entities.StatusReservado || merged.ID != "RES-1" {
			t.Fatalf("unexpected merged item: %+v", merged)
		}

		// New vehicle from a reservation joins the vehicle list.
		if !containsString(agenda.Viaturas, "VT03") {
			t.Fatalf("expected VT03 in viaturas, got %v", agenda.Viaturas)
		}

		if agenda.Totais == nil || agenda.Totais.OS != 2 || agenda.Totais.Reservas != 2 {
			t.Fatalf("unexpected totais: %+v", agenda.Totais)
		}
	})

	t.Run("search filter drops non-matching items, vehicles and days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAgendaGateway(ctrl)
		repo := mock_interfaces.NewMockIReservationRepository(ctrl)
		uc := NewAgendaUseCase(gw, repo)

		gw.EXPECT().FetchAgenda(gomock.Any()).Return(sampleAgenda(), nil)
		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		agenda, err := uc.Load(context.Background(), "maria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(agenda.Dias) != 1 {
			t.Fatalf("expected 1 day, got %+v", agenda.Dias)
		}
		pv := agenda.Dias[0].PorViatura
		if len(pv) != 1 || len(pv["VT01"]) != 1 || pv["VT01"][0].ID != "OS-1" {
			t.Fatalf("unexpected filtered agenda: %+v", pv)
		}
	})
}
