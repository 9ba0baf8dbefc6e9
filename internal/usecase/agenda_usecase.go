package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase/interfaces"
)

// IAgendaUseCase loads the operational agenda: the SGP ordens de serviço
// fetched from the worker, with local reservations merged into the same
// day/vehicle buckets.

type IAgendaUseCase interface {
	Load(ctx context.Context, query string) (entities.Agenda, error)
}

type AgendaUseCase struct {
	gateway      interfaces.IAgendaGateway
	reservations interfaces.IReservationRepository
}

var _ IAgendaUseCase = (*AgendaUseCase)(nil)

func NewAgendaUseCase(gateway interfaces.IAgendaGateway, reservations interfaces.IReservationRepository) *AgendaUseCase {
	return &AgendaUseCase{gateway: gateway, reservations: reservations}
}

// Load fetches the SGP agenda, overlays local reservations and applies the
// optional search filter. Days stay sorted ascending after the merge; days
// and vehicles with no matching item are dropped when filtering.
func (u *AgendaUseCase) Load(ctx context.Context, query string) (entities.Agenda, error) {
	agenda, err := u.gateway.FetchAgenda(ctx)
	if err != nil {
		log.Printf("[agenda][usecase] fetch failed err=%v", err)
		return entities.Agenda{}, err
	}

	reservas, err := u.reservations.List(ctx)
	if err != nil {
		log.Printf("[agenda][usecase] listing local reservations failed err=%v", err)
		return entities.Agenda{}, err
	}
	mergeReservations(&agenda, reservas)

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		filterAgenda(&agenda, q)
	}
	return agenda, nil
}

func mergeReservations(agenda *entities.Agenda, reservas []entities.Reservation) {
	osCount := 0
	for _, dia := range agenda.Dias {
		for _, items := range dia.PorViatura {
			osCount += len(items)
		}
	}

	for _, res := range reservas {
		item := reservationToItem(res)

		idx := -1
		for i, dia := range agenda.Dias {
			if dia.Data == res.Data {
				idx = i
				break
			}
		}
		if idx == -1 {
			agenda.Dias = append(agenda.Dias, entities.AgendaDay{
				Data:       res.Data,
				PorViatura: map[string][]entities.AgendaItem{},
			})
			idx = len(agenda.Dias) - 1
		}
		if agenda.Dias[idx].PorViatura == nil {
			agenda.Dias[idx].PorViatura = map[string][]entities.AgendaItem{}
		}
		agenda.Dias[idx].PorViatura[res.Viatura] = append(agenda.Dias[idx].PorViatura[res.Viatura], item)

		if !containsString(agenda.Viaturas, res.Viatura) {
			agenda.Viaturas = append(agenda.Viaturas, res.Viatura)
		}
	}

	sort.Slice(agenda.Dias, func(i, j int) bool { return agenda.Dias[i].Data < agenda.Dias[j].Data })
	agenda.Totais = &entities.AgendaTotais{OS: osCount, Reservas: len(reservas)}
}

func reservationToItem(res entities.Reservation) entities.AgendaItem {
	return entities.AgendaItem{
		Tipo:        entities.TipoReservaLocal,
		ID:          res.ID,
		Status:      entities.StatusReservado,
		Data:        res.Data,
		Hora:        res.Hora,
		Motivo:      string(res.Motivo),
		Responsavel: res.Viatura,
		Cliente: &entities.Cliente{
			Nome:      res.ClienteNome,
			Telefones: []string{res.ClienteContato},
			Endereco:  &entities.ClienteEndereco{Logradouro: res.ClienteEndereco},
		},
	}
}

func filterAgenda(agenda *entities.Agenda, q string) {
	dias := make([]entities.AgendaDay, 0, len(agenda.Dias))
	for _, dia := range agenda.Dias {
		porViatura := map[string][]entities.AgendaItem{}
		for viatura, items := range dia.PorViatura {
			kept := make([]entities.AgendaItem, 0, len(items))
			for _, item := range items {
				if itemMatches(item, q) {
					kept = append(kept, item)
				}
			}
			if len(kept) > 0 {
				porViatura[viatura] = kept
			}
		}
		if len(porViatura) > 0 {
			dias = append(dias, entities.AgendaDay{Data: dia.Data, PorViatura: porViatura})
		}
	}
	agenda.Dias = dias
}

// itemMatches mirrors the dashboard's agenda search: one query matched
// case-insensitively against customer, contract, plan, address and service
// fields.
func itemMatches(item entities.AgendaItem, q string) bool {
	fields := []string{item.Motivo, item.ID, item.Contrato, item.Responsavel, item.Usuario}
	if c := item.Cliente; c != nil {
		fields = append(fields, c.Nome, c.ContratoID, c.Plano)
		if e := c.Endereco; e != nil {
			fields = append(fields, e.Logradouro, e.Numero, e.Bairro, e.Cidade)
		}
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
