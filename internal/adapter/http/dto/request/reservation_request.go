package request

import (
	"agenda_etech/internal/domain/entities"
)

// ReservationRequest is the reservation form payload as submitted by the
// dashboard. Field-level validation (required fields, accepted motivo)
// happens in the use case so trimming rules live in one place.
type ReservationRequest struct {
	Motivo          string `json:"motivo"`
	Data            string `json:"data"`
	Hora            string `json:"hora"`
	Viatura         string `json:"viatura"`
	ClienteNome     string `json:"cliente_nome"`
	ClienteContato  string `json:"cliente_contato"`
	ClienteEndereco string `json:"cliente_endereco"`
}

func (r ReservationRequest) ToEntity() entities.Reservation {
	return entities.Reservation{
		Motivo:          entities.ReservaMotivo(r.Motivo),
		Data:            r.Data,
		Hora:            r.Hora,
		Viatura:         r.Viatura,
		ClienteNome:     r.ClienteNome,
		ClienteContato:  r.ClienteContato,
		ClienteEndereco: r.ClienteEndereco,
	}
}
