package response

import (
	"time"

	"agenda_etech/internal/domain/entities"
)

type ReservationResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	Motivo          string    `json:"motivo"`
	Data            string    `json:"data"`
	Hora            string    `json:"hora"`
	Viatura         string    `json:"viatura"`
	Status          string    `json:"status"`
	ClienteNome     string    `json:"cliente_nome"`
	ClienteContato  string    `json:"cliente_contato"`
	ClienteEndereco string    `json:"cliente_endereco"`
}

func FromReservation(r entities.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		CreatedAt:       r.CreatedAt,
		Motivo:          string(r.Motivo),
		Data:            r.Data,
		Hora:            r.Hora,
		Viatura:         r.Viatura,
		Status:          entities.StatusReservado,
		ClienteNome:     r.ClienteNome,
		ClienteContato:  r.ClienteContato,
		ClienteEndereco: r.ClienteEndereco,
	}
}

func FromReservations(list []entities.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromReservation(r))
	}
	return out
}
