package entities

import "time"

// ReservaMotivo is the reason attached to a local service reservation.

type ReservaMotivo string

const (
	ReservaMotivoInstalacao        ReservaMotivo = "Instalação"
	ReservaMotivoMudancaEndereco   ReservaMotivo = "Mudança de Endereço"
	ReservaMotivoReativacao        ReservaMotivo = "Reativação"
	ReservaMotivoSuporte           ReservaMotivo = "Suporte"
	ReservaMotivoRecolhimento      ReservaMotivo = "Recolhimento"
)

// ReservaMotivos lists the accepted reasons in display order.
var ReservaMotivos = []ReservaMotivo{
	ReservaMotivoInstalacao,
	ReservaMotivoMudancaEndereco,
	ReservaMotivoReativacao,
	ReservaMotivoSuporte,
	ReservaMotivoRecolhimento,
}

// StatusReservado is the only status a local reservation ever has: it is
// created, shown in the agenda, and eventually deleted, never updated.
const StatusReservado = "Reservado"

// Reservation is a locally created service booking (reserva local), not yet
// synced to the SGP. The customer block is a snapshot taken at creation.
//
// Storage model (DynamoDB):
//   - PK: id

type Reservation struct {
	ID              string        `json:"id"`
	CreatedAt       time.Time     `json:"created_at"`
	Motivo          ReservaMotivo `json:"motivo"`
	Data            string        `json:"data"` // YYYY-MM-DD
	Hora            string        `json:"hora"` // HH:mm
	Viatura         string        `json:"viatura"`
	ClienteNome     string        `json:"cliente_nome"`
	ClienteContato  string        `json:"cliente_contato"`
	ClienteEndereco string        `json:"cliente_endereco"`
}

// ValidMotivo reports whether m is one of the accepted reservation reasons.
func ValidMotivo(m ReservaMotivo) bool {
	for _, v := range ReservaMotivos {
		if v == m {
			return true
		}
	}
	return false
}
