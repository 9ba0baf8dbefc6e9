package entities

// Agenda types mirror the SGP agenda endpoint payload: a list of vehicles
// (viaturas) and, per day, the service items bucketed by vehicle. The service
// consumes this read-only and overlays local reservations on top.

// TipoOS marks items coming from the SGP; TipoReservaLocal marks items
// created by this service's reservation flow.
const (
	TipoOS           = "os"
	TipoReservaLocal = "reserva_local"
)

type ClienteEndereco struct {
	Logradouro  string `json:"logradouro,omitempty"`
	Numero      string `json:"numero,omitempty"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro,omitempty"`
	Cidade      string `json:"cidade,omitempty"`
	UF          string `json:"uf,omitempty"`
	CEP         string `json:"cep,omitempty"`
}

type Cliente struct {
	Nome       string           `json:"nome,omitempty"`
	Telefones  []string         `json:"telefones,omitempty"`
	Email      string           `json:"email,omitempty"`
	Plano      string           `json:"plano,omitempty"`
	Observacao string           `json:"observacao,omitempty"`
	ContratoID string           `json:"contratoId,omitempty"`
	Endereco   *ClienteEndereco `json:"endereco,omitempty"`
}

// AgendaItem is one scheduled service (an SGP ordem de serviço or a local
// reservation) assigned to a vehicle on a day.

type AgendaItem struct {
	Tipo        string   `json:"tipo"`
	ID          string   `json:"id"`
	Contrato    string   `json:"contrato,omitempty"`
	Status      string   `json:"status,omitempty"`
	Data        string   `json:"data,omitempty"` // YYYY-MM-DD
	Hora        string   `json:"hora,omitempty"` // HH:mm
	Motivo      string   `json:"motivo,omitempty"`
	Responsavel string   `json:"responsavel,omitempty"`
	Usuario     string   `json:"usuario,omitempty"`
	Cliente     *Cliente `json:"cliente,omitempty"`
}

type AgendaDay struct {
	Data       string                  `json:"data"`
	PorViatura map[string][]AgendaItem `json:"porViatura"`
}

type AgendaTotais struct {
	OS       int `json:"os"`
	Reservas int `json:"reservas"`
}

type Agenda struct {
	Viaturas []string       `json:"viaturas"`
	Dias     []AgendaDay    `json:"dias"`
	Totais   *AgendaTotais  `json:"totais,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
}
