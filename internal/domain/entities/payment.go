package entities

// Payment is one processed payment as delivered by the SGP worker. It is
// read-only upstream data: the service fetches, classifies and aggregates it
// but never stores or mutates it.
//
// Monetary representation:
//   - All valor* fields are float64 reais, exactly as the worker emits them.
//     Aggregation keeps the worker's precision; see PaymentsSummary.

type Payment struct {
	ContratoID      string  `json:"contratoId"`
	Cliente         string  `json:"cliente"`
	CPFCNPJ         string  `json:"cpfcnpj"`
	Plano           string  `json:"plano"`
	ValorPlanoRef   float64 `json:"valorPlanoRef"`
	ValorBoleto     float64 `json:"valorBoleto"`
	ValorPago       float64 `json:"valorPago"`
	DataPagamento   string  `json:"dataPagamento"` // YYYY-MM-DD
	Portador        string  `json:"portador"`
	Endereco        string  `json:"endereco"`
	Cidade          string  `json:"cidade"`
	UF              string  `json:"uf"`
	ValorSCM        float64 `json:"valorSCM"`
	ValorSCI        float64 `json:"valorSCI"`
	ValorSVA        float64 `json:"valorSVA"`
	FormaPagamento  string  `json:"formaPagamento"`
	TituloID        string  `json:"tituloId"`
	NossoNumero     string  `json:"nossoNumero"`
	NumeroDocumento string  `json:"numeroDocumento"`
	ChaveUnica      string  `json:"chaveUnica"`
}

// DailyPayments is the per-calendar-day rollup inside a PaymentsSummary.

type DailyPayments struct {
	Date        string  `json:"date"`
	Count       int     `json:"count"`
	Total       float64 `json:"total"`
	TicketMedio float64 `json:"ticketMedio"`
}

// PaymentsSummary is the derived report for a payment list. It is recomputed
// in full on every request and never persisted.
//
// TotalSCM/TotalSVA classify by substring match on the portador label; a
// combined label ("SCM/SVA") counts toward both buckets.

type PaymentsSummary struct {
	TotalRecebido   float64         `json:"totalRecebido"`
	TotalPagamentos int             `json:"totalPagamentos"`
	TicketMedio     float64         `json:"ticketMedio"`
	TotalSCM        float64         `json:"totalSCM"`
	TotalSVA        float64         `json:"totalSVA"`
	DailySummary    []DailyPayments `json:"dailySummary"`
}
