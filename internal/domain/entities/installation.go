package entities

import "time"

// InstallStatus is the lifecycle of an installation intake record.
//
// The service only ever creates records with StatusCriado; later transitions
// (scheduling, SGP registration, completion) happen in the operational flow
// outside this service and are kept for round-tripping existing records.

type InstallStatus string

const (
	InstallStatusCriado        InstallStatus = "CRIADO"
	InstallStatusAgendado      InstallStatus = "AGENDADO"
	InstallStatusCadastradoSGP InstallStatus = "CADASTRADO_SGP"
	InstallStatusFinalizado    InstallStatus = "FINALIZADO"
	InstallStatusCancelado     InstallStatus = "CANCELADO"
)

// BillingDelivery is how the customer receives the monthly invoice.

type BillingDelivery string

const (
	BillingDeliveryWhatsAppEmail BillingDelivery = "WHATSAPP_EMAIL"
	BillingDeliveryApp           BillingDelivery = "APP"
)

// InstallFeePayment is the payment method for the installation fee.

type InstallFeePayment string

const (
	InstallFeeDinheiro InstallFeePayment = "DINHEIRO"
	InstallFeePix      InstallFeePayment = "PIX"
	InstallFeeCartao   InstallFeePayment = "CARTAO"
)

// Installation is a customer intake form (ficha de instalação).
//
// The plano* fields are a snapshot of the catalog entry taken at creation
// time, so later catalog changes never alter historical records.
//
// Storage model (DynamoDB):
//   - PK: id

type Installation struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Status    InstallStatus `json:"status"`

	NomeCompleto string `json:"nome_completo"`
	CPF          string `json:"cpf"`
	Nascimento   string `json:"nascimento,omitempty"`
	Contato1     string `json:"contato1"`
	Contato2     string `json:"contato2,omitempty"`
	Email        string `json:"email,omitempty"`
	EnderecoFull string `json:"endereco_full"`
	Referencia   string `json:"referencia,omitempty"`

	VencimentoDia int               `json:"vencimento_dia"` // 10, 20 or 30
	EntregaFatura BillingDelivery   `json:"entrega_fatura"`
	TaxaPagamento InstallFeePayment `json:"taxa_pagamento"`

	WifiNome  string `json:"wifi_nome"`
	WifiSenha string `json:"wifi_senha"`

	PlanoCodigo string `json:"plano_codigo"`
	PlanoNome   string `json:"plano_nome"`
	PlanoMbps   int    `json:"plano_mbps"`
	PlanoValor  int64  `json:"plano_valor"`

	AppsEscolhidos []ChosenApps `json:"apps_escolhidos"`

	CriadoPor     string `json:"criado_por,omitempty"`
	NotasInternas string `json:"notas_internas,omitempty"`
	ReservaID     string `json:"reserva_id,omitempty"`
}

// VencimentoDias lists the billing due days the SGP accepts.
var VencimentoDias = []int{10, 20, 30}

func ValidVencimentoDia(d int) bool {
	for _, v := range VencimentoDias {
		if v == d {
			return true
		}
	}
	return false
}

func ValidBillingDelivery(b BillingDelivery) bool {
	return b == BillingDeliveryWhatsAppEmail || b == BillingDeliveryApp
}

func ValidInstallFeePayment(p InstallFeePayment) bool {
	return p == InstallFeeDinheiro || p == InstallFeePix || p == InstallFeeCartao
}
