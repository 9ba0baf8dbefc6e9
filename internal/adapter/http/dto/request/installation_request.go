package request

// InstallationRequest is the intake form payload. The plan is referenced by
// codigo and option id; the app selection arrives flat and is partitioned
// against the catalog on the server.
type InstallationRequest struct {
	NomeCompleto string `json:"nome_completo"`
	CPF          string `json:"cpf"`
	Nascimento   string `json:"nascimento"`
	Contato1     string `json:"contato1"`
	Contato2     string `json:"contato2"`
	Email        string `json:"email"`
	EnderecoFull string `json:"endereco_full"`
	Referencia   string `json:"referencia"`

	VencimentoDia int    `json:"vencimento_dia"`
	EntregaFatura string `json:"entrega_fatura"`
	TaxaPagamento string `json:"taxa_pagamento"`

	WifiNome  string `json:"wifi_nome"`
	WifiSenha string `json:"wifi_senha"`

	PlanoCodigo  string   `json:"plano_codigo"`
	PlanoOpcaoID string   `json:"plano_opcao_id"`
	Apps         []string `json:"apps"`

	CriadoPor     string `json:"criado_por"`
	NotasInternas string `json:"notas_internas"`
	ReservaID     string `json:"reserva_id"`
}

// ToggleAppRequest flips one app in a selection for a plan option identified
// by the URL path.
type ToggleAppRequest struct {
	App      string   `json:"app"`
	Category string   `json:"category"`
	Selected []string `json:"selected"`
}
