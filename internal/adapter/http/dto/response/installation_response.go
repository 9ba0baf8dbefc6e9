package response

import (
	"time"

	"agenda_etech/internal/domain/entities"
)

type ChosenAppsResponse struct {
	Category string   `json:"category"`
	Apps     []string `json:"apps"`
}

type InstallationResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`

	NomeCompleto string `json:"nome_completo"`
	CPF          string `json:"cpf"`
	Nascimento   string `json:"nascimento,omitempty"`
	Contato1     string `json:"contato1"`
	Contato2     string `json:"contato2,omitempty"`
	Email        string `json:"email,omitempty"`
	EnderecoFull string `json:"endereco_full"`
	Referencia   string `json:"referencia,omitempty"`

	VencimentoDia int    `json:"vencimento_dia"`
	EntregaFatura string `json:"entrega_fatura"`
	TaxaPagamento string `json:"taxa_pagamento"`

	WifiNome  string `json:"wifi_nome"`
	WifiSenha string `json:"wifi_senha"`

	PlanoCodigo string `json:"plano_codigo"`
	PlanoNome   string `json:"plano_nome"`
	PlanoMbps   int    `json:"plano_mbps"`
	PlanoValor  int64  `json:"plano_valor"`

	AppsEscolhidos []ChosenAppsResponse `json:"apps_escolhidos"`

	CriadoPor     string `json:"criado_por,omitempty"`
	NotasInternas string `json:"notas_internas,omitempty"`
	ReservaID     string `json:"reserva_id,omitempty"`
}

func FromInstallation(inst entities.Installation) InstallationResponse {
	apps := make([]ChosenAppsResponse, 0, len(inst.AppsEscolhidos))
	for _, g := range inst.AppsEscolhidos {
		apps = append(apps, ChosenAppsResponse{Category: string(g.Category), Apps: g.Apps})
	}

	return InstallationResponse{
		ID:        inst.ID,
		CreatedAt: inst.CreatedAt,
		Status:    string(inst.Status),

		NomeCompleto: inst.NomeCompleto,
		CPF:          inst.CPF,
		Nascimento:   inst.Nascimento,
		Contato1:     inst.Contato1,
		Contato2:     inst.Contato2,
		Email:        inst.Email,
		EnderecoFull: inst.EnderecoFull,
		Referencia:   inst.Referencia,

		VencimentoDia: inst.VencimentoDia,
		EntregaFatura: string(inst.EntregaFatura),
		TaxaPagamento: string(inst.TaxaPagamento),

		WifiNome:  inst.WifiNome,
		WifiSenha: inst.WifiSenha,

		PlanoCodigo: inst.PlanoCodigo,
		PlanoNome:   inst.PlanoNome,
		PlanoMbps:   inst.PlanoMbps,
		PlanoValor:  inst.PlanoValor,

		AppsEscolhidos: apps,

		CriadoPor:     inst.CriadoPor,
		NotasInternas: inst.NotasInternas,
		ReservaID:     inst.ReservaID,
	}
}

func FromInstallations(list []entities.Installation) []InstallationResponse {
	out := make([]InstallationResponse, 0, len(list))
	for _, inst := range list {
		out = append(out, FromInstallation(inst))
	}
	return out
}
