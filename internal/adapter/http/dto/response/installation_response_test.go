package response

import (
	"testing"
	"time"

	"agenda_etech/internal/domain/entities"
)

func TestFromInstallation(t *testing.T) {
	now := time.Now().UTC()
	inst := entities.Installation{
		ID:        "INST-1",
		CreatedAt: now,
		Status:    entities.InstallStatusCriado,

		NomeCompleto: "João Pereira",
		CPF:          "123.456.789-00",
		Contato1:     "(11) 98888-0000",
		EnderecoFull: "Rua Azul, 12 - Centro",

		VencimentoDia: 10,
		EntregaFatura: entities.BillingDeliveryApp,
		TaxaPagamento: entities.InstallFeePix,

		WifiNome:  "Casa-Joao",
		WifiSenha: "segredo123",

		PlanoCodigo: "PLUS_300",
		PlanoNome:   "Plano Plus 300",
		PlanoMbps:   300,
		PlanoValor:  11999,

		AppsEscolhidos: []entities.ChosenApps{
			{Category: entities.AppCategoryStandard, Apps: []string{"Looke", "Deezer"}},
			{Category: entities.AppCategoryAdvanced, Apps: []string{}},
		},
	}

	res := FromInstallation(inst)
	if res.ID != "INST-1" || res.Status != "CRIADO" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.PlanoCodigo != "PLUS_300" || res.PlanoNome != "Plano Plus 300" || res.PlanoMbps != 300 || res.PlanoValor != 11999 {
		t.Fatalf("unexpected plan snapshot: %+v", res)
	}
	if res.EntregaFatura != "APP" || res.TaxaPagamento != "PIX" || res.VencimentoDia != 10 {
		t.Fatalf("unexpected billing fields: %+v", res)
	}
	if len(res.AppsEscolhidos) != 2 {
		t.Fatalf("unexpected app groups: %+v", res.AppsEscolhidos)
	}
	if res.AppsEscolhidos[0].Category != "STANDARD" || len(res.AppsEscolhidos[0].Apps) != 2 {
		t.Fatalf("unexpected standard group: %+v", res.AppsEscolhidos[0])
	}
	if res.AppsEscolhidos[1].Category != "ADVANCED" || len(res.AppsEscolhidos[1].Apps) != 0 {
		t.Fatalf("unexpected advanced group: %+v", res.AppsEscolhidos[1])
	}
}
