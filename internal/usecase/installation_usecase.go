package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const wifiSenhaMinLen = 8

var (
	ErrInstallationNotFound      = errors.New("installation not found")
	ErrInvalidInstallationID     = errors.New("invalid installation id")
	ErrMissingInstallationFields = errors.New("missing required installation fields")
	ErrWifiSenhaTooShort         = errors.New("wifi password below minimum length")
	ErrInvalidVencimentoDia      = errors.New("invalid vencimento dia")
	ErrInvalidEntregaFatura      = errors.New("invalid entrega fatura")
	ErrInvalidTaxaPagamento      = errors.New("invalid taxa pagamento")
)

// InstallationDraft is the intake form as submitted. The chosen plan is
// referenced by codigo/option id and the app selection is still flat; Create
// resolves both against the catalog.

type InstallationDraft struct {
	NomeCompleto string
	CPF          string
	Nascimento   string
	Contato1     string
	Contato2     string
	Email        string
	EnderecoFull string
	Referencia   string

	VencimentoDia int
	EntregaFatura entities.BillingDelivery
	TaxaPagamento entities.InstallFeePayment

	WifiNome  string
	WifiSenha string

	PlanoCodigo  string
	PlanoOpcaoID string
	Apps         []string

	CriadoPor     string
	NotasInternas string
	ReservaID     string
}

// IInstallationUseCase exposes the installation intake (ficha de instalação)
// flow.

type IInstallationUseCase interface {
	Create(ctx context.Context, draft InstallationDraft) (entities.Installation, error)
	List(ctx context.Context, query string) ([]entities.Installation, error)
	GetByID(ctx context.Context, id string) (entities.Installation, error)
	Delete(ctx context.Context, id string) error
}

type InstallationUseCase struct {
	repo    interfaces.IInstallationRepository
	catalog ICatalogUseCase
}

var _ IInstallationUseCase = (*InstallationUseCase)(nil)

func NewInstallationUseCase(repo interfaces.IInstallationRepository, catalog ICatalogUseCase) *InstallationUseCase {
	return &InstallationUseCase{repo: repo, catalog: catalog}
}

// Create validates the intake form, resolves the plan and partitions the app
// selection, then persists the record with a plan snapshot taken now so
// later catalog edits never alter it.
func (u *InstallationUseCase) Create(ctx context.Context, draft InstallationDraft) (entities.Installation, error) {
	draft.NomeCompleto = strings.TrimSpace(draft.NomeCompleto)
	draft.CPF = strings.TrimSpace(draft.CPF)
	draft.Contato1 = strings.TrimSpace(draft.Contato1)
	draft.EnderecoFull = strings.TrimSpace(draft.EnderecoFull)
	draft.WifiNome = strings.TrimSpace(draft.WifiNome)

	if draft.NomeCompleto == "" || draft.CPF == "" || draft.Contato1 == "" ||
		draft.EnderecoFull == "" || draft.WifiNome == "" || draft.WifiSenha == "" || draft.PlanoCodigo == "" {
		return entities.Installation{}, ErrMissingInstallationFields
	}
	if len(draft.WifiSenha) < wifiSenhaMinLen {
		return entities.Installation{}, ErrWifiSenhaTooShort
	}
	if !entities.ValidVencimentoDia(draft.VencimentoDia) {
		return entities.Installation{}, ErrInvalidVencimentoDia
	}
	if !entities.ValidBillingDelivery(draft.EntregaFatura) {
		return entities.Installation{}, ErrInvalidEntregaFatura
	}
	if !entities.ValidInstallFeePayment(draft.TaxaPagamento) {
		return entities.Installation{}, ErrInvalidTaxaPagamento
	}

	plano := u.catalog.LookupPlan(draft.PlanoCodigo)
	opcao := u.catalog.LookupOption(plano, draft.PlanoOpcaoID)
	if err := u.catalog.ValidateSelection(opcao, draft.Apps); err != nil {
		return entities.Installation{}, err
	}

	inst := entities.Installation{
		ID:        "INST-" + uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Status:    entities.InstallStatusCriado,

		NomeCompleto: draft.NomeCompleto,
		CPF:          draft.CPF,
		Nascimento:   draft.Nascimento,
		Contato1:     draft.Contato1,
		Contato2:     draft.Contato2,
		Email:        draft.Email,
		EnderecoFull: draft.EnderecoFull,
		Referencia:   draft.Referencia,

		VencimentoDia: draft.VencimentoDia,
		EntregaFatura: draft.EntregaFatura,
		TaxaPagamento: draft.TaxaPagamento,

		WifiNome:  draft.WifiNome,
		WifiSenha: draft.WifiSenha,

		PlanoCodigo: plano.Codigo,
		PlanoNome:   plano.Nome,
		PlanoMbps:   plano.Mbps,
		PlanoValor:  plano.Valor,

		AppsEscolhidos: u.catalog.MaterializeSelection(opcao, draft.Apps),

		CriadoPor:     draft.CriadoPor,
		NotasInternas: draft.NotasInternas,
		ReservaID:     draft.ReservaID,
	}

	created, err := u.repo.Create(ctx, inst)
	if err != nil {
		log.Printf("[instalacao][usecase] create failed plano=%s err=%v", plano.Codigo, err)
		return entities.Installation{}, err
	}
	log.Printf("[instalacao][usecase] create success id=%s plano=%s opcao=%s", created.ID, created.PlanoCodigo, opcao.ID)
	return created, nil
}

// List returns saved records, optionally filtered by a case-insensitive
// search over name, CPF, contact, address and plan name.
func (u *InstallationUseCase) List(ctx context.Context, query string) ([]entities.Installation, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return all, nil
	}

	out := make([]entities.Installation, 0, len(all))
	for _, inst := range all {
		if strings.Contains(strings.ToLower(inst.NomeCompleto), query) ||
			strings.Contains(strings.ToLower(inst.CPF), query) ||
			strings.Contains(strings.ToLower(inst.Contato1), query) ||
			strings.Contains(strings.ToLower(inst.EnderecoFull), query) ||
			strings.Contains(strings.ToLower(inst.PlanoNome), query) {
			out = append(out, inst)
		}
	}
	return out, nil
}

func (u *InstallationUseCase) GetByID(ctx context.Context, id string) (entities.Installation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Installation{}, ErrInvalidInstallationID
	}

	inst, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Installation{}, err
	}
	if inst.ID == "" {
		return entities.Installation{}, ErrInstallationNotFound
	}
	return inst, nil
}

func (u *InstallationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInstallationID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrInstallationNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[instalacao][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[instalacao][usecase] delete success id=%s", id)
	return nil
}
