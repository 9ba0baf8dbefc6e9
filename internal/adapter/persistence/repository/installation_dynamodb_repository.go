package repository

import (
	"context"
	"time"

	"agenda_etech/internal/domain/entities"
	"agenda_etech/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInstallationsTableName = "fichas_instalacao"

type chosenAppsItem struct {
	Category string   `dynamodbav:"category"`
	Apps     []string `dynamodbav:"apps"`
}

type installationItem struct {
	ID        string `dynamodbav:"id"`
	CreatedAt string `dynamodbav:"created_at"`
	Status    string `dynamodbav:"status"`

	NomeCompleto string `dynamodbav:"nome_completo"`
	CPF          string `dynamodbav:"cpf"`
	Nascimento   string `dynamodbav:"nascimento,omitempty"`
	Contato1     string `dynamodbav:"contato1"`
	Contato2     string `dynamodbav:"contato2,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	EnderecoFull string `dynamodbav:"endereco_full"`
	Referencia   string `dynamodbav:"referencia,omitempty"`

	VencimentoDia int    `dynamodbav:"vencimento_dia"`
	EntregaFatura string `dynamodbav:"entrega_fatura"`
	TaxaPagamento string `dynamodbav:"taxa_pagamento"`

	WifiNome  string `dynamodbav:"wifi_nome"`
	WifiSenha string `dynamodbav:"wifi_senha"`

	PlanoCodigo string `dynamodbav:"plano_codigo"`
	PlanoNome   string `dynamodbav:"plano_nome"`
	PlanoMbps   int    `dynamodbav:"plano_mbps"`
	PlanoValor  int64  `dynamodbav:"plano_valor"`

	AppsEscolhidos []chosenAppsItem `dynamodbav:"apps_escolhidos"`

	CriadoPor     string `dynamodbav:"criado_por,omitempty"`
	NotasInternas string `dynamodbav:"notas_internas,omitempty"`
	ReservaID     string `dynamodbav:"reserva_id,omitempty"`
}

// InstallationDynamoRepository persists installation intake records in
// DynamoDB, keyed by id.
//
// Table requirements:
//   - PK: id (string)

type InstallationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInstallationRepository = (*InstallationDynamoRepository)(nil)

func NewInstallationDynamoRepository(ddb *dynamodb.Client) *InstallationDynamoRepository {
	return &InstallationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INSTALLATIONS_TABLE", defaultInstallationsTableName),
	}
}

func (r *InstallationDynamoRepository) Create(ctx context.Context, inst entities.Installation) (entities.Installation, error) {
	av, err := attributevalue.MarshalMap(toInstallationItem(inst))
	if err != nil {
		return entities.Installation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Installation{}, err
	}
	return inst, nil
}

func (r *InstallationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installation{}, nil
	}

	var it installationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installation{}, err
	}
	return fromInstallationItem(it), nil
}

func (r *InstallationDynamoRepository) List(ctx context.Context) ([]entities.Installation, error) {
	items := make([]entities.Installation, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it installationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromInstallationItem(it))
		}
	}
	return items, nil
}

func (r *InstallationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toInstallationItem(inst entities.Installation) installationItem {
	apps := make([]chosenAppsItem, 0, len(inst.AppsEscolhidos))
	for _, g := range inst.AppsEscolhidos {
		apps = append(apps, chosenAppsItem{Category: string(g.Category), Apps: g.Apps})
	}

	return installationItem{
		ID:        inst.ID,
		CreatedAt: inst.CreatedAt.UTC().Format(time.RFC3339Nano),
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

func fromInstallationItem(it installationItem) entities.Installation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)

	apps := make([]entities.ChosenApps, 0, len(it.AppsEscolhidos))
	for _, g := range it.AppsEscolhidos {
		apps = append(apps, entities.ChosenApps{Category: entities.AppCategory(g.Category), Apps: g.Apps})
	}

	return entities.Installation{
		ID:        it.ID,
		CreatedAt: createdAt,
		Status:    entities.InstallStatus(it.Status),

		NomeCompleto: it.NomeCompleto,
		CPF:          it.CPF,
		Nascimento:   it.Nascimento,
		Contato1:     it.Contato1,
		Contato2:     it.Contato2,
		Email:        it.Email,
		EnderecoFull: it.EnderecoFull,
		Referencia:   it.Referencia,

		VencimentoDia: it.VencimentoDia,
		EntregaFatura: entities.BillingDelivery(it.EntregaFatura),
		TaxaPagamento: entities.InstallFeePayment(it.TaxaPagamento),

		WifiNome:  it.WifiNome,
		WifiSenha: it.WifiSenha,

		PlanoCodigo: it.PlanoCodigo,
		PlanoNome:   it.PlanoNome,
		PlanoMbps:   it.PlanoMbps,
		PlanoValor:  it.PlanoValor,

		AppsEscolhidos: apps,

		CriadoPor:     it.CriadoPor,
		NotasInternas: it.NotasInternas,
		ReservaID:     it.ReservaID,
	}
}
