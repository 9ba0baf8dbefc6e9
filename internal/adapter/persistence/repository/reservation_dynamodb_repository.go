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

const defaultReservationsTableName = "reservas_locais"

type reservationItem struct {
	ID              string `dynamodbav:"id"`
	CreatedAt       string `dynamodbav:"created_at"`
	Motivo          string `dynamodbav:"motivo"`
	Data            string `dynamodbav:"data"`
	Hora            string `dynamodbav:"hora"`
	Viatura         string `dynamodbav:"viatura"`
	ClienteNome     string `dynamodbav:"cliente_nome"`
	ClienteContato  string `dynamodbav:"cliente_contato"`
	ClienteEndereco string `dynamodbav:"cliente_endereco"`
}

// ReservationDynamoRepository persists local reservations in DynamoDB,
// keyed by id so deletes never rewrite the whole list.
//
// Table requirements:
//   - PK: id (string)

type ReservationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReservationRepository = (*ReservationDynamoRepository)(nil)

func NewReservationDynamoRepository(ddb *dynamodb.Client) *ReservationDynamoRepository {
	return &ReservationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESERVATIONS_TABLE", defaultReservationsTableName),
	}
}

func (r *ReservationDynamoRepository) Create(ctx context.Context, res entities.Reservation) (entities.Reservation, error) {
	av, err := attributevalue.MarshalMap(toReservationItem(res))
	if err != nil {
		return entities.Reservation{}, err
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
		return entities.Reservation{}, err
	}
	return res, nil
}

func (r *ReservationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Reservation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Reservation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Reservation{}, nil
	}

	var it reservationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Reservation{}, err
	}
	return fromReservationItem(it), nil
}

func (r *ReservationDynamoRepository) List(ctx context.Context) ([]entities.Reservation, error) {
	items := make([]entities.Reservation, 0)

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it reservationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromReservationItem(it))
		}
	}
	return items, nil
}

func (r *ReservationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toReservationItem(res entities.Reservation) reservationItem {
	return reservationItem{
		ID:              res.ID,
		CreatedAt:       res.CreatedAt.UTC().Format(time.RFC3339Nano),
		Motivo:          string(res.Motivo),
		Data:            res.Data,
		Hora:            res.Hora,
		Viatura:         res.Viatura,
		ClienteNome:     res.ClienteNome,
		ClienteContato:  res.ClienteContato,
		ClienteEndereco: res.ClienteEndereco,
	}
}

func fromReservationItem(it reservationItem) entities.Reservation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Reservation{
		ID:              it.ID,
		CreatedAt:       createdAt,
		Motivo:          entities.ReservaMotivo(it.Motivo),
		Data:            it.Data,
		Hora:            it.Hora,
		Viatura:         it.Viatura,
		ClienteNome:     it.ClienteNome,
		ClienteContato:  it.ClienteContato,
		ClienteEndereco: it.ClienteEndereco,
	}
}
