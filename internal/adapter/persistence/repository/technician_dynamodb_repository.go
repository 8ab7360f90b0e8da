package repository

import (
	"context"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTechniciansTableName = "technicians"

type technicianItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Active    bool   `dynamodbav:"active"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TechnicianDynamoRepository is the DynamoDB-backed technician directory.
//
// Table requirements:
//   - PK: id (string)

type TechnicianDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITechnicianRepository = (*TechnicianDynamoRepository)(nil)

func NewTechnicianDynamoRepository(ddb *dynamodb.Client) *TechnicianDynamoRepository {
	return &TechnicianDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TECHNICIANS_TABLE", defaultTechniciansTableName),
	}
}

func (r *TechnicianDynamoRepository) Create(ctx context.Context, t entities.Technician) (entities.Technician, error) {
	av, err := attributevalue.MarshalMap(toTechnicianItem(t))
	if err != nil {
		return entities.Technician{}, err
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
		return entities.Technician{}, err
	}
	return t, nil
}

func (r *TechnicianDynamoRepository) GetByID(ctx context.Context, id string) (entities.Technician, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Technician{}, err
	}
	if len(out.Item) == 0 {
		return entities.Technician{}, nil
	}

	var it technicianItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Technician{}, err
	}
	return fromTechnicianItem(it), nil
}

func (r *TechnicianDynamoRepository) List(ctx context.Context) ([]entities.Technician, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	technicians := make([]entities.Technician, 0, len(out.Items))
	for _, item := range out.Items {
		var it technicianItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		technicians = append(technicians, fromTechnicianItem(it))
	}
	return technicians, nil
}

func toTechnicianItem(t entities.Technician) technicianItem {
	return technicianItem{
		ID:        t.ID,
		Name:      t.Name,
		Active:    t.Active,
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromTechnicianItem(it technicianItem) entities.Technician {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Technician{
		ID:        it.ID,
		Name:      it.Name,
		Active:    it.Active,
		CreatedAt: createdAt,
	}
}
