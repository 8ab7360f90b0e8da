package repository

import (
	"context"
	"strconv"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceOrdersTableName = "service_orders"

type serviceOrderItem struct {
	ID              string `dynamodbav:"id"`
	AttendanceType  string `dynamodbav:"attendance_type"`
	Status          string `dynamodbav:"status"`
	CurrentLocation string `dynamodbav:"current_location"`
	NeedsPickup     bool   `dynamodbav:"needs_pickup"`
	TechnicianID    string `dynamodbav:"technician_id,omitempty"`
	ScheduledAt     string `dynamodbav:"scheduled_at,omitempty"`
	FinalCost       string `dynamodbav:"final_cost,omitempty"`
	PaymentStatus   string `dynamodbav:"payment_status,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ServiceOrderDynamoRepository persists ServiceOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Save is an unconditional put: the use case is the only writer and has
// already validated the transition, so last-write-wins on the full item is
// acceptable here.

type ServiceOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderDynamoRepository)(nil)

func NewServiceOrderDynamoRepository(ddb *dynamodb.Client) *ServiceOrderDynamoRepository {
	return &ServiceOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_ORDERS_TABLE", defaultServiceOrdersTableName),
	}
}

func (r *ServiceOrderDynamoRepository) Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
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
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func (r *ServiceOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceOrder{}, nil
	}

	var it serviceOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceOrder{}, err
	}
	return fromServiceOrderItem(it), nil
}

func (r *ServiceOrderDynamoRepository) Save(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	av, err := attributevalue.MarshalMap(toServiceOrderItem(o))
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	return o, nil
}

func toServiceOrderItem(o entities.ServiceOrder) serviceOrderItem {
	it := serviceOrderItem{
		ID:              o.ID,
		AttendanceType:  string(o.AttendanceType),
		Status:          string(o.Status),
		CurrentLocation: string(o.CurrentLocation),
		NeedsPickup:     o.NeedsPickup,
		TechnicianID:    o.TechnicianID,
		PaymentStatus:   string(o.PaymentStatus),
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if o.ScheduledAt != nil {
		it.ScheduledAt = o.ScheduledAt.UTC().Format(time.RFC3339Nano)
	}
	if o.FinalCost != nil {
		it.FinalCost = floatToString(*o.FinalCost)
	}
	return it
}

func fromServiceOrderItem(it serviceOrderItem) entities.ServiceOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	o := entities.ServiceOrder{
		ID:              it.ID,
		AttendanceType:  entities.AttendanceType(it.AttendanceType),
		Status:          entities.OrderStatus(it.Status),
		CurrentLocation: entities.OrderLocation(it.CurrentLocation),
		NeedsPickup:     it.NeedsPickup,
		TechnicianID:    it.TechnicianID,
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.ScheduledAt != "" {
		if at, err := time.Parse(time.RFC3339Nano, it.ScheduledAt); err == nil {
			o.ScheduledAt = &at
		}
	}
	if it.FinalCost != "" {
		if cost, err := strconv.ParseFloat(it.FinalCost, 64); err == nil {
			o.FinalCost = &cost
		}
	}
	return o
}
