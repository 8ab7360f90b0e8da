package repository

import (
	"context"
	"errors"
	"time"

	"assistec_os/internal/domain/entities"
	"assistec_os/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID           string `dynamodbav:"id"`
	OrderID      string `dynamodbav:"order_id"`
	TechnicianID string `dynamodbav:"technician_id"`
	ScheduledAt  string `dynamodbav:"scheduled_at"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AppointmentDynamoRepository persists Appointment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string) = technician_id#date#time
//
// The slot is the primary key, so the conditional put doubles as the
// store-side half of the slot exclusivity invariant: a concurrent writer
// racing past the in-process guard fails the condition and gets ErrSlotTaken.

type AppointmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb *dynamodb.Client) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
	}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	av, err := attributevalue.MarshalMap(toAppointmentItem(a))
	if err != nil {
		return entities.Appointment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Appointment{}, interfaces.ErrSlotTaken
		}
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) ListByTechnicianAndRange(ctx context.Context, technicianID string, from, to time.Time) ([]entities.Appointment, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#technician_id = :technician_id AND #scheduled_at BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#technician_id": "technician_id",
			"#scheduled_at":  "scheduled_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":technician_id": &types.AttributeValueMemberS{Value: technicianID},
			":from":          &types.AttributeValueMemberS{Value: from.UTC().Format(time.RFC3339Nano)},
			":to":            &types.AttributeValueMemberS{Value: to.UTC().Format(time.RFC3339Nano)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	appointments := make([]entities.Appointment, 0, len(out.Items))
	for _, item := range out.Items {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		appointments = append(appointments, fromAppointmentItem(it))
	}
	return appointments, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *AppointmentDynamoRepository) ReleaseByOrderID(ctx context.Context, orderID string) error {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#order_id = :order_id"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return err
	}

	for _, item := range out.Items {
		var it appointmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		if err := r.Delete(ctx, it.ID); err != nil {
			return err
		}
	}
	return nil
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:           a.ID,
		OrderID:      a.OrderID,
		TechnicianID: a.TechnicianID,
		ScheduledAt:  a.ScheduledAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	scheduledAt, _ := time.Parse(time.RFC3339Nano, it.ScheduledAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Appointment{
		ID:           it.ID,
		OrderID:      it.OrderID,
		TechnicianID: it.TechnicianID,
		ScheduledAt:  scheduledAt,
		CreatedAt:    createdAt,
	}
}
