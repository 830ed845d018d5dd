package repository

import (
	"context"
	"sort"
	"time"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsWorkOrderIDIndex = "work_order_id-index"

type workOrderPaymentItem struct {
	ID                 string  `dynamodbav:"id"`
	WorkOrderID        string  `dynamodbav:"work_order_id"`
	Amount             float64 `dynamodbav:"amount"`
	Date               string  `dynamodbav:"date"`
	Status             string  `dynamodbav:"status"`
	ProviderPayloadRaw string  `dynamodbav:"provider_payload_raw,omitempty"`
}

// WorkOrderPaymentDynamoRepository persists checkout payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: work_order_id-index (PK: work_order_id)
type WorkOrderPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IWorkOrderPaymentRepository = (*WorkOrderPaymentDynamoRepository)(nil)

func NewWorkOrderPaymentDynamoRepository(ddb dynamoAPI, tableName string) *WorkOrderPaymentDynamoRepository {
	return &WorkOrderPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderPaymentDynamoRepository) Create(ctx context.Context, p entities.WorkOrderPayment) (entities.WorkOrderPayment, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderPaymentItem(p))
	if err != nil {
		return entities.WorkOrderPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": idAttr,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.WorkOrderPayment{}, persistence.ErrAlreadyExists
		}
		return entities.WorkOrderPayment{}, err
	}
	return p, nil
}

// ListByWorkOrderID returns the payments of one work order, newest first.
func (r *WorkOrderPaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderPayment, error) {
	items := []entities.WorkOrderPayment{}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsWorkOrderIDIndex),
		KeyConditionExpression: aws.String("#woid = :woid"),
		ExpressionAttributeNames: map[string]string{
			"#woid": "work_order_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":woid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it workOrderPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromWorkOrderPaymentItem(it))
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

func toWorkOrderPaymentItem(p entities.WorkOrderPayment) workOrderPaymentItem {
	return workOrderPaymentItem{
		ID:                 p.ID,
		WorkOrderID:        p.WorkOrderID,
		Amount:             p.Amount,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromWorkOrderPaymentItem(it workOrderPaymentItem) entities.WorkOrderPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	var raw []byte
	if it.ProviderPayloadRaw != "" {
		raw = []byte(it.ProviderPayloadRaw)
	}
	return entities.WorkOrderPayment{
		ID:                 it.ID,
		WorkOrderID:        it.WorkOrderID,
		Amount:             it.Amount,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayloadRaw: raw,
	}
}
