package repository

import (
	"context"
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsBidIDIndex       = "bid_id-index"
)

type bidPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	BidID              string                 `dynamodbav:"bid_id"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BidPaymentDynamoRepository persists BidPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: bid_id-index (PK: bid_id)

type BidPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidPaymentRepository = (*BidPaymentDynamoRepository)(nil)

func NewBidPaymentDynamoRepository(ddb *dynamodb.Client) *BidPaymentDynamoRepository {
	return &BidPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *BidPaymentDynamoRepository) Create(ctx context.Context, p entities.BidPayment) (entities.BidPayment, error) {
	it := toBidPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BidPayment{}, err
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
		return entities.BidPayment{}, err
	}
	return p, nil
}

func (r *BidPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BidPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BidPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BidPayment{}, nil
	}

	var it bidPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BidPayment{}, err
	}
	return fromBidPaymentItem(it), nil
}

func (r *BidPaymentDynamoRepository) ListByBidID(ctx context.Context, bidID string) ([]entities.BidPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsBidIDIndex),
		KeyConditionExpression: aws.String("bid_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: bidID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.BidPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bidPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBidPaymentItem(it))
	}
	return items, nil
}

func toBidPaymentItem(p entities.BidPayment) bidPaymentItem {
	return bidPaymentItem{
		ID:                 p.ID,
		BidID:              p.BidID,
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromBidPaymentItem(it bidPaymentItem) entities.BidPayment {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.BidPayment{
		ID:                 it.ID,
		BidID:              it.BidID,
		Date:               dt,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
