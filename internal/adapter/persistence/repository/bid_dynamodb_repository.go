package repository

import (
	"context"
	"errors"
	"time"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBidsTableName = "bids"

type bidSelectionItem struct {
	Category  string `dynamodbav:"category"`
	Selection string `dynamodbav:"selection"`
	Price     string `dynamodbav:"price"`
}

type bidItem struct {
	ID              string             `dynamodbav:"id"`
	Email           string             `dynamodbav:"email"`
	TotalEstimate   string             `dynamodbav:"total_estimate"`
	TimeEstimateMin int                `dynamodbav:"time_estimate_min"`
	TimeEstimateMax int                `dynamodbav:"time_estimate_max"`
	StartDate       string             `dynamodbav:"start_date"`
	EndDate         string             `dynamodbav:"end_date"`
	SelectedOptions []bidSelectionItem `dynamodbav:"selected_options"`
	Status          string             `dynamodbav:"status"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// BidDynamoRepository persists Bid entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The frozen selections are stored denormalized on the bid item: they
// are immutable after submission and only read back as a whole.

type BidDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBidRepository = (*BidDynamoRepository)(nil)

func NewBidDynamoRepository(ddb *dynamodb.Client) *BidDynamoRepository {
	return &BidDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *BidDynamoRepository) Create(ctx context.Context, b entities.Bid) (entities.Bid, error) {
	it := toBidItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Bid{}, err
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
		return entities.Bid{}, err
	}
	return b, nil
}

func (r *BidDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bid, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bid{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func (r *BidDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.BidStatus) (entities.Bid, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Bid{}, nil
		}
		return entities.Bid{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Bid{}, nil
	}

	var it bidItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bid{}, err
	}
	return fromBidItem(it), nil
}

func toBidItem(b entities.Bid) bidItem {
	selections := make([]bidSelectionItem, 0, len(b.SelectedOptions))
	for _, s := range b.SelectedOptions {
		selections = append(selections, bidSelectionItem{
			Category:  s.Category,
			Selection: s.Selection,
			Price:     floatToString(s.Price),
		})
	}
	return bidItem{
		ID:              b.ID,
		Email:           b.Email,
		TotalEstimate:   floatToString(b.TotalEstimate),
		TimeEstimateMin: b.TimeEstimateMin,
		TimeEstimateMax: b.TimeEstimateMax,
		StartDate:       b.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:         b.EndDate.UTC().Format(time.RFC3339Nano),
		SelectedOptions: selections,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBidItem(it bidItem) entities.Bid {
	selections := make([]entities.BidSelection, 0, len(it.SelectedOptions))
	for _, s := range it.SelectedOptions {
		selections = append(selections, entities.BidSelection{
			Category:  s.Category,
			Selection: s.Selection,
			Price:     stringToFloat(s.Price),
		})
	}
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Bid{
		ID:              it.ID,
		Email:           it.Email,
		TotalEstimate:   stringToFloat(it.TotalEstimate),
		TimeEstimateMin: it.TimeEstimateMin,
		TimeEstimateMax: it.TimeEstimateMax,
		StartDate:       startDate,
		EndDate:         endDate,
		SelectedOptions: selections,
		Status:          entities.BidStatus(it.Status),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
