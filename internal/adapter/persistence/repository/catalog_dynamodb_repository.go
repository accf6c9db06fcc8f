package repository

import (
	"context"

	"estimator_service/internal/domain/entities"
	"estimator_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog"

type catalogOptionItem struct {
	ID          string                  `dynamodbav:"id"`
	Label       string                  `dynamodbav:"label"`
	Description string                  `dynamodbav:"description"`
	Icon        string                  `dynamodbav:"icon,omitempty"`
	BasePrice   string                  `dynamodbav:"base_price"`
	Time        *catalogTimeItem        `dynamodbav:"time,omitempty"`
	Phases      []catalogPhaseItem      `dynamodbav:"phases,omitempty"`
}

type catalogTimeItem struct {
	Min  int `dynamodbav:"min"`
	Max  int `dynamodbav:"max"`
	Team int `dynamodbav:"team"`
}

type catalogPhaseItem struct {
	Name        string  `dynamodbav:"name"`
	Percentage  float64 `dynamodbav:"percentage"`
	Description string  `dynamodbav:"description,omitempty"`
}

type catalogCategoryItem struct {
	Name    string              `dynamodbav:"name"`
	Options []catalogOptionItem `dynamodbav:"options"`
}

// CatalogDynamoRepository reads the estimator catalog from DynamoDB.
//
// Table requirements:
//   - PK: name (string, the category name)
//
// The catalog is CMS-authored and small (one item per category), so
// ListCategories does a plain Scan and GetOption a single GetItem.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) ListCategories(ctx context.Context) ([]entities.Category, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	categories := make([]entities.Category, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogCategoryItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		categories = append(categories, fromCatalogCategoryItem(it))
	}
	return categories, nil
}

func (r *CatalogDynamoRepository) GetOption(ctx context.Context, category, optionID string) (entities.Option, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: category},
		},
	})
	if err != nil {
		return entities.Option{}, err
	}
	if len(out.Item) == 0 {
		return entities.Option{}, nil
	}

	var it catalogCategoryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Option{}, err
	}
	for _, opt := range it.Options {
		if opt.ID == optionID {
			return fromCatalogOptionItem(opt), nil
		}
	}
	return entities.Option{}, nil
}

func fromCatalogCategoryItem(it catalogCategoryItem) entities.Category {
	options := make([]entities.Option, 0, len(it.Options))
	for _, opt := range it.Options {
		options = append(options, fromCatalogOptionItem(opt))
	}
	return entities.Category{Name: it.Name, Options: options}
}

func fromCatalogOptionItem(it catalogOptionItem) entities.Option {
	opt := entities.Option{
		ID:          it.ID,
		Label:       it.Label,
		Description: it.Description,
		Icon:        it.Icon,
		BasePrice:   stringToFloat(it.BasePrice),
	}
	if it.Time != nil {
		opt.TimeEstimate = &entities.TimeEstimate{
			Min:  it.Time.Min,
			Max:  it.Time.Max,
			Team: it.Time.Team,
		}
	}
	for _, p := range it.Phases {
		opt.Phases = append(opt.Phases, entities.Phase{
			Name:        p.Name,
			Percentage:  p.Percentage,
			Description: p.Description,
		})
	}
	return opt
}
