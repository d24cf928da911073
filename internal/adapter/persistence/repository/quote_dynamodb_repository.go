package repository

import (
	"context"
	"strconv"
	"time"

	"tagshop_variants/internal/domain/entities"
	"tagshop_variants/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "variant_quotes"
	quotesProductIDIndex   = "product_id-index"
)

type pricedQuoteItem struct {
	ID        string `dynamodbav:"id"`
	ProductID string `dynamodbav:"product_id"`
	VariantID int64  `dynamodbav:"variant_id"`
	Title     string `dynamodbav:"title"`
	Price     string `dynamodbav:"price"`
	Reused    bool   `dynamodbav:"reused"`
	CreatedAt string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists PricedQuote audit records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: product_id-index (PK: product_id)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.PricedQuote) (entities.PricedQuote, error) {
	it := toPricedQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PricedQuote{}, err
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
		return entities.PricedQuote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) ListByProductID(ctx context.Context, productID string) ([]entities.PricedQuote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesProductIDIndex),
		KeyConditionExpression: aws.String("product_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.PricedQuote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it pricedQuoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPricedQuoteItem(it))
	}
	return items, nil
}

func toPricedQuoteItem(q entities.PricedQuote) pricedQuoteItem {
	return pricedQuoteItem{
		ID:        q.ID,
		ProductID: q.ProductID,
		VariantID: q.VariantID,
		Title:     q.Title,
		Price:     strconv.FormatFloat(q.Price, 'f', -1, 64),
		Reused:    q.Reused,
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPricedQuoteItem(it pricedQuoteItem) entities.PricedQuote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.PricedQuote{
		ID:        it.ID,
		ProductID: it.ProductID,
		VariantID: it.VariantID,
		Title:     it.Title,
		Price:     price,
		Reused:    it.Reused,
		CreatedAt: createdAt,
	}
}
