package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/davicafu/adsflow/internal/ad/domain"
)

// putItemAPI es el subconjunto del cliente DynamoDB que usa el repositorio.
type putItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// AdRepoDynamoDB implementa RecordStore sobre DynamoDB. La colección es el nombre de la tabla.
type AdRepoDynamoDB struct {
	client putItemAPI
}

var _ domain.RecordStore = (*AdRepoDynamoDB)(nil)

func NewAdRepoDynamoDB(client putItemAPI) *AdRepoDynamoDB {
	return &AdRepoDynamoDB{client: client}
}

type dynamoAd struct {
	ID        string  `dynamodbav:"id"`
	Title     string  `dynamodbav:"title"`
	Price     float64 `dynamodbav:"price"`
	ImageURL  *string `dynamodbav:"imageUrl"`
	CreatedAt string  `dynamodbav:"createdAt"`
}

// Put escribe el item solo si no existe otro con el mismo id.
func (r *AdRepoDynamoDB) Put(ctx context.Context, collection string, ad *domain.Ad) error {
	item, err := attributevalue.MarshalMap(dynamoAd{
		ID:        ad.ID,
		Title:     ad.Title,
		Price:     ad.Price,
		ImageURL:  ad.ImageURL,
		CreatedAt: ad.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(collection),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return fmt.Errorf("%w: %s", domain.ErrConflictingKey, ad.ID)
		}
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
