package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	groceryerrors "github.com/abgdnv/grocerylist/internal/errors"
)

// DynamoAPI is the subset of the DynamoDB client used by the store.
type DynamoAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// DynamoStore implements ItemStore on top of a DynamoDB table with a global
// secondary index keyed on Name.
type DynamoStore struct {
	client    DynamoAPI
	table     string
	nameIndex string
}

// NewDynamoStore creates a new instance of ItemStore backed by DynamoDB.
func NewDynamoStore(client DynamoAPI, table, nameIndex string) *DynamoStore {
	return &DynamoStore{
		client:    client,
		table:     table,
		nameIndex: nameIndex,
	}
}

// FindAll retrieves every item with a single unbounded table scan.
func (s *DynamoStore) FindAll(ctx context.Context) ([]Item, error) {
	out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan items: %w", err)
	}

	items := make([]Item, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scanned items: %w", err)
	}
	return items, nil
}

// FindByName queries the Name index and returns the first match.
// Returns ErrItemNotFound if the index has no entry for the name.
func (s *DynamoStore) FindByName(ctx context.Context, name string) (*Item, error) {
	keyCond := expression.Key("Name").Equal(expression.Value(name))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	out, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.table),
		IndexName:                 aws.String(s.nameIndex),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query item by name: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, groceryerrors.ErrItemNotFound
	}

	var item Item
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queried item: %w", err)
	}
	return &item, nil
}

// Put writes the item, silently replacing any existing item with the same ItemID.
func (s *DynamoStore) Put(ctx context.Context, item Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}
	return nil
}

// UpdatePurchased sets the Purchased attribute on the item with the given ID.
func (s *DynamoStore) UpdatePurchased(ctx context.Context, itemID string, purchased bool) error {
	update := expression.Set(expression.Name("Purchased"), expression.Value(purchased))
	expr, err := expression.NewBuilder().WithUpdate(update).Build()
	if err != nil {
		return fmt.Errorf("failed to build update expression: %w", err)
	}

	if _, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"ItemID": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	return nil
}
