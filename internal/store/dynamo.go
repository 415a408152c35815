package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the slice of the DynamoDB client the store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store wraps DynamoDB with the three primitives every resource table needs:
// put, delete by key, full scan. Filtering and sorting happen in the callers,
// which is only workable at small table sizes.
type Store struct {
	client DynamoAPI
}

// New builds a store backed by a real DynamoDB client. An endpoint override
// points the client at a local stack instead of AWS.
func New(region, accessKeyID, secretKey, endpoint string) *Store {
	opts := dynamodb.Options{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{AccessKeyID: accessKeyID, SecretAccessKey: secretKey}, nil
		}),
	}
	if endpoint != "" {
		opts.EndpointResolver = dynamodb.EndpointResolverFromURL(endpoint)
	}
	return &Store{client: dynamodb.New(opts)}
}

// NewWithClient builds a store around an existing client.
func NewWithClient(client DynamoAPI) *Store {
	return &Store{client: client}
}

// AddItem writes item to table. The write is an upsert: a record with the
// same key is fully replaced, with no condition check.
func (s *Store) AddItem(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put item in %s: %w", table, err)
	}
	return nil
}

// DeleteItem removes the record whose keyField equals value. Deleting an
// absent key is not an error; DynamoDB reports success regardless.
func (s *Store) DeleteItem(ctx context.Context, table, keyField, value string) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			keyField: &types.AttributeValueMemberS{Value: value},
		},
	}); err != nil {
		return fmt.Errorf("delete item from %s: %w", table, err)
	}
	return nil
}

// ReadItems scans the whole table into out, following LastEvaluatedKey until
// the scan is exhausted. Order is whatever the store returns.
func (s *Store) ReadItems(ctx context.Context, table string, out any) error {
	var items []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		res, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return fmt.Errorf("scan %s: %w", table, err)
		}
		items = append(items, res.Items...)
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("unmarshal items from %s: %w", table, err)
	}
	return nil
}
