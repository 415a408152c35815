// Package storetest provides an in-memory stand-in for the DynamoDB client
// so repository and handler tests run without a real table.
package storetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Fake implements store.DynamoAPI over in-memory maps. Scan order follows
// map iteration order, which matches the store contract of no guaranteed
// order. PutErr, DeleteErr and ScanErr inject failures when set.
type Fake struct {
	mu        sync.Mutex
	keyFields map[string]string
	tables    map[string]map[string]map[string]types.AttributeValue

	PutErr    error
	DeleteErr error
	ScanErr   error
}

func New() *Fake {
	return &Fake{
		keyFields: make(map[string]string),
		tables:    make(map[string]map[string]map[string]types.AttributeValue),
	}
}

// CreateTable registers a table and its key attribute.
func (f *Fake) CreateTable(name, keyField string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keyFields[name] = keyField
	f.tables[name] = make(map[string]map[string]types.AttributeValue)
}

func (f *Fake) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.PutErr != nil {
		return nil, f.PutErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	table, err := f.table(*params.TableName)
	if err != nil {
		return nil, err
	}
	key, err := f.keyValue(*params.TableName, params.Item)
	if err != nil {
		return nil, err
	}
	table[key] = params.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *Fake) DeleteItem(_ context.Context, params *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	table, err := f.table(*params.TableName)
	if err != nil {
		return nil, err
	}
	key, err := f.keyValue(*params.TableName, params.Key)
	if err != nil {
		return nil, err
	}
	delete(table, key)
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *Fake) Scan(_ context.Context, params *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.ScanErr != nil {
		return nil, f.ScanErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	table, err := f.table(*params.TableName)
	if err != nil {
		return nil, err
	}
	out := &dynamodb.ScanOutput{}
	for _, item := range table {
		out.Items = append(out.Items, item)
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

// Count reports how many items a table holds.
func (f *Fake) Count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tables[name])
}

func (f *Fake) table(name string) (map[string]map[string]types.AttributeValue, error) {
	t, ok := f.tables[name]
	if !ok {
		return nil, fmt.Errorf("table not found: %s", name)
	}
	return t, nil
}

func (f *Fake) keyValue(table string, attrs map[string]types.AttributeValue) (string, error) {
	keyField := f.keyFields[table]
	av, ok := attrs[keyField]
	if !ok {
		return "", fmt.Errorf("missing key attribute %s for table %s", keyField, table)
	}
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("key attribute %s must be a string", keyField)
	}
	return s.Value, nil
}
