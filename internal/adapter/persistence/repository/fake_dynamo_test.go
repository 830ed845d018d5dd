package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items per table in memory and understands the few
// expressions the repositories send.
type fakeDynamo struct {
	mu      sync.Mutex
	tables  map[string]map[string]map[string]types.AttributeValue
	created []string
}

var _ dynamoAPI = (*fakeDynamo)(nil)

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func keyOf(av map[string]types.AttributeValue) string {
	s, _ := av[idAttr].(*types.AttributeValueMemberS)
	if s == nil {
		return ""
	}
	return s.Value
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	id := keyOf(in.Item)
	_, exists := t[id]
	switch aws.ToString(in.ConditionExpression) {
	case "attribute_not_exists(#id)":
		if exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	case "attribute_exists(#id)":
		if !exists {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
		}
	}
	t[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.table(aws.ToString(in.TableName))[keyOf(in.Key)]}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.table(aws.ToString(in.TableName))
	id := keyOf(in.Key)
	old := t[id]
	delete(t, id)
	return &dynamodb.DeleteItemOutput{Attributes: old}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := &dynamodb.ScanOutput{}
	for _, it := range f.table(aws.ToString(in.TableName)) {
		out.Items = append(out.Items, it)
	}
	return out, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if aws.ToString(in.IndexName) != paymentsWorkOrderIDIndex {
		return nil, fmt.Errorf("unexpected index %q", aws.ToString(in.IndexName))
	}
	want := in.ExpressionAttributeValues[":woid"].(*types.AttributeValueMemberS).Value
	out := &dynamodb.QueryOutput{}
	for _, it := range f.table(aws.ToString(in.TableName)) {
		if v, ok := it["work_order_id"].(*types.AttributeValueMemberS); ok && v.Value == want {
			out.Items = append(out.Items, it)
		}
	}
	return out, nil
}

func (f *fakeDynamo) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := aws.ToString(in.TableName)
	if _, ok := f.tables[name]; ok {
		return nil, &types.ResourceInUseException{Message: aws.String("in use")}
	}
	f.tables[name] = map[string]map[string]types.AttributeValue{}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}
