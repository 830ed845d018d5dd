package repository

import (
	"context"
	"sort"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Table persists one entity collection in a DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// Every item also carries inserted_at (number), used to list newest first.
type Table[T any] struct {
	ddb       dynamoAPI
	tableName string
	idOf      func(T) string
	seq       *sequence
}

var _ interfaces.IRepository[struct{}] = (*Table[struct{}])(nil)

func NewTable[T any](ddb dynamoAPI, tableName string, idOf func(T) string) *Table[T] {
	return &Table[T]{ddb: ddb, tableName: tableName, idOf: idOf, seq: &sequence{}}
}

func (t *Table[T]) Name() string {
	return t.tableName
}

func (t *Table[T]) Create(ctx context.Context, e T) (T, error) {
	var zero T
	av, err := marshalDoc(e)
	if err != nil {
		return zero, err
	}
	av[insertedAtAttr] = numberAttr(t.seq.next())

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": idAttr,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return zero, persistence.ErrAlreadyExists
		}
		return zero, err
	}
	return e, nil
}

func (t *Table[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(t.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, err
	}
	if len(out.Item) == 0 {
		return zero, nil
	}
	var e T
	if err := unmarshalDoc(out.Item, &e); err != nil {
		return zero, err
	}
	return e, nil
}

// List scans the whole table and orders it by insertion, newest first.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	type row struct {
		at int64
		e  T
	}
	var rows []row
	p := dynamodb.NewScanPaginator(t.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(t.tableName),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var e T
			if err := unmarshalDoc(raw, &e); err != nil {
				return nil, err
			}
			rows = append(rows, row{at: insertedAt(raw), e: e})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].at > rows[j].at })

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.e)
	}
	return out, nil
}

// Update replaces the stored item and keeps its insertion stamp.
func (t *Table[T]) Update(ctx context.Context, e T) (T, error) {
	var zero T
	id := t.idOf(e)
	cur, err := t.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(t.tableName),
		Key:                      idKey(id),
		ConsistentRead:           aws.Bool(true),
		ProjectionExpression:     aws.String("#id, #ia"),
		ExpressionAttributeNames: map[string]string{"#id": idAttr, "#ia": insertedAtAttr},
	})
	if err != nil {
		return zero, err
	}
	if len(cur.Item) == 0 {
		return zero, nil
	}

	av, err := marshalDoc(e)
	if err != nil {
		return zero, err
	}
	av[insertedAtAttr] = numberAttr(insertedAt(cur.Item))

	_, err = t.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(t.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": idAttr,
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return zero, nil
		}
		return zero, err
	}
	return e, nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := t.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(t.tableName),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return zero, err
	}
	if len(out.Attributes) == 0 {
		return zero, nil
	}
	var e T
	if err := unmarshalDoc(out.Attributes, &e); err != nil {
		return zero, err
	}
	return e, nil
}

// Find scans for the newest entity matching pred.
func (t *Table[T]) Find(ctx context.Context, pred func(T) bool) (T, error) {
	var zero T
	all, err := t.List(ctx)
	if err != nil {
		return zero, err
	}
	for _, e := range all {
		if pred(e) {
			return e, nil
		}
	}
	return zero, nil
}
