package repository

import (
	"context"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// settingsItemID is the key of the single settings item.
const settingsItemID = "store"

type SettingsDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb dynamoAPI, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName}
}

// Get returns zero settings until the first Save.
func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.StoreSettings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(settingsItemID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StoreSettings{}, err
	}
	if len(out.Item) == 0 {
		return entities.StoreSettings{}, nil
	}
	var s entities.StoreSettings
	if err := unmarshalDoc(out.Item, &s); err != nil {
		return entities.StoreSettings{}, err
	}
	return s, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
	av, err := marshalDoc(s)
	if err != nil {
		return entities.StoreSettings{}, err
	}
	av[idAttr] = &types.AttributeValueMemberS{Value: settingsItemID}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.StoreSettings{}, err
	}
	return s, nil
}
