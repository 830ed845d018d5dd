package repository

import (
	"context"
	"errors"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	log "github.com/sirupsen/logrus"
)

// Collection names; each table is named <prefix><collection>.
const (
	LeadsTable             = "leads"
	ProductsTable          = "products"
	ServicesTable          = "services"
	BlogPostsTable         = "blog_posts"
	FinancialRecordsTable  = "financial_records"
	AppointmentsTable      = "appointments"
	WorkOrdersTable        = "work_orders"
	WorkOrderPaymentsTable = "work_order_payments"
	SettingsTable          = "settings"
)

// NewRepositories wires every collection to its DynamoDB table.
func NewRepositories(ddb *dynamodb.Client, tablePrefix string) persistence.Repositories {
	return newRepositories(ddb, tablePrefix)
}

func newRepositories(ddb dynamoAPI, prefix string) persistence.Repositories {
	return persistence.Repositories{
		Leads:             NewTable(ddb, prefix+LeadsTable, func(l entities.Lead) string { return l.ID }),
		Products:          NewTable(ddb, prefix+ProductsTable, func(p entities.Product) string { return p.ID }),
		Services:          NewTable(ddb, prefix+ServicesTable, func(s entities.Service) string { return s.ID }),
		BlogPosts:         NewBlogPostDynamoRepository(ddb, prefix+BlogPostsTable),
		FinancialRecords:  NewTable(ddb, prefix+FinancialRecordsTable, func(f entities.FinancialRecord) string { return f.ID }),
		Appointments:      NewTable(ddb, prefix+AppointmentsTable, func(a entities.Appointment) string { return a.ID }),
		WorkOrders:        NewWorkOrderDynamoRepository(ddb, prefix+WorkOrdersTable),
		WorkOrderPayments: NewWorkOrderPaymentDynamoRepository(ddb, prefix+WorkOrderPaymentsTable),
		Settings:          NewSettingsDynamoRepository(ddb, prefix+SettingsTable),
	}
}

type tableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates the missing tables (on-demand billing). Tables that
// already exist are left as they are.
func EnsureTables(ctx context.Context, ddb tableCreator, tablePrefix string) error {
	for _, in := range tableDefinitions(tablePrefix) {
		_, err := ddb.CreateTable(ctx, in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			log.Printf("[dynamodb][repository] create table failed table=%s err=%v", aws.ToString(in.TableName), err)
			return err
		}
		log.Printf("[dynamodb][repository] table created table=%s", aws.ToString(in.TableName))
	}
	return nil
}

func tableDefinitions(prefix string) []*dynamodb.CreateTableInput {
	names := []string{
		LeadsTable, ProductsTable, ServicesTable, BlogPostsTable, FinancialRecordsTable,
		AppointmentsTable, WorkOrdersTable, WorkOrderPaymentsTable, SettingsTable,
	}
	out := make([]*dynamodb.CreateTableInput, 0, len(names))
	for _, name := range names {
		in := &dynamodb.CreateTableInput{
			TableName:   aws.String(prefix + name),
			BillingMode: types.BillingModePayPerRequest,
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String(idAttr), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(idAttr), KeyType: types.KeyTypeHash},
			},
		}
		if name == WorkOrderPaymentsTable {
			in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
				AttributeName: aws.String("work_order_id"), AttributeType: types.ScalarAttributeTypeS,
			})
			in.GlobalSecondaryIndexes = []types.GlobalSecondaryIndex{{
				IndexName: aws.String(paymentsWorkOrderIDIndex),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("work_order_id"), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			}}
		}
		out = append(out, in)
	}
	return out
}
