package repository

import (
	"context"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"
)

// WorkOrderDynamoRepository persists work orders. Tracking codes are matched
// ignoring case, which DynamoDB cannot index, so the lookup scans.
type WorkOrderDynamoRepository struct {
	*Table[entities.WorkOrder]
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb dynamoAPI, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{NewTable(ddb, tableName, func(o entities.WorkOrder) string { return o.ID })}
}

func (r *WorkOrderDynamoRepository) GetByTrackingCode(ctx context.Context, code string) (entities.WorkOrder, error) {
	return r.Find(ctx, func(o entities.WorkOrder) bool { return strings.EqualFold(o.TrackingCode, code) })
}

type BlogPostDynamoRepository struct {
	*Table[entities.BlogPost]
}

var _ interfaces.IBlogPostRepository = (*BlogPostDynamoRepository)(nil)

func NewBlogPostDynamoRepository(ddb dynamoAPI, tableName string) *BlogPostDynamoRepository {
	return &BlogPostDynamoRepository{NewTable(ddb, tableName, func(p entities.BlogPost) string { return p.ID })}
}

func (r *BlogPostDynamoRepository) GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error) {
	return r.Find(ctx, func(p entities.BlogPost) bool { return p.Slug == slug })
}
