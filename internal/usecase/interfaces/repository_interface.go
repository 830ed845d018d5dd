package interfaces

import (
	"context"

	"arton_garage/internal/domain/entities"
)

// IRepository is the collection contract shared by every entity store.
//
// Conventions (both the memory and the DynamoDB backends follow them):
//   - List returns newest first (creation order reversed).
//   - GetByID, Update and Delete return the zero value when the id is unknown;
//     callers translate that into a not-found error.
//   - Update replaces the stored entity wholesale.
type IRepository[T any] interface {
	Create(ctx context.Context, e T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, e T) (T, error)
	Delete(ctx context.Context, id string) (T, error)
}

type ILeadRepository interface {
	IRepository[entities.Lead]
}

type IProductRepository interface {
	IRepository[entities.Product]
}

type IServiceRepository interface {
	IRepository[entities.Service]
}

type IAppointmentRepository interface {
	IRepository[entities.Appointment]
}

type IFinancialRecordRepository interface {
	IRepository[entities.FinancialRecord]
}

type IBlogPostRepository interface {
	IRepository[entities.BlogPost]
	GetBySlug(ctx context.Context, slug string) (entities.BlogPost, error)
}

// IWorkOrderRepository also resolves public tracking codes, case-insensitively.
type IWorkOrderRepository interface {
	IRepository[entities.WorkOrder]
	GetByTrackingCode(ctx context.Context, code string) (entities.WorkOrder, error)
}

type IWorkOrderPaymentRepository interface {
	Create(ctx context.Context, p entities.WorkOrderPayment) (entities.WorkOrderPayment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderPayment, error)
}

// ISettingsRepository stores the StoreSettings singleton.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.StoreSettings, error)
	Save(ctx context.Context, s entities.StoreSettings) (entities.StoreSettings, error)
}
