package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"
)

// WorkOrderRepository adds tracking-code lookup to the work-order collection.
type WorkOrderRepository struct {
	*Collection[entities.WorkOrder]
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{NewCollection(func(o entities.WorkOrder) string { return o.ID }, cloneWorkOrder)}
}

// GetByTrackingCode matches ignoring case; the newest matching order wins.
func (r *WorkOrderRepository) GetByTrackingCode(_ context.Context, code string) (entities.WorkOrder, error) {
	o, _ := r.Find(func(o entities.WorkOrder) bool { return strings.EqualFold(o.TrackingCode, code) })
	return o, nil
}

type BlogPostRepository struct {
	*Collection[entities.BlogPost]
}

var _ interfaces.IBlogPostRepository = (*BlogPostRepository)(nil)

func NewBlogPostRepository() *BlogPostRepository {
	return &BlogPostRepository{NewCollection(func(p entities.BlogPost) string { return p.ID }, cloneBlogPost)}
}

func (r *BlogPostRepository) GetBySlug(_ context.Context, slug string) (entities.BlogPost, error) {
	p, _ := r.Find(func(p entities.BlogPost) bool { return p.Slug == slug })
	return p, nil
}

type WorkOrderPaymentRepository struct {
	payments *Collection[entities.WorkOrderPayment]
}

var _ interfaces.IWorkOrderPaymentRepository = (*WorkOrderPaymentRepository)(nil)

func NewWorkOrderPaymentRepository() *WorkOrderPaymentRepository {
	return &WorkOrderPaymentRepository{
		payments: NewCollection(func(p entities.WorkOrderPayment) string { return p.ID }, func(p entities.WorkOrderPayment) entities.WorkOrderPayment {
			p.ProviderPayloadRaw = slices.Clone(p.ProviderPayloadRaw)
			return p
		}),
	}
}

func (r *WorkOrderPaymentRepository) Create(ctx context.Context, p entities.WorkOrderPayment) (entities.WorkOrderPayment, error) {
	return r.payments.Create(ctx, p)
}

func (r *WorkOrderPaymentRepository) ListByWorkOrderID(_ context.Context, workOrderID string) ([]entities.WorkOrderPayment, error) {
	return r.payments.Filter(func(p entities.WorkOrderPayment) bool { return p.WorkOrderID == workOrderID }), nil
}

// SettingsRepository holds the settings singleton.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings entities.StoreSettings
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(_ context.Context) (entities.StoreSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, s entities.StoreSettings) (entities.StoreSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
	return s, nil
}

// NewRepositories returns an empty in-memory store for every collection.
func NewRepositories() persistence.Repositories {
	return persistence.Repositories{
		Leads:             NewCollection(func(l entities.Lead) string { return l.ID }, nil),
		Products:          NewCollection(func(p entities.Product) string { return p.ID }, cloneProduct),
		Services:          NewCollection(func(s entities.Service) string { return s.ID }, nil),
		BlogPosts:         NewBlogPostRepository(),
		FinancialRecords:  NewCollection(func(f entities.FinancialRecord) string { return f.ID }, nil),
		Appointments:      NewCollection(func(a entities.Appointment) string { return a.ID }, nil),
		WorkOrders:        NewWorkOrderRepository(),
		WorkOrderPayments: NewWorkOrderPaymentRepository(),
		Settings:          NewSettingsRepository(),
	}
}

func cloneWorkOrder(o entities.WorkOrder) entities.WorkOrder {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneBlogPost(p entities.BlogPost) entities.BlogPost {
	p.Keywords = slices.Clone(p.Keywords)
	return p
}

func cloneProduct(p entities.Product) entities.Product {
	p.Gallery = slices.Clone(p.Gallery)
	if p.Specs != nil {
		specs := *p.Specs
		if specs.Year != nil {
			y := *specs.Year
			specs.Year = &y
		}
		if specs.Mileage != nil {
			m := *specs.Mileage
			specs.Mileage = &m
		}
		p.Specs = &specs
	}
	return p
}
