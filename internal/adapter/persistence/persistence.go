// Package persistence groups the entity stores behind the use-case interfaces.
//
// Two backends implement them: memory (default, process-local) and repository
// (DynamoDB). Both are filled from the same seed on boot.
package persistence

import (
	"context"
	"errors"

	"arton_garage/internal/adapter/persistence/seed"
	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// ErrAlreadyExists is returned by Create when the id is taken.
var ErrAlreadyExists = errors.New("entity already exists")

type Repositories struct {
	Leads             interfaces.ILeadRepository
	Products          interfaces.IProductRepository
	Services          interfaces.IServiceRepository
	BlogPosts         interfaces.IBlogPostRepository
	FinancialRecords  interfaces.IFinancialRecordRepository
	Appointments      interfaces.IAppointmentRepository
	WorkOrders        interfaces.IWorkOrderRepository
	WorkOrderPayments interfaces.IWorkOrderPaymentRepository
	Settings          interfaces.ISettingsRepository
}

// SeedIfEmpty loads the seed into every collection that has no data yet.
// Collections that already hold entities are left untouched.
func SeedIfEmpty(ctx context.Context, r Repositories, data seed.Data) error {
	steps := []struct {
		name string
		run  func() (int, error)
	}{
		{"leads", func() (int, error) { return seedCollection(ctx, r.Leads, data.Leads) }},
		{"products", func() (int, error) { return seedCollection(ctx, r.Products, data.Products) }},
		{"services", func() (int, error) { return seedCollection(ctx, r.Services, data.Services) }},
		{"blog_posts", func() (int, error) { return seedCollection(ctx, r.BlogPosts, data.BlogPosts) }},
		{"financial_records", func() (int, error) { return seedCollection(ctx, r.FinancialRecords, data.FinancialRecords) }},
		{"appointments", func() (int, error) { return seedCollection(ctx, r.Appointments, data.Appointments) }},
		{"work_orders", func() (int, error) { return seedCollection(ctx, r.WorkOrders, data.WorkOrders) }},
		{"settings", func() (int, error) { return seedSettings(ctx, r.Settings, data.Settings) }},
	}
	for _, s := range steps {
		n, err := s.run()
		if err != nil {
			log.Printf("[seed][persistence] seeding failed collection=%s err=%v", s.name, err)
			return err
		}
		if n > 0 {
			log.Printf("[seed][persistence] collection seeded collection=%s count=%d", s.name, n)
		}
	}
	return nil
}

// seedCollection inserts items last to first so that the newest-first listing
// returns them in seed order.
func seedCollection[T any](ctx context.Context, repo interfaces.IRepository[T], items []T) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}
	for i := len(items) - 1; i >= 0; i-- {
		if _, err := repo.Create(ctx, items[i]); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}

func seedSettings(ctx context.Context, repo interfaces.ISettingsRepository, s entities.StoreSettings) (int, error) {
	current, err := repo.Get(ctx)
	if err != nil {
		return 0, err
	}
	if current.Name != "" {
		return 0, nil
	}
	if _, err := repo.Save(ctx, s); err != nil {
		return 0, err
	}
	return 1, nil
}
