package usecase

import (
	"context"
	"sort"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const recentLeadsLimit = 5

// MonthlyRevenue is the inflow total of one calendar month (YYYY-MM).
type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type Dashboard struct {
	TotalLeads     int
	MonthlyRevenue float64
	ProductCount   int
	OpenWorkOrders int
	RecentLeads    []entities.Lead
	RevenueByMonth []MonthlyRevenue
	ConversionRate float64
}

type IDashboardUseCase interface {
	Overview(ctx context.Context) (Dashboard, error)
}

type DashboardUseCase struct {
	leads      interfaces.ILeadRepository
	products   interfaces.IProductRepository
	ledger     interfaces.IFinancialRecordRepository
	workOrders interfaces.IWorkOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	leads interfaces.ILeadRepository,
	products interfaces.IProductRepository,
	ledger interfaces.IFinancialRecordRepository,
	workOrders interfaces.IWorkOrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{leads: leads, products: products, ledger: ledger, workOrders: workOrders}
}

// Overview aggregates the back-office landing numbers. MonthlyRevenue is the
// sum of every inflow record; ConversionRate is the share of leads in status
// Fechado, in percent.
func (u *DashboardUseCase) Overview(ctx context.Context) (Dashboard, error) {
	leads, err := u.leads.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	products, err := u.products.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	records, err := u.ledger.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	orders, err := u.workOrders.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		TotalLeads:     len(leads),
		MonthlyRevenue: SummarizeLedger(records).TotalInflow,
		ProductCount:   len(products),
		RevenueByMonth: revenueByMonth(records),
	}
	recent := leads
	if len(recent) > recentLeadsLimit {
		recent = recent[:recentLeadsLimit]
	}
	d.RecentLeads = append([]entities.Lead{}, recent...)

	for _, o := range orders {
		if o.Status != entities.WorkOrderStatusEntregue {
			d.OpenWorkOrders++
		}
	}

	closed := 0
	for _, l := range leads {
		if l.Status == entities.LeadStatusFechado {
			closed++
		}
	}
	if len(leads) > 0 {
		d.ConversionRate = decimal.NewFromInt(int64(closed)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(int64(len(leads)))).
			Round(1).
			InexactFloat64()
	}
	return d, nil
}

// revenueByMonth groups inflow records by the YYYY-MM prefix of their date,
// oldest month first. Records with a malformed date are skipped.
func revenueByMonth(records []entities.FinancialRecord) []MonthlyRevenue {
	totals := map[string]decimal.Decimal{}
	for _, r := range records {
		if r.Type != entities.FinancialRecordInflow || len(r.Date) < len("2006-01") {
			continue
		}
		month := r.Date[:7]
		totals[month] = totals[month].Add(decimal.NewFromFloat(r.Amount))
	}
	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]MonthlyRevenue, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlyRevenue{Month: m, Amount: totals[m].InexactFloat64()})
	}
	return out
}
