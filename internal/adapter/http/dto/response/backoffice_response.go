package response

import (
	"time"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"
)

type DashboardResponse struct {
	TotalLeads     int                      `json:"total_leads"`
	MonthlyRevenue float64                  `json:"monthly_revenue"`
	ProductCount   int                      `json:"product_count"`
	OpenWorkOrders int                      `json:"open_work_orders"`
	ConversionRate float64                  `json:"conversion_rate"`
	RecentLeads    []entities.Lead          `json:"recent_leads"`
	RevenueByMonth []usecase.MonthlyRevenue `json:"revenue_by_month"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	res := DashboardResponse{
		TotalLeads:     d.TotalLeads,
		MonthlyRevenue: d.MonthlyRevenue,
		ProductCount:   d.ProductCount,
		OpenWorkOrders: d.OpenWorkOrders,
		ConversionRate: d.ConversionRate,
		RecentLeads:    d.RecentLeads,
		RevenueByMonth: d.RevenueByMonth,
	}
	if res.RecentLeads == nil {
		res.RecentLeads = []entities.Lead{}
	}
	if res.RevenueByMonth == nil {
		res.RevenueByMonth = []usecase.MonthlyRevenue{}
	}
	return res
}

type LedgerResponse struct {
	Records []entities.FinancialRecord `json:"records"`
	Summary usecase.LedgerSummary      `json:"summary"`
}

func FromLedger(records []entities.FinancialRecord) LedgerResponse {
	if records == nil {
		records = []entities.FinancialRecord{}
	}
	return LedgerResponse{Records: records, Summary: usecase.SummarizeLedger(records)}
}

type BlogQueueResponse struct {
	Topics []string `json:"topics"`
}

type PublicSettingsResponse struct {
	entities.StoreSettings
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
	CallURL     string `json:"call_url,omitempty"`
}

func FromPublicSettings(p usecase.PublicSettings) PublicSettingsResponse {
	return PublicSettingsResponse{
		StoreSettings: p.Settings,
		WhatsAppURL:   p.Links.WhatsApp,
		CallURL:       p.Links.Call,
	}
}

type LoginResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s usecase.Session) LoginResponse {
	return LoginResponse{Token: s.Token, TokenType: "Bearer", Username: s.Username, ExpiresAt: s.ExpiresAt}
}
