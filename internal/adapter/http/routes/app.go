package routes

import (
	"context"
	"errors"
	"fmt"

	"arton_garage/internal/adapter/http/handlers"
	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/adapter/persistence/memory"
	"arton_garage/internal/adapter/persistence/repository"
	"arton_garage/internal/adapter/persistence/seed"
	"arton_garage/internal/infrastructure/ai"
	"arton_garage/internal/infrastructure/auth"
	"arton_garage/internal/infrastructure/config"
	"arton_garage/internal/infrastructure/database"
	"arton_garage/internal/infrastructure/export"
	"arton_garage/internal/infrastructure/payments"
	"arton_garage/internal/usecase"
	"arton_garage/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

var ErrMissingAdminPassword = errors.New("missing ADMIN_PASSWORD_HASH or ADMIN_PASSWORD")

// Application is the object graph built once at boot: repositories, use cases
// and handlers, shared by the HTTP server and the CLI commands.
type Application struct {
	Config       config.Config
	Repositories persistence.Repositories
	Finance      usecase.IFinanceUseCase

	workOrders   *handlers.WorkOrderHandler
	payments     *handlers.WorkOrderPaymentHandler
	leads        *handlers.LeadHandler
	catalog      *handlers.CatalogHandler
	finance      *handlers.FinanceHandler
	blog         *handlers.BlogHandler
	appointments *handlers.AppointmentHandler
	settings     *handlers.SettingsHandler
	dashboard    *handlers.DashboardHandler
	auth         *handlers.AuthHandler
}

// NewApplication wires every collaborator from cfg. Optional integrations
// (Mercado Pago, Gemini) that are not configured are left nil; their endpoints
// answer 503.
func NewApplication(ctx context.Context, cfg config.Config) (*Application, error) {
	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SeedData {
		data, err := seed.Default()
		if err != nil {
			return nil, fmt.Errorf("load seed: %w", err)
		}
		if err := persistence.SeedIfEmpty(ctx, repos, data); err != nil {
			return nil, fmt.Errorf("seed %s backend: %w", cfg.StorageBackend, err)
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[boot][payment] Mercado Pago gateway not configured mock=%t err=%v", cfg.PaymentGatewayMock, err)
	} else {
		paymentGateway = mpGateway
	}

	var generator interfaces.IContentGenerator
	gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Printf("[boot][blog] AI generation disabled err=%v", err)
	} else {
		generator = gemini
	}

	issuer, err := newTokenIssuer(cfg)
	if err != nil {
		return nil, err
	}
	passwordHash, err := adminPasswordHash(cfg)
	if err != nil {
		return nil, err
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(repos.WorkOrders, nil)
	paymentUseCase := usecase.NewWorkOrderPaymentUseCase(repos.WorkOrderPayments, repos.WorkOrders, repos.FinancialRecords, paymentGateway, usecase.CheckoutOptions{
		MockMode:        cfg.PaymentGatewayMock,
		AccessToken:     cfg.MercadoPagoAccessToken,
		TestPayerEmail:  cfg.MercadoPagoTestPayerEmail,
		TestPayerUserID: cfg.MercadoPagoTestPayerUserID,
	}, nil)
	leadUseCase := usecase.NewLeadUseCase(repos.Leads, repos.Products, nil)
	productUseCase := usecase.NewProductUseCase(repos.Products)
	serviceUseCase := usecase.NewServiceUseCase(repos.Services)
	financeUseCase := usecase.NewFinanceUseCase(repos.FinancialRecords, export.XLSXLedgerExporter{}, nil)
	blogUseCase := usecase.NewBlogUseCase(repos.BlogPosts, repos.Settings, generator, nil)
	appointmentUseCase := usecase.NewAppointmentUseCase(repos.Appointments, repos.Leads, repos.Services, nil)
	settingsUseCase := usecase.NewSettingsUseCase(repos.Settings)
	dashboardUseCase := usecase.NewDashboardUseCase(repos.Leads, repos.Products, repos.FinancialRecords, repos.WorkOrders)
	authUseCase := usecase.NewAuthUseCase(cfg.AdminUsername, passwordHash, issuer)

	return &Application{
		Config:       cfg,
		Repositories: repos,
		Finance:      financeUseCase,

		workOrders:   handlers.NewWorkOrderHandler(workOrderUseCase),
		payments:     handlers.NewWorkOrderPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
		leads:        handlers.NewLeadHandler(leadUseCase),
		catalog:      handlers.NewCatalogHandler(productUseCase, serviceUseCase),
		finance:      handlers.NewFinanceHandler(financeUseCase),
		blog:         handlers.NewBlogHandler(blogUseCase),
		appointments: handlers.NewAppointmentHandler(appointmentUseCase),
		settings:     handlers.NewSettingsHandler(settingsUseCase),
		dashboard:    handlers.NewDashboardHandler(dashboardUseCase),
		auth:         handlers.NewAuthHandler(authUseCase),
	}, nil
}

func openRepositories(ctx context.Context, cfg config.Config) (persistence.Repositories, error) {
	if cfg.StorageBackend != config.StorageDynamoDB {
		log.Printf("[boot][persistence] using in-memory storage")
		return memory.NewRepositories(), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return persistence.Repositories{}, fmt.Errorf("connect dynamodb: %w", err)
	}
	if cfg.DynamoDBCreateTables {
		if err := repository.EnsureTables(ctx, ddb, cfg.TablePrefix); err != nil {
			return persistence.Repositories{}, fmt.Errorf("create dynamodb tables: %w", err)
		}
	}
	log.Printf("[boot][persistence] using dynamodb storage prefix=%s", cfg.TablePrefix)
	return repository.NewRepositories(ddb, cfg.TablePrefix), nil
}

func newTokenIssuer(cfg config.Config) (*auth.JWTIssuer, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := auth.RandomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
		log.Warnf("[boot][auth] JWT_SECRET not set; using a random secret, sessions end on restart")
		secret = generated
	}
	return auth.NewJWTIssuer([]byte(secret), cfg.JWTTTL), nil
}

// adminPasswordHash prefers the stored bcrypt hash. A plain ADMIN_PASSWORD is
// hashed at boot. Without either, login stays disabled outside production.
func adminPasswordHash(cfg config.Config) ([]byte, error) {
	if cfg.AdminPasswordHash != "" {
		return []byte(cfg.AdminPasswordHash), nil
	}
	if cfg.AdminPassword != "" {
		hash, err := auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		return hash, nil
	}
	if cfg.IsProduction() {
		return nil, ErrMissingAdminPassword
	}
	log.Warnf("[boot][auth] no admin password configured; back-office login disabled")
	return nil, nil
}
