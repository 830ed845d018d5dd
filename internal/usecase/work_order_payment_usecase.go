package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidProviderPayload         = errors.New("invalid payment provider payload")
	ErrWorkOrderEmpty                 = errors.New("work order has no billable items")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// CheckoutOptions tune how checkout talks to the payment provider.
//
// In MockMode the provider is never called and every payment is approved.
// The sandbox fields only apply when AccessToken is a TEST- token.
type CheckoutOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o CheckoutOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

// IWorkOrderPaymentUseCase charges a work order and records the revenue.
type IWorkOrderPaymentUseCase interface {
	Checkout(ctx context.Context, workOrderID string, providerPayload json.RawMessage) (entities.WorkOrderPayment, error)
	ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderPayment, error)
}

type WorkOrderPaymentUseCase struct {
	repo       interfaces.IWorkOrderPaymentRepository
	workOrders interfaces.IWorkOrderRepository
	ledger     interfaces.IFinancialRecordRepository
	gateway    interfaces.IPaymentGateway
	opts       CheckoutOptions
	now        Clock
}

var _ IWorkOrderPaymentUseCase = (*WorkOrderPaymentUseCase)(nil)

func NewWorkOrderPaymentUseCase(
	repo interfaces.IWorkOrderPaymentRepository,
	workOrders interfaces.IWorkOrderRepository,
	ledger interfaces.IFinancialRecordRepository,
	gateway interfaces.IPaymentGateway,
	opts CheckoutOptions,
	now Clock,
) *WorkOrderPaymentUseCase {
	return &WorkOrderPaymentUseCase{
		repo:       repo,
		workOrders: workOrders,
		ledger:     ledger,
		gateway:    gateway,
		opts:       opts,
		now:        orSystemClock(now),
	}
}

// Checkout charges the work order total. The amount always comes from the
// stored items, never from the payload. On success the payment is stored and
// an inflow ledger entry "OS <id> - <client>" is appended.
func (u *WorkOrderPaymentUseCase) Checkout(ctx context.Context, workOrderID string, providerPayload json.RawMessage) (entities.WorkOrderPayment, error) {
	log.Printf("[payment][usecase] checkout start raw_work_order_id=%q payload_len=%d", workOrderID, len(providerPayload))
	mockMode := u.opts.MockMode
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrderPayment{}, ErrInvalidWorkOrderID
	}
	if len(providerPayload) == 0 || !json.Valid(providerPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload work_order_id=%s", workOrderID)
			return entities.WorkOrderPayment{}, ErrInvalidProviderPayload
		}
		providerPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Printf("[payment][usecase] gateway not configured work_order_id=%s", workOrderID)
		return entities.WorkOrderPayment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := u.workOrders.GetByID(ctx, workOrderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading work order work_order_id=%s err=%v", workOrderID, err)
		return entities.WorkOrderPayment{}, err
	}
	if order.ID == "" {
		return entities.WorkOrderPayment{}, ErrWorkOrderNotFound
	}
	total := order.TotalDecimal()
	if !total.IsPositive() {
		log.Printf("[payment][usecase] nothing to charge work_order_id=%s", workOrderID)
		return entities.WorkOrderPayment{}, ErrWorkOrderEmpty
	}
	amount := total.InexactFloat64()

	var reqMap map[string]any
	if err := json.Unmarshal(providerPayload, &reqMap); err != nil || reqMap == nil {
		if !mockMode {
			return entities.WorkOrderPayment{}, ErrInvalidProviderPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id work_order_id=%s", workOrderID)
			return entities.WorkOrderPayment{}, ErrInvalidProviderPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap, order)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer work_order_id=%s", workOrderID)
			return entities.WorkOrderPayment{}, ErrInvalidProviderPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = ledgerDescription(order)
	}
	reqMap["transaction_amount"] = amount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.WorkOrderPayment{}, err
	}

	var (
		providerPaymentID string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping payment gateway work_order_id=%s", workOrderID)
		providerPaymentID = strconv.FormatInt(u.now().UnixNano(), 10)
		stamp := u.now().Format("2006-01-02T15:04:05.000Z07:00")
		reqMap["id"] = providerPaymentID
		reqMap["status"] = "approved"
		reqMap["status_detail"] = "accredited"
		reqMap["date_created"] = stamp
		reqMap["date_approved"] = stamp
		if providerResp, err = json.Marshal(reqMap); err != nil {
			return entities.WorkOrderPayment{}, err
		}
	} else {
		var providerStatus string
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, enriched)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed work_order_id=%s err=%v", workOrderID, err)
			return entities.WorkOrderPayment{}, classifyGatewayError(err)
		}
		log.Printf("[payment][usecase] payment gateway success work_order_id=%s provider_payment_id=%s provider_status=%s", workOrderID, providerPaymentID, providerStatus)
	}

	created, err := u.repo.Create(ctx, entities.WorkOrderPayment{
		ID:                 providerPaymentID,
		WorkOrderID:        order.ID,
		Amount:             amount,
		Date:               u.now(),
		Status:             entities.PaymentStatusAprovado,
		ProviderPayloadRaw: providerResp,
	})
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed work_order_id=%s payment_id=%s err=%v", workOrderID, providerPaymentID, err)
		return entities.WorkOrderPayment{}, err
	}

	if u.ledger != nil {
		_, err := u.ledger.Create(ctx, entities.FinancialRecord{
			ID:          uuid.NewString(),
			Type:        entities.FinancialRecordInflow,
			Category:    DefaultLedgerCategory,
			Amount:      amount,
			Date:        u.now().Format(dateLayout),
			Description: ledgerDescription(order),
		})
		if err != nil {
			log.Printf("[payment][usecase] ledger entry failed work_order_id=%s payment_id=%s err=%v", workOrderID, created.ID, err)
			return entities.WorkOrderPayment{}, err
		}
	}

	log.Printf("[payment][usecase] checkout success work_order_id=%s payment_id=%s amount=%.2f", workOrderID, created.ID, created.Amount)
	return created, nil
}

func (u *WorkOrderPaymentUseCase) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderPayment, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}
	return u.repo.ListByWorkOrderID(ctx, workOrderID)
}

func ledgerDescription(o entities.WorkOrder) string {
	return fmt.Sprintf("OS %s - %s", o.ID, o.ClientName)
}

// ensurePayerDefaults fills payer.type and, when neither id nor email is
// present, the client email or the sandbox test payer.
func (u *WorkOrderPaymentUseCase) ensurePayerDefaults(m map[string]any, order entities.WorkOrder) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case strings.TrimSpace(order.ClientEmail) != "":
		payer["email"] = strings.TrimSpace(order.ClientEmail)
	case strings.TrimSpace(u.opts.TestPayerEmail) != "":
		payer["email"] = strings.TrimSpace(u.opts.TestPayerEmail)
	case u.opts.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox payer user id for its
// email, which is what the sandbox accepts.
func (u *WorkOrderPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.opts.sandbox() {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// classifyGatewayError maps provider error bodies onto the checkout sentinels.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, `"code":2002`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayCustomerNotFound, err)
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, `"code":2034`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayInvalidUsers, err)
	case strings.Contains(msg, `"error":"unauthorized"`) || strings.Contains(msg, `"status":401`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayUnauthorized, err)
	case strings.Contains(msg, `"error":"bad_request"`) || strings.Contains(msg, `"status":400`):
		return fmt.Errorf("%w: %v", ErrPaymentGatewayBadRequest, err)
	}
	return err
}
