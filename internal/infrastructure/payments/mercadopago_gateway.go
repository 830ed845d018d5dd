package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"arton_garage/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	log "github.com/sirupsen/logrus"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges work orders through the Mercado Pago payments API.
type MercadoPagoGateway struct {
	client payment.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		log.Printf("[checkout][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[checkout][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[checkout][mercadopago] Mercado Pago client initialized")

	return NewMercadoPagoGatewayWithClient(payment.NewClient(cfg)), nil
}

func NewMercadoPagoGatewayWithClient(client payment.Client) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client}
}

// CreatePayment sends the checkout payload as a payment.Request and returns the
// provider id, status and the full response body.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		log.Printf("[checkout][mercadopago] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[checkout][mercadopago] create start payload_len=%d", len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[checkout][mercadopago] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[checkout][mercadopago] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[checkout][mercadopago] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[checkout][mercadopago] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}
