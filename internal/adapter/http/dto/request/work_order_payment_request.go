package request

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidPayloadJSON   = errors.New("request body is not valid json")
	ErrEmptyProviderPayload = errors.New("provider_payload cannot be empty")
)

// WorkOrderCheckoutRequest is the documented shape of the checkout body.
//
// `provider_payload` is forwarded to Mercado Pago as-is (raw JSON). A bare
// provider payload without the envelope is accepted too.
type WorkOrderCheckoutRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}

// ParseCheckoutPayload extracts the provider payload from a checkout body.
// An empty body yields "{}".
func ParseCheckoutPayload(raw []byte) (json.RawMessage, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, ErrInvalidPayloadJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, ErrEmptyProviderPayload
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}
