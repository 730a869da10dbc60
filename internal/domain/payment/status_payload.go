package payment

import (
	"encoding/json"
	"fmt"
)

// DecodeStatusPayload parses a raw queue message body into a StatusPayload.
// A body that is not a JSON object, or that lacks payment_id or status,
// is a decoding failure; the consumer leaves such messages in the queue.
func DecodeStatusPayload(body []byte) (*StatusPayload, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode status payload: %w", err)
	}

	p := &StatusPayload{Extra: make(map[string]any)}
	for k, v := range raw {
		switch k {
		case "payment_id":
			p.PaymentID, _ = v.(string)
		case "order_id":
			p.OrderID, _ = v.(string)
		case "status":
			p.Status, _ = v.(string)
		default:
			p.Extra[k] = v
		}
	}

	if p.PaymentID == "" {
		return nil, fmt.Errorf("decode status payload: missing payment_id")
	}
	if p.Status == "" {
		return nil, fmt.Errorf("decode status payload: missing status")
	}
	return p, nil
}
