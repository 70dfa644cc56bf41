package request

import "encoding/json"

// CreatePaymentRequest is the payload for paying against an accepted quote.
//
// `provider_payload` is forwarded to the gateway as-is after server-side
// enrichment, so varying provider schemas keep working.

type CreatePaymentRequest struct {
	QuoteID         string          `json:"quote_id" binding:"required"`
	Amount          float64         `json:"amount" binding:"required"`
	Currency        string          `json:"currency"`
	Type            string          `json:"type"`
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
