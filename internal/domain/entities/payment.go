package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentType positions a payment inside the engagement.
type PaymentType string

const (
	PaymentTypeAdvance   PaymentType = "advance"
	PaymentTypeMilestone PaymentType = "milestone"
	PaymentTypeFinal     PaymentType = "final"
)

// Payment is a homeowner payment against an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (quote_id-index): quote
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original body (JSON) for traceability.
//   - ProviderPayload is an optional parsed representation, useful for
//     querying/debugging.

type Payment struct {
	ID          string        `json:"id"`
	Quote       string        `json:"quote"`
	Requirement string        `json:"requirement"`
	Payer       string        `json:"payer"`
	Amount      float64       `json:"amount"`
	Currency    string        `json:"currency"`
	Type        PaymentType   `json:"type"`
	Status      PaymentStatus `json:"status"`
	Date        time.Time     `json:"date"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
