package response

import (
	"time"

	"buildconnect/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	Quote       string    `json:"quote_id"`
	Requirement string    `json:"requirement_id"`
	Payer       string    `json:"payer"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		Quote:           p.Quote,
		Requirement:     p.Requirement,
		Payer:           p.Payer,
		Amount:          p.Amount,
		Currency:        p.Currency,
		Type:            string(p.Type),
		Status:          string(p.Status),
		Date:            p.Date,
		ProviderPayload: p.ProviderPayload,
	}
}

func FromPayments(list []entities.Payment) []PaymentResponse {
	items := make([]PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, FromPayment(p))
	}
	return items
}
