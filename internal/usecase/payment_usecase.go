package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentForbidden     = errors.New("only the requirement homeowner can pay against a quote")
	ErrQuoteNotAccepted     = errors.New("quote not accepted")
	ErrInvalidPaymentInput  = errors.New("invalid payment input")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

// CreatePaymentInput carries a homeowner payment order against an accepted
// quote. ProviderPayload is handed to the gateway after enrichment.
type CreatePaymentInput struct {
	QuoteID         string
	Amount          float64
	Currency        string
	Type            entities.PaymentType
	ProviderPayload json.RawMessage
}

// IPaymentUseCase processes homeowner payments against accepted quotes
// through the external gateway and persists the provider response for audit.

type IPaymentUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreatePaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, actor entities.Actor, quoteID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	quotes       interfaces.IQuoteRepository
	requirements interfaces.IRequirementRepository
	gateway      interfaces.IPaymentGateway
	now          func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	quotes interfaces.IQuoteRepository,
	requirements interfaces.IRequirementRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quotes: quotes, requirements: requirements, gateway: gateway, now: time.Now}
}

func (u *PaymentUseCase) Create(ctx context.Context, actor entities.Actor, in CreatePaymentInput) (entities.Payment, error) {
	quoteID := strings.TrimSpace(in.QuoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if in.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentInput
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}

	paymentType := in.Type
	if paymentType == "" {
		paymentType = entities.PaymentTypeAdvance
	}
	currency := in.Currency
	if currency == "" {
		currency = "INR"
	}

	quote, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if quote.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusAccepted {
		return entities.Payment{}, ErrQuoteNotAccepted
	}
	if in.Amount > quote.EstimatedBudget {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	requirement, err := u.requirements.GetByID(ctx, quote.Requirement)
	if err != nil {
		return entities.Payment{}, err
	}
	if requirement.ID == "" {
		return entities.Payment{}, ErrRequirementNotFound
	}
	if actor.Role != entities.RoleHomeowner || requirement.Homeowner != actor.UserID {
		return entities.Payment{}, ErrPaymentForbidden
	}

	payload := in.ProviderPayload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	// The quote is the source of truth for linkage; the caller cannot
	// redirect a payment elsewhere through the raw payload.
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = quote.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Quote %s (%s)", quote.ID, paymentType)
		}
		reqMap["transaction_amount"] = in.Amount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[payment][usecase] calling gateway quote_id=%s amount=%.2f type=%s", quote.ID, in.Amount, paymentType)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed quote_id=%s err=%v", quote.ID, err)
		return entities.Payment{}, err
	}

	status := entities.PaymentStatusCompleted
	if providerStatus != "" && providerStatus != "approved" {
		status = entities.PaymentStatusPending
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quote.ID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		Quote:              quote.ID,
		Requirement:        requirement.ID,
		Payer:              actor.UserID,
		Amount:             in.Amount,
		Currency:           currency,
		Type:               paymentType,
		Status:             status,
		Date:               u.now().UTC(),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment create failed quote_id=%s payment_id=%s err=%v", quote.ID, p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] payment recorded quote_id=%s payment_id=%s status=%s", quote.ID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if actor.Role != entities.RoleAdmin && p.Payer != actor.UserID {
		return entities.Payment{}, ErrPaymentForbidden
	}
	return p, nil
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, actor entities.Actor, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentInput
	}

	payments, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if actor.Role == entities.RoleAdmin {
		return payments, nil
	}
	own := make([]entities.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Payer == actor.UserID {
			own = append(own, p)
		}
	}
	return own, nil
}
