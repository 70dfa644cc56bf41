package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBidderForbidden        = errors.New("only company admins and professionals can submit quotes")
	ErrProfileNotFound        = errors.New("bidder profile not found or not verified")
	ErrRequirementUnavailable = errors.New("requirement not found or no longer accepting quotes")
	ErrDuplicateQuote         = errors.New("quote already submitted for this requirement")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrQuoteAccessDenied      = errors.New("access to quote denied")
	ErrQuoteNotEditable       = errors.New("quote cannot be updated in current status")
	ErrQuoteNotWithdrawable   = errors.New("cannot withdraw an accepted quote")
	ErrInvalidQuoteInput      = errors.New("invalid quote input")
)

// SubmitQuoteInput carries the bidder-provided quote fields.
type SubmitQuoteInput struct {
	RequirementID   string
	DesignProposal  string
	EstimatedBudget float64
	BudgetBreakdown entities.BudgetBreakdown
	Timeline        entities.QuoteTimeline
	AdditionalNotes string
	Terms           entities.QuoteTerms
	ValidUntil      time.Time
}

// QuoteUpdateInput is a field-level patch; nil fields stay untouched.
type QuoteUpdateInput struct {
	DesignProposal  *string
	EstimatedBudget *float64
	BudgetBreakdown *entities.BudgetBreakdown
	Timeline        *entities.QuoteTimeline
	AdditionalNotes *string
	Terms           *entities.QuoteTerms
}

// QuoteStatusMetrics aggregates a bidder's quotes in one status.
type QuoteStatusMetrics struct {
	Status     entities.QuoteStatus `json:"status"`
	Count      int                  `json:"count"`
	TotalValue float64              `json:"totalValue"`
	AvgValue   float64              `json:"avgValue"`
}

// QuoteAnalytics is the bidder-facing quote funnel summary.
type QuoteAnalytics struct {
	ByStatus       []QuoteStatusMetrics `json:"analytics"`
	TotalQuotes    int                  `json:"totalQuotes"`
	AcceptedQuotes int                  `json:"acceptedQuotes"`
	ConversionRate float64              `json:"conversionRate"`
}

// IQuoteUseCase exposes the bidder-side quote operations.
//
//   - Submit is the submission guard: role, profile, requirement openness and
//     pair uniqueness are checked in that order, each with a distinct failure.
//   - Update and Withdraw are owner-only self-service operations.
//   - Analytics filters expired quotes at read time; expiry is never stored.

type IQuoteUseCase interface {
	Submit(ctx context.Context, actor entities.Actor, in SubmitQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error)
	ListMine(ctx context.Context, actor entities.Actor, status string, page, limit int) ([]entities.Quote, int, error)
	Update(ctx context.Context, actor entities.Actor, id string, in QuoteUpdateInput) (entities.Quote, error)
	Withdraw(ctx context.Context, actor entities.Actor, id string) error
	Analytics(ctx context.Context, actor entities.Actor) (QuoteAnalytics, error)
}

type QuoteUseCase struct {
	quotes        interfaces.IQuoteRepository
	requirements  interfaces.IRequirementRepository
	companies     interfaces.ICompanyRepository
	professionals interfaces.IProfessionalRepository
	notifications interfaces.INotificationRepository
	now           func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	requirements interfaces.IRequirementRepository,
	companies interfaces.ICompanyRepository,
	professionals interfaces.IProfessionalRepository,
	notifications interfaces.INotificationRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:        quotes,
		requirements:  requirements,
		companies:     companies,
		professionals: professionals,
		notifications: notifications,
		now:           time.Now,
	}
}

// resolveBidder maps an actor to its bidder profile. Company admins act for
// their company; professionals act for themselves and must be verified.
func (u *QuoteUseCase) resolveBidder(ctx context.Context, actor entities.Actor) (companyID, professionalID string, err error) {
	switch actor.Role {
	case entities.RoleCompanyAdmin:
		company, err := u.companies.GetByAdmin(ctx, actor.UserID)
		if err != nil {
			return "", "", err
		}
		if company.ID == "" {
			return "", "", ErrProfileNotFound
		}
		return company.ID, "", nil
	case entities.RoleProfessional:
		professional, err := u.professionals.GetByUser(ctx, actor.UserID)
		if err != nil {
			return "", "", err
		}
		if professional.ID == "" || !professional.IsVerified {
			return "", "", ErrProfileNotFound
		}
		return "", professional.ID, nil
	default:
		return "", "", ErrBidderForbidden
	}
}

func validateQuoteFields(proposal string, budget float64, breakdown entities.BudgetBreakdown, timeline entities.QuoteTimeline) error {
	if strings.TrimSpace(proposal) == "" {
		return ErrInvalidQuoteInput
	}
	if budget < 0 {
		return ErrInvalidQuoteInput
	}
	for _, v := range []float64{
		breakdown.Materials, breakdown.Labor, breakdown.Equipment,
		breakdown.Permits, breakdown.Overhead, breakdown.Profit, breakdown.Other,
	} {
		if v < 0 {
			return ErrInvalidQuoteInput
		}
	}
	if timeline.StartDate.IsZero() || timeline.EndDate.IsZero() {
		return ErrInvalidQuoteInput
	}
	if timeline.EndDate.Before(timeline.StartDate) {
		return ErrInvalidQuoteInput
	}
	total := 0.0
	for _, m := range timeline.Milestones {
		if strings.TrimSpace(m.Name) == "" || m.Percentage < 0 {
			return ErrInvalidQuoteInput
		}
		total += m.Percentage
	}
	if total > 100 {
		return ErrInvalidQuoteInput
	}
	return nil
}

func (u *QuoteUseCase) Submit(ctx context.Context, actor entities.Actor, in SubmitQuoteInput) (entities.Quote, error) {
	if !actor.CanBid() {
		return entities.Quote{}, ErrBidderForbidden
	}

	requirementID := strings.TrimSpace(in.RequirementID)
	if requirementID == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}
	if err := validateQuoteFields(in.DesignProposal, in.EstimatedBudget, in.BudgetBreakdown, in.Timeline); err != nil {
		return entities.Quote{}, err
	}

	companyID, professionalID, err := u.resolveBidder(ctx, actor)
	if err != nil {
		return entities.Quote{}, err
	}

	// An absent requirement and a closed one produce the same answer, so a
	// rejected bidder cannot tell whether the requirement exists.
	requirement, err := u.requirements.GetByID(ctx, requirementID)
	if err != nil {
		return entities.Quote{}, err
	}
	accepting := requirement.Status == entities.RequirementStatusOpen ||
		requirement.Status == entities.RequirementStatusReviewingQuotes
	if requirement.ID == "" || !requirement.IsActive || !accepting {
		return entities.Quote{}, ErrRequirementUnavailable
	}

	now := u.now().UTC()
	validUntil := in.ValidUntil
	if validUntil.IsZero() {
		validUntil = now.Add(entities.DefaultQuoteValidity)
	}

	q := entities.Quote{
		Requirement:     requirementID,
		Company:         companyID,
		Professional:    professionalID,
		DesignProposal:  strings.TrimSpace(in.DesignProposal),
		EstimatedBudget: in.EstimatedBudget,
		BudgetBreakdown: in.BudgetBreakdown,
		Timeline:        in.Timeline,
		AdditionalNotes: strings.TrimSpace(in.AdditionalNotes),
		Terms:           in.Terms,
		Status:          entities.QuoteStatusSubmitted,
		ValidUntil:      validUntil,
		IsActive:        true,
		SubmittedAt:     now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	q.ID = entities.QuotePairKey(requirementID, q.BidderKey())

	created, err := u.quotes.Submit(ctx, q)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrQuoteConflict):
			return entities.Quote{}, ErrDuplicateQuote
		case errors.Is(err, interfaces.ErrRequirementNotOpen):
			return entities.Quote{}, ErrRequirementUnavailable
		}
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] submitted quote_id=%s requirement_id=%s bidder=%s", created.ID, requirementID, q.BidderKey())

	// Advisory only: the submission is the operation of record.
	notification := entities.Notification{
		ID:           uuid.NewString(),
		Recipient:    requirement.Homeowner,
		Type:         entities.NotificationTypeQuoteSubmitted,
		Title:        "New Quote Received",
		Message:      fmt.Sprintf("You have received a new quote for %q", requirement.Title),
		RelatedID:    created.ID,
		RelatedModel: "Quote",
		Priority:     entities.PriorityHigh,
		CreatedAt:    now,
	}
	if _, err := u.notifications.Create(ctx, notification); err != nil {
		log.Printf("[quote][usecase] notification write failed quote_id=%s recipient=%s err=%v", created.ID, requirement.Homeowner, err)
	}

	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	ok, err := u.canViewQuote(ctx, actor, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if !ok {
		return entities.Quote{}, ErrQuoteAccessDenied
	}
	return q, nil
}

func (u *QuoteUseCase) canViewQuote(ctx context.Context, actor entities.Actor, q entities.Quote) (bool, error) {
	switch actor.Role {
	case entities.RoleAdmin:
		return true, nil
	case entities.RoleHomeowner:
		requirement, err := u.requirements.GetByID(ctx, q.Requirement)
		if err != nil {
			return false, err
		}
		return requirement.ID != "" && requirement.Homeowner == actor.UserID, nil
	case entities.RoleCompanyAdmin, entities.RoleProfessional:
		companyID, professionalID, err := u.resolveBidder(ctx, actor)
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				return false, nil
			}
			return false, err
		}
		if companyID != "" {
			return q.Company == companyID, nil
		}
		return q.Professional == professionalID, nil
	}
	return false, nil
}

func (u *QuoteUseCase) ListMine(ctx context.Context, actor entities.Actor, status string, page, limit int) ([]entities.Quote, int, error) {
	if !actor.CanBid() {
		return nil, 0, ErrBidderForbidden
	}

	companyID, professionalID, err := u.resolveBidder(ctx, actor)
	if err != nil {
		return nil, 0, err
	}
	bidderKey := (entities.Quote{Company: companyID, Professional: professionalID}).BidderKey()

	filter := entities.QuoteStatus("")
	if status != "" && status != "all" {
		filter = entities.QuoteStatus(status)
	}

	quotes, err := u.quotes.ListByBidder(ctx, bidderKey, filter)
	if err != nil {
		return nil, 0, err
	}

	active := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.IsActive {
			active = append(active, q)
		}
	}
	total := len(active)

	return paginate(active, page, limit), total, nil
}

func (u *QuoteUseCase) Update(ctx context.Context, actor entities.Actor, id string, in QuoteUpdateInput) (entities.Quote, error) {
	if !actor.CanBid() {
		return entities.Quote{}, ErrBidderForbidden
	}

	q, err := u.ownedQuote(ctx, actor, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if !q.IsEditable() {
		return entities.Quote{}, ErrQuoteNotEditable
	}

	if in.DesignProposal != nil {
		q.DesignProposal = strings.TrimSpace(*in.DesignProposal)
	}
	if in.EstimatedBudget != nil {
		q.EstimatedBudget = *in.EstimatedBudget
	}
	if in.BudgetBreakdown != nil {
		q.BudgetBreakdown = *in.BudgetBreakdown
	}
	if in.Timeline != nil {
		q.Timeline = *in.Timeline
	}
	if in.AdditionalNotes != nil {
		q.AdditionalNotes = strings.TrimSpace(*in.AdditionalNotes)
	}
	if in.Terms != nil {
		q.Terms = *in.Terms
	}
	if err := validateQuoteFields(q.DesignProposal, q.EstimatedBudget, q.BudgetBreakdown, q.Timeline); err != nil {
		return entities.Quote{}, err
	}
	q.UpdatedAt = u.now().UTC()

	updated, err := u.quotes.Update(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		// Lost a race: the quote left the editable states between read and
		// write, and the conditional update refused it.
		return entities.Quote{}, ErrQuoteNotEditable
	}
	return updated, nil
}

func (u *QuoteUseCase) Withdraw(ctx context.Context, actor entities.Actor, id string) error {
	if !actor.CanBid() {
		return ErrBidderForbidden
	}

	q, err := u.ownedQuote(ctx, actor, id)
	if err != nil {
		return err
	}
	if q.Status == entities.QuoteStatusAccepted {
		return ErrQuoteNotWithdrawable
	}

	withdrawn, err := u.quotes.Withdraw(ctx, q.ID)
	if err != nil {
		return err
	}
	if withdrawn.ID == "" {
		// Selection won the race and accepted this quote first.
		return ErrQuoteNotWithdrawable
	}

	if err := u.requirements.RemoveQuoteRef(ctx, q.Requirement, q.ID); err != nil {
		log.Printf("[quote][usecase] quote ref removal failed quote_id=%s requirement_id=%s err=%v", q.ID, q.Requirement, err)
		return err
	}
	log.Printf("[quote][usecase] withdrawn quote_id=%s requirement_id=%s", q.ID, q.Requirement)
	return nil
}

// ownedQuote loads a quote and verifies the acting bidder owns it.
func (u *QuoteUseCase) ownedQuote(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	companyID, professionalID, err := u.resolveBidder(ctx, actor)
	if err != nil {
		return entities.Quote{}, err
	}

	q, err := u.quotes.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if companyID != "" && q.Company != companyID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if professionalID != "" && q.Professional != professionalID {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Analytics(ctx context.Context, actor entities.Actor) (QuoteAnalytics, error) {
	if !actor.CanBid() {
		return QuoteAnalytics{}, ErrBidderForbidden
	}

	companyID, professionalID, err := u.resolveBidder(ctx, actor)
	if err != nil {
		return QuoteAnalytics{}, err
	}
	bidderKey := (entities.Quote{Company: companyID, Professional: professionalID}).BidderKey()

	quotes, err := u.quotes.ListByBidder(ctx, bidderKey, "")
	if err != nil {
		return QuoteAnalytics{}, err
	}

	now := u.now().UTC()
	type bucket struct {
		count int
		total float64
	}
	buckets := map[entities.QuoteStatus]*bucket{}
	order := []entities.QuoteStatus{}
	totalQuotes := 0
	accepted := 0

	for _, q := range quotes {
		if !q.IsActive {
			continue
		}
		// A pending quote past its validity no longer counts toward the
		// funnel; expiry is a derived read-time fact.
		if q.Status == entities.QuoteStatusSubmitted && q.IsExpired(now) {
			continue
		}
		b, ok := buckets[q.Status]
		if !ok {
			b = &bucket{}
			buckets[q.Status] = b
			order = append(order, q.Status)
		}
		b.count++
		b.total += q.EstimatedBudget
		totalQuotes++
		if q.Status == entities.QuoteStatusAccepted {
			accepted++
		}
	}

	metrics := make([]QuoteStatusMetrics, 0, len(order))
	for _, s := range order {
		b := buckets[s]
		metrics = append(metrics, QuoteStatusMetrics{
			Status:     s,
			Count:      b.count,
			TotalValue: b.total,
			AvgValue:   b.total / float64(b.count),
		})
	}

	conversion := 0.0
	if totalQuotes > 0 {
		conversion = float64(accepted) / float64(totalQuotes) * 100
	}

	return QuoteAnalytics{
		ByStatus:       metrics,
		TotalQuotes:    totalQuotes,
		AcceptedQuotes: accepted,
		ConversionRate: conversion,
	}, nil
}

// paginate slices a result set with 1-based page numbers. Out-of-range pages
// return an empty slice, never an error.
func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
