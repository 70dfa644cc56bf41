package request

import (
	"time"

	"buildconnect/internal/domain/entities"
)

type BudgetBreakdownRequest struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Equipment float64 `json:"equipment"`
	Permits   float64 `json:"permits"`
	Overhead  float64 `json:"overhead"`
	Profit    float64 `json:"profit"`
	Other     float64 `json:"other"`
}

func (r BudgetBreakdownRequest) Entity() entities.BudgetBreakdown {
	return entities.BudgetBreakdown{
		Materials: r.Materials, Labor: r.Labor, Equipment: r.Equipment,
		Permits: r.Permits, Overhead: r.Overhead, Profit: r.Profit, Other: r.Other,
	}
}

type MilestoneRequest struct {
	Name          string    `json:"name" binding:"required"`
	Description   string    `json:"description"`
	EstimatedDate time.Time `json:"estimated_date"`
	Percentage    float64   `json:"percentage"`
}

type QuoteTimelineRequest struct {
	StartDate  time.Time          `json:"start_date" binding:"required"`
	EndDate    time.Time          `json:"end_date" binding:"required"`
	Milestones []MilestoneRequest `json:"milestones"`
}

func (r QuoteTimelineRequest) Entity() entities.QuoteTimeline {
	milestones := make([]entities.Milestone, 0, len(r.Milestones))
	for _, m := range r.Milestones {
		milestones = append(milestones, entities.Milestone{
			Name:          m.Name,
			Description:   m.Description,
			EstimatedDate: m.EstimatedDate,
			Percentage:    m.Percentage,
		})
	}
	return entities.QuoteTimeline{StartDate: r.StartDate, EndDate: r.EndDate, Milestones: milestones}
}

type PaymentScheduleEntryRequest struct {
	Milestone  string  `json:"milestone"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"due_date"`
}

type QuoteTermsRequest struct {
	PaymentSchedule    []PaymentScheduleEntryRequest `json:"payment_schedule"`
	CancellationPolicy string                        `json:"cancellation_policy"`
	RevisionPolicy     string                        `json:"revision_policy"`
	AdditionalCharges  string                        `json:"additional_charges"`
}

func (r QuoteTermsRequest) Entity() entities.QuoteTerms {
	schedule := make([]entities.PaymentScheduleEntry, 0, len(r.PaymentSchedule))
	for _, e := range r.PaymentSchedule {
		schedule = append(schedule, entities.PaymentScheduleEntry{
			Milestone: e.Milestone, Percentage: e.Percentage, Amount: e.Amount, DueDate: e.DueDate,
		})
	}
	return entities.QuoteTerms{
		PaymentSchedule:    schedule,
		CancellationPolicy: r.CancellationPolicy,
		RevisionPolicy:     r.RevisionPolicy,
		AdditionalCharges:  r.AdditionalCharges,
	}
}

// SubmitQuoteRequest is the bidder payload for quoting a requirement.
type SubmitQuoteRequest struct {
	RequirementID   string                 `json:"requirement_id" binding:"required"`
	DesignProposal  string                 `json:"design_proposal" binding:"required"`
	EstimatedBudget float64                `json:"estimated_budget" binding:"required"`
	BudgetBreakdown BudgetBreakdownRequest `json:"budget_breakdown"`
	Timeline        QuoteTimelineRequest   `json:"timeline" binding:"required"`
	AdditionalNotes string                 `json:"additional_notes"`
	Terms           QuoteTermsRequest      `json:"terms"`
	ValidUntil      time.Time              `json:"valid_until"`
}

// UpdateQuoteRequest is a field-level patch; absent fields stay untouched.
type UpdateQuoteRequest struct {
	DesignProposal  *string                 `json:"design_proposal"`
	EstimatedBudget *float64                `json:"estimated_budget"`
	BudgetBreakdown *BudgetBreakdownRequest `json:"budget_breakdown"`
	Timeline        *QuoteTimelineRequest   `json:"timeline"`
	AdditionalNotes *string                 `json:"additional_notes"`
	Terms           *QuoteTermsRequest      `json:"terms"`
}
