package response

import (
	"time"

	"buildconnect/internal/domain/entities"
)

type MilestoneResponse struct {
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	EstimatedDate time.Time `json:"estimated_date,omitempty"`
	Percentage    float64   `json:"percentage"`
}

type QuoteTimelineResponse struct {
	StartDate  time.Time           `json:"start_date"`
	EndDate    time.Time           `json:"end_date"`
	Milestones []MilestoneResponse `json:"milestones,omitempty"`
}

type BudgetBreakdownResponse struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Equipment float64 `json:"equipment"`
	Permits   float64 `json:"permits"`
	Overhead  float64 `json:"overhead"`
	Profit    float64 `json:"profit"`
	Other     float64 `json:"other"`
	Total     float64 `json:"total"`
}

type PaymentScheduleEntryResponse struct {
	Milestone  string  `json:"milestone"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"due_date,omitempty"`
}

type QuoteTermsResponse struct {
	PaymentSchedule    []PaymentScheduleEntryResponse `json:"payment_schedule,omitempty"`
	CancellationPolicy string                         `json:"cancellation_policy,omitempty"`
	RevisionPolicy     string                         `json:"revision_policy,omitempty"`
	AdditionalCharges  string                         `json:"additional_charges,omitempty"`
}

type QuoteResponse struct {
	ID                   string                  `json:"id"`
	Requirement          string                  `json:"requirement"`
	Company              string                  `json:"company,omitempty"`
	Professional         string                  `json:"professional,omitempty"`
	DesignProposal       string                  `json:"design_proposal"`
	EstimatedBudget      float64                 `json:"estimated_budget"`
	BudgetBreakdown      BudgetBreakdownResponse `json:"budget_breakdown"`
	Timeline             QuoteTimelineResponse   `json:"timeline"`
	AdditionalNotes      string                  `json:"additional_notes,omitempty"`
	Terms                QuoteTermsResponse      `json:"terms"`
	Status               string                  `json:"status"`
	ValidUntil           time.Time               `json:"valid_until"`
	IsExpired            bool                    `json:"is_expired"`
	CompletionPercentage float64                 `json:"completion_percentage"`
	SubmittedAt          time.Time               `json:"submitted_at,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	milestones := make([]MilestoneResponse, 0, len(q.Timeline.Milestones))
	for _, m := range q.Timeline.Milestones {
		milestones = append(milestones, MilestoneResponse{
			Name:          m.Name,
			Description:   m.Description,
			EstimatedDate: m.EstimatedDate,
			Percentage:    m.Percentage,
		})
	}
	schedule := make([]PaymentScheduleEntryResponse, 0, len(q.Terms.PaymentSchedule))
	for _, e := range q.Terms.PaymentSchedule {
		schedule = append(schedule, PaymentScheduleEntryResponse{
			Milestone: e.Milestone, Percentage: e.Percentage, Amount: e.Amount, DueDate: e.DueDate,
		})
	}
	return QuoteResponse{
		ID:             q.ID,
		Requirement:    q.Requirement,
		Company:        q.Company,
		Professional:   q.Professional,
		DesignProposal: q.DesignProposal,
		EstimatedBudget: q.EstimatedBudget,
		BudgetBreakdown: BudgetBreakdownResponse{
			Materials: q.BudgetBreakdown.Materials,
			Labor:     q.BudgetBreakdown.Labor,
			Equipment: q.BudgetBreakdown.Equipment,
			Permits:   q.BudgetBreakdown.Permits,
			Overhead:  q.BudgetBreakdown.Overhead,
			Profit:    q.BudgetBreakdown.Profit,
			Other:     q.BudgetBreakdown.Other,
			Total:     q.BudgetBreakdown.Total(),
		},
		Timeline: QuoteTimelineResponse{
			StartDate:  q.Timeline.StartDate,
			EndDate:    q.Timeline.EndDate,
			Milestones: milestones,
		},
		AdditionalNotes: q.AdditionalNotes,
		Terms: QuoteTermsResponse{
			PaymentSchedule:    schedule,
			CancellationPolicy: q.Terms.CancellationPolicy,
			RevisionPolicy:     q.Terms.RevisionPolicy,
			AdditionalCharges:  q.Terms.AdditionalCharges,
		},
		Status:               string(q.Status),
		ValidUntil:           q.ValidUntil,
		IsExpired:            q.IsExpired(now),
		CompletionPercentage: q.CompletionPercentage(),
		SubmittedAt:          q.SubmittedAt,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

func FromQuotes(list []entities.Quote, now time.Time, total, page, limit int) QuoteListResponse {
	items := make([]QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, FromQuote(q, now))
	}
	return QuoteListResponse{Quotes: items, Total: total, Page: page, Limit: limit}
}
