package entities

import "time"

// QuoteStatus represents the lifecycle of a bidder's quote.
//
// Domain notes:
//   - Quotes are created directly as submitted by the submission path; draft
//     exists for bidder-side editing flows.
//   - accepted is reachable only through quote selection on the parent
//     requirement, never through a direct status write.
//   - A withdrawn quote never becomes accepted and vice versa.

type QuoteStatus string

const (
	QuoteStatusDraft       QuoteStatus = "draft"
	QuoteStatusSubmitted   QuoteStatus = "submitted"
	QuoteStatusUnderReview QuoteStatus = "under_review"
	QuoteStatusAccepted    QuoteStatus = "accepted"
	QuoteStatusRejected    QuoteStatus = "rejected"
	QuoteStatusWithdrawn   QuoteStatus = "withdrawn"
)

// DefaultQuoteValidity is applied when a quote is created without an
// explicit validUntil.
const DefaultQuoteValidity = 30 * 24 * time.Hour

// BudgetBreakdown itemizes an estimated budget. All components are
// non-negative.
type BudgetBreakdown struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Equipment float64 `json:"equipment"`
	Permits   float64 `json:"permits"`
	Overhead  float64 `json:"overhead"`
	Profit    float64 `json:"profit"`
	Other     float64 `json:"other"`
}

// Total sums the seven components.
func (b BudgetBreakdown) Total() float64 {
	return b.Materials + b.Labor + b.Equipment + b.Permits + b.Overhead + b.Profit + b.Other
}

// Milestone is a checkpoint inside a quote timeline. Percentage shares of a
// timeline must sum to at most 100.
type Milestone struct {
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	EstimatedDate time.Time `json:"estimatedDate,omitempty"`
	Percentage    float64   `json:"percentage"`
}

// QuoteTimeline is the proposed execution window with ordered milestones.
type QuoteTimeline struct {
	StartDate  time.Time   `json:"startDate"`
	EndDate    time.Time   `json:"endDate"`
	Milestones []Milestone `json:"milestones,omitempty"`
}

// PaymentScheduleEntry is one installment of the quote terms.
type PaymentScheduleEntry struct {
	Milestone  string  `json:"milestone"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"dueDate"`
}

// QuoteTerms carries the commercial conditions attached to a quote.
type QuoteTerms struct {
	PaymentSchedule    []PaymentScheduleEntry `json:"paymentSchedule,omitempty"`
	CancellationPolicy string                 `json:"cancellationPolicy,omitempty"`
	RevisionPolicy     string                 `json:"revisionPolicy,omitempty"`
	AdditionalCharges  string                 `json:"additionalCharges,omitempty"`
}

// Quote is a bidder's priced proposal against one Requirement.
//
// Storage model (DynamoDB):
//   - PK: id, the deterministic pair key "<requirementID>#<bidderKey>".
//     One quote per (requirement, bidder) is guaranteed by the key itself:
//     a conditional put on id is the uniqueness constraint. A withdrawn
//     quote keeps occupying its key, so the same bidder cannot re-bid.
//   - GSI1 (requirement-index): requirement
//   - GSI2 (bidder-index): bidder_key
//
// Exactly one of Company/Professional is set; BidderKey carries the same
// identity in indexed form.

type Quote struct {
	ID              string          `json:"id"`
	Requirement     string          `json:"requirement"`
	Company         string          `json:"company,omitempty"`
	Professional    string          `json:"professional,omitempty"`
	DesignProposal  string          `json:"designProposal"`
	EstimatedBudget float64         `json:"estimatedBudget"`
	BudgetBreakdown BudgetBreakdown `json:"budgetBreakdown"`
	Timeline        QuoteTimeline   `json:"timeline"`
	AdditionalNotes string          `json:"additionalNotes,omitempty"`
	Terms           QuoteTerms      `json:"terms"`
	Status          QuoteStatus     `json:"status"`
	ValidUntil      time.Time       `json:"validUntil"`
	IsActive        bool            `json:"isActive"`
	SubmittedAt     time.Time       `json:"submittedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// BidderKey returns the indexed bidder identity: "c:<companyID>" or
// "p:<professionalID>".
func (q Quote) BidderKey() string {
	if q.Company != "" {
		return "c:" + q.Company
	}
	if q.Professional != "" {
		return "p:" + q.Professional
	}
	return ""
}

// QuotePairKey builds the storage primary key for a (requirement, bidder)
// pair.
func QuotePairKey(requirementID, bidderKey string) string {
	return requirementID + "#" + bidderKey
}

// IsEditable reports whether bidder-side field updates are allowed.
func (q Quote) IsEditable() bool {
	return q.Status == QuoteStatusDraft || q.Status == QuoteStatusSubmitted
}

// IsExpired reports the derived read-time expiry fact. Expiry never mutates
// stored status.
func (q Quote) IsExpired(now time.Time) bool {
	return now.After(q.ValidUntil)
}

// CompletionPercentage sums milestone shares, capped at 100.
func (q Quote) CompletionPercentage() float64 {
	total := 0.0
	for _, m := range q.Timeline.Milestones {
		total += m.Percentage
	}
	if total > 100 {
		return 100
	}
	return total
}
