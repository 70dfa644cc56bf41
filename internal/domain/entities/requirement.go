package entities

import "time"

// RequirementStatus represents the lifecycle of a homeowner requirement.
//
// Domain notes:
//   - Requirements open for bidding, collect quotes, then a single quote is
//     selected. Transitions are one-way; see CanTransition.
//   - The status literals are part of the wire contract consumed by listing
//     and analytics layers. Renaming one is a breaking change.

type RequirementStatus string

const (
	RequirementStatusOpen            RequirementStatus = "open"
	RequirementStatusReviewingQuotes RequirementStatus = "reviewing_quotes"
	RequirementStatusCompanySelected RequirementStatus = "company_selected"
	RequirementStatusInProgress      RequirementStatus = "in_progress"
	RequirementStatusCompleted       RequirementStatus = "completed"
	RequirementStatusCancelled       RequirementStatus = "cancelled"
)

// ServiceType classifies the requested work.
type ServiceType string

const (
	ServiceTypeInteriorDesign ServiceType = "interior-design"
	ServiceTypeConstruction   ServiceType = "construction"
	ServiceTypeRenovation     ServiceType = "renovation"
	ServiceTypeArchitecture   ServiceType = "architecture"
	ServiceTypeGeneral        ServiceType = "general"
)

// BuildingType classifies the property.
type BuildingType string

const (
	BuildingTypeApartment     BuildingType = "Apartment"
	BuildingTypeVilla         BuildingType = "Villa"
	BuildingTypeDuplex        BuildingType = "Duplex"
	BuildingTypeTriplex       BuildingType = "Triplex"
	BuildingTypeBungalow      BuildingType = "Bungalow"
	BuildingTypeCommercial    BuildingType = "Commercial"
	BuildingTypeIndustrial    BuildingType = "Industrial"
	BuildingTypeInstitutional BuildingType = "Institutional"
)

// Priority orders requirements in bidder-facing listings.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// BudgetRange is the bucketed form of Budget, derived at write time.
type BudgetRange string

const (
	BudgetRangeUnder10L BudgetRange = "Under ₹10L"
	BudgetRange10Lto25L BudgetRange = "₹10L - ₹25L"
	BudgetRange25Lto50L BudgetRange = "₹25L - ₹50L"
	BudgetRange50Lto1Cr BudgetRange = "₹50L - ₹1Cr"
	BudgetRange1Crto2Cr BudgetRange = "₹1Cr - ₹2Cr"
	BudgetRangeAbove2Cr BudgetRange = "Above ₹2Cr"
)

// Timeline is the requested execution window. EndDate must not precede
// StartDate.
type Timeline struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Requirement is a homeowner's posted need, open to competitive bidding.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (homeowner-index): homeowner
//   - GSI2 (status-index): status
//
// Quotes holds quote ids in submission order. SelectedQuote is set only when
// status is company_selected or later and must reference a member of Quotes
// whose status is accepted.

type Requirement struct {
	ID                    string            `json:"id"`
	Homeowner             string            `json:"homeowner"`
	ServiceType           ServiceType       `json:"serviceType"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	Budget                float64           `json:"budget"`
	BudgetRange           BudgetRange       `json:"budgetRange"`
	Timeline              Timeline          `json:"timeline"`
	Location              string            `json:"location"`
	BuildingType          BuildingType      `json:"buildingType"`
	Size                  float64           `json:"size,omitempty"`
	Bedrooms              int               `json:"bedrooms,omitempty"`
	Bathrooms             int               `json:"bathrooms,omitempty"`
	Features              []string          `json:"features,omitempty"`
	Status                RequirementStatus `json:"status"`
	SelectedQuote         string            `json:"selectedQuote,omitempty"`
	Quotes                []string          `json:"quotes"`
	IsActive              bool              `json:"isActive"`
	Priority              Priority          `json:"priority"`
	RequestMultipleQuotes bool              `json:"requestMultipleQuotes"`
	ContactPreference     string            `json:"contactPreference"`
	CreatedAt             time.Time         `json:"createdAt"`
	UpdatedAt             time.Time         `json:"updatedAt"`
}

// DeriveBudgetRange buckets a budget amount per the fixed table. The lower
// bound of each bucket is exclusive except the first: exactly 1,000,000 falls
// in "₹10L - ₹25L", not "Under ₹10L".
func DeriveBudgetRange(budget float64) BudgetRange {
	switch {
	case budget < 1_000_000:
		return BudgetRangeUnder10L
	case budget <= 2_500_000:
		return BudgetRange10Lto25L
	case budget <= 5_000_000:
		return BudgetRange25Lto50L
	case budget <= 10_000_000:
		return BudgetRange50Lto1Cr
	case budget <= 20_000_000:
		return BudgetRange1Crto2Cr
	default:
		return BudgetRangeAbove2Cr
	}
}

// requirementTransitions is the closed transition table. Cancellation is
// reachable from every non-terminal state; nothing leaves completed or
// cancelled.
var requirementTransitions = map[RequirementStatus][]RequirementStatus{
	RequirementStatusOpen:            {RequirementStatusReviewingQuotes, RequirementStatusCancelled},
	RequirementStatusReviewingQuotes: {RequirementStatusCompanySelected, RequirementStatusCancelled},
	RequirementStatusCompanySelected: {RequirementStatusInProgress, RequirementStatusCancelled},
	RequirementStatusInProgress:      {RequirementStatusCompleted, RequirementStatusCancelled},
	RequirementStatusCompleted:       {},
	RequirementStatusCancelled:       {},
}

// CanTransition reports whether moving from to next is a legal forward step.
func (s RequirementStatus) CanTransition(next RequirementStatus) bool {
	for _, allowed := range requirementTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s RequirementStatus) IsTerminal() bool {
	return len(requirementTransitions[s]) == 0
}

// IsValid reports whether s is a known status literal.
func (s RequirementStatus) IsValid() bool {
	_, ok := requirementTransitions[s]
	return ok
}

// TimelineDuration returns the requested window length in whole days, or 0
// when either bound is unset.
func (r Requirement) TimelineDuration() int {
	if r.Timeline.StartDate.IsZero() || r.Timeline.EndDate.IsZero() {
		return 0
	}
	d := r.Timeline.EndDate.Sub(r.Timeline.StartDate)
	if d < 0 {
		d = -d
	}
	return int((d + 24*time.Hour - 1) / (24 * time.Hour))
}
