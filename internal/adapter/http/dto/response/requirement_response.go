package response

import (
	"time"

	"buildconnect/internal/domain/entities"
)

type TimelineResponse struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type RequirementResponse struct {
	ID                    string           `json:"id"`
	Homeowner             string           `json:"homeowner"`
	ServiceType           string           `json:"service_type"`
	Title                 string           `json:"title"`
	Description           string           `json:"description"`
	Budget                float64          `json:"budget"`
	BudgetRange           string           `json:"budget_range"`
	Timeline              TimelineResponse `json:"timeline"`
	TimelineDays          int              `json:"timeline_days"`
	Location              string           `json:"location"`
	BuildingType          string           `json:"building_type"`
	Size                  float64          `json:"size,omitempty"`
	Bedrooms              int              `json:"bedrooms,omitempty"`
	Bathrooms             int              `json:"bathrooms,omitempty"`
	Features              []string         `json:"features,omitempty"`
	Status                string           `json:"status"`
	SelectedQuote         string           `json:"selected_quote,omitempty"`
	Quotes                []string         `json:"quotes"`
	QuoteCount            int              `json:"quote_count"`
	Priority              string           `json:"priority"`
	RequestMultipleQuotes bool             `json:"request_multiple_quotes"`
	ContactPreference     string           `json:"contact_preference"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

func FromRequirement(r entities.Requirement) RequirementResponse {
	quotes := r.Quotes
	if quotes == nil {
		quotes = []string{}
	}
	return RequirementResponse{
		ID:                    r.ID,
		Homeowner:             r.Homeowner,
		ServiceType:           string(r.ServiceType),
		Title:                 r.Title,
		Description:           r.Description,
		Budget:                r.Budget,
		BudgetRange:           string(r.BudgetRange),
		Timeline:              TimelineResponse{StartDate: r.Timeline.StartDate, EndDate: r.Timeline.EndDate},
		TimelineDays:          r.TimelineDuration(),
		Location:              r.Location,
		BuildingType:          string(r.BuildingType),
		Size:                  r.Size,
		Bedrooms:              r.Bedrooms,
		Bathrooms:             r.Bathrooms,
		Features:              r.Features,
		Status:                string(r.Status),
		SelectedQuote:         r.SelectedQuote,
		Quotes:                quotes,
		QuoteCount:            len(quotes),
		Priority:              string(r.Priority),
		RequestMultipleQuotes: r.RequestMultipleQuotes,
		ContactPreference:     r.ContactPreference,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

type RequirementListResponse struct {
	Requirements []RequirementResponse `json:"requirements"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
}

func FromRequirements(list []entities.Requirement, total, page, limit int) RequirementListResponse {
	items := make([]RequirementResponse, 0, len(list))
	for _, r := range list {
		items = append(items, FromRequirement(r))
	}
	return RequirementListResponse{Requirements: items, Total: total, Page: page, Limit: limit}
}

// SelectionResponse pairs the updated requirement with its accepted quote.
type SelectionResponse struct {
	Requirement RequirementResponse `json:"requirement"`
	Quote       QuoteResponse       `json:"quote"`
}
