package request

import (
	"time"

	"buildconnect/internal/domain/entities"
)

type TimelineRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// CreateRequirementRequest is the homeowner payload for posting a new
// requirement. Budget range is derived server side and never accepted from
// the client.
type CreateRequirementRequest struct {
	ServiceType           string          `json:"service_type"`
	Title                 string          `json:"title" binding:"required"`
	Description           string          `json:"description" binding:"required"`
	Budget                float64         `json:"budget" binding:"required"`
	Timeline              TimelineRequest `json:"timeline"`
	Location              string          `json:"location" binding:"required"`
	BuildingType          string          `json:"building_type" binding:"required"`
	Size                  float64         `json:"size"`
	Bedrooms              int             `json:"bedrooms"`
	Bathrooms             int             `json:"bathrooms"`
	Features              []string        `json:"features"`
	Priority              string          `json:"priority"`
	RequestMultipleQuotes bool            `json:"request_multiple_quotes"`
	ContactPreference     string          `json:"contact_preference"`
}

func (r CreateRequirementRequest) TimelineEntity() entities.Timeline {
	return entities.Timeline{StartDate: r.Timeline.StartDate, EndDate: r.Timeline.EndDate}
}

// UpdateRequirementStatusRequest moves a requirement along its lifecycle.
type UpdateRequirementStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SelectQuoteRequest names the winning quote of a requirement.
type SelectQuoteRequest struct {
	QuoteID string `json:"quote_id" binding:"required"`
}
