package entities

import "time"

// NotificationType identifies what a notification is about.
type NotificationType string

const (
	NotificationTypeQuoteSubmitted NotificationType = "quote_submitted"
)

// Notification is an advisory record for a user. Writing one is best-effort:
// submission and selection are the operations of record, a failed
// notification write is logged and never rolls them back.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (recipient-index): recipient

type Notification struct {
	ID           string           `json:"id"`
	Recipient    string           `json:"recipient"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	RelatedID    string           `json:"relatedId,omitempty"`
	RelatedModel string           `json:"relatedModel,omitempty"`
	Priority     Priority         `json:"priority"`
	IsRead       bool             `json:"isRead"`
	CreatedAt    time.Time        `json:"createdAt"`
}
