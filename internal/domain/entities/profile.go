package entities

import "time"

// Company is the bidder profile a company admin acts for.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (admin-index): admin

type Company struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Admin      string    `json:"admin"`
	Rating     float64   `json:"rating"`
	Logo       string    `json:"logo,omitempty"`
	IsVerified bool      `json:"isVerified"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Professional is an independent bidder profile. Only verified
// professionals may submit quotes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user-index): user

type Professional struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	User       string    `json:"user"`
	Rating     float64   `json:"rating"`
	Logo       string    `json:"logo,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
