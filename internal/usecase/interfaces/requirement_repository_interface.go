package interfaces

import (
	"context"

	"buildconnect/internal/domain/entities"
)

// RequirementFilter narrows bidder-facing open-requirement listings.
// Zero values mean "no filter".
type RequirementFilter struct {
	BuildingType entities.BuildingType
	Location     string
	BudgetRange  entities.BudgetRange
}

// IRequirementRepository abstracts DynamoDB persistence for Requirement.
//
// Reads return a zero-value entity when the record is absent. Conditional
// updates return a zero-value entity when the guard condition failed, so
// callers can distinguish "lost the race" from infrastructure errors.

type IRequirementRepository interface {
	Create(ctx context.Context, r entities.Requirement) (entities.Requirement, error)
	GetByID(ctx context.Context, id string) (entities.Requirement, error)
	ListByHomeowner(ctx context.Context, homeownerID string) ([]entities.Requirement, error)
	ListOpen(ctx context.Context, f RequirementFilter) ([]entities.Requirement, error)

	// UpdateStatus moves a requirement from one status to another, guarded
	// by the stored status still being from.
	UpdateStatus(ctx context.Context, id string, from, to entities.RequirementStatus) (entities.Requirement, error)

	// Cancel soft-deletes: status=cancelled, isActive=false. Guarded by the
	// stored status not being terminal already.
	Cancel(ctx context.Context, id string) (entities.Requirement, error)

	// RemoveQuoteRef drops a withdrawn quote's id from the quotes list.
	RemoveQuoteRef(ctx context.Context, requirementID, quoteID string) error
}
