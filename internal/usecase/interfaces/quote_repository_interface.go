package interfaces

import (
	"context"
	"errors"

	"buildconnect/internal/domain/entities"
)

// Outcomes of the transactional bidding writes. The repository inspects
// transaction cancellation reasons and reports which guard failed.
var (
	// ErrQuoteConflict: a quote already occupies the (requirement, bidder)
	// pair key, whatever its status.
	ErrQuoteConflict = errors.New("quote already exists for requirement and bidder")
	// ErrRequirementNotOpen: the requirement is missing, inactive, or no
	// longer accepting quotes.
	ErrRequirementNotOpen = errors.New("requirement not accepting quotes")
	// ErrSelectionConflict: the requirement already advanced past
	// reviewing_quotes or carries a selected quote.
	ErrSelectionConflict = errors.New("requirement selection already settled")
	// ErrQuoteNotSelectable: the winning quote left the submitted/under_review
	// states before the selection committed.
	ErrQuoteNotSelectable = errors.New("quote not in a selectable state")
	// ErrSelectionRetry: a losing quote changed state while the selection was
	// in flight. The caller recomputes the loser set and retries.
	ErrSelectionRetry = errors.New("selection interrupted by a concurrent quote update")
)

// IQuoteRepository abstracts DynamoDB persistence for Quote, including the
// two multi-record transactional units of the bidding workflow.
//
// Reads return a zero-value entity when the record is absent; conditional
// single-item updates return a zero-value entity when their guard failed.

type IQuoteRepository interface {
	// Submit applies the submission unit in one transaction: put the quote
	// (uniqueness via its pair-key id) and append it to the requirement's
	// quotes list while moving open -> reviewing_quotes. Fails with
	// ErrQuoteConflict or ErrRequirementNotOpen.
	Submit(ctx context.Context, q entities.Quote) (entities.Quote, error)

	// Select applies the selection unit in one transaction: winner ->
	// accepted, losers -> rejected, requirement -> company_selected with
	// selectedQuote set. Fails with ErrSelectionConflict,
	// ErrQuoteNotSelectable or ErrSelectionRetry.
	Select(ctx context.Context, requirementID, winnerID string, loserIDs []string) error

	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByRequirementID(ctx context.Context, requirementID string) ([]entities.Quote, error)
	ListByBidder(ctx context.Context, bidderKey string, status entities.QuoteStatus) ([]entities.Quote, error)

	// Update rewrites the bidder-editable fields, guarded by the stored
	// status still being draft or submitted.
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)

	// Withdraw sets status=withdrawn, isActive=false, guarded by the stored
	// status not being accepted.
	Withdraw(ctx context.Context, id string) (entities.Quote, error)

	// WithdrawAllForRequirement is the cancellation cascade: every quote of
	// the requirement except accepted ones becomes withdrawn and inactive.
	WithdrawAllForRequirement(ctx context.Context, requirementID string) error
}
