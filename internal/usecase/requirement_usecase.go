package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRequirementForbidden    = errors.New("access to requirement denied")
	ErrRequirementNotFound     = errors.New("requirement not found")
	ErrAlreadySelected         = errors.New("a quote was already selected for this requirement")
	ErrQuoteNotSelectable      = errors.New("quote is not in a selectable state")
	ErrInvalidTransition       = errors.New("invalid requirement status transition")
	ErrInvalidRequirementInput = errors.New("invalid requirement input")
)

// CreateRequirementInput carries the homeowner-provided requirement fields.
type CreateRequirementInput struct {
	ServiceType           entities.ServiceType
	Title                 string
	Description           string
	Budget                float64
	Timeline              entities.Timeline
	Location              string
	BuildingType          entities.BuildingType
	Size                  float64
	Bedrooms              int
	Bathrooms             int
	Features              []string
	Priority              entities.Priority
	RequestMultipleQuotes bool
	ContactPreference     string
}

// IRequirementUseCase exposes requirement CRUD, the lifecycle state machine
// and the selection coordinator.
//
//   - SelectQuote is the only path to quote status accepted: one transaction
//     marks the winner accepted, non-withdrawn siblings rejected and the
//     requirement company_selected. A second call fails with
//     ErrAlreadySelected instead of re-running the cascade.
//   - UpdateStatus validates transitions against the closed table; a write
//     to cancelled runs the full cancellation cascade.

type IRequirementUseCase interface {
	Create(ctx context.Context, actor entities.Actor, in CreateRequirementInput) (entities.Requirement, error)
	ListMine(ctx context.Context, actor entities.Actor) ([]entities.Requirement, error)
	ListOpen(ctx context.Context, actor entities.Actor, f interfaces.RequirementFilter, page, limit int) ([]entities.Requirement, int, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Requirement, error)
	GetPublic(ctx context.Context, actor entities.Actor, id string) (entities.Requirement, error)
	ListQuotes(ctx context.Context, actor entities.Actor, id string) ([]entities.Quote, error)
	SelectQuote(ctx context.Context, actor entities.Actor, requirementID, quoteID string) (entities.Requirement, entities.Quote, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, status entities.RequirementStatus) (entities.Requirement, error)
	Cancel(ctx context.Context, actor entities.Actor, id string) error
}

type RequirementUseCase struct {
	requirements interfaces.IRequirementRepository
	quotes       interfaces.IQuoteRepository
	now          func() time.Time
}

var _ IRequirementUseCase = (*RequirementUseCase)(nil)

func NewRequirementUseCase(requirements interfaces.IRequirementRepository, quotes interfaces.IQuoteRepository) *RequirementUseCase {
	return &RequirementUseCase{requirements: requirements, quotes: quotes, now: time.Now}
}

func (u *RequirementUseCase) Create(ctx context.Context, actor entities.Actor, in CreateRequirementInput) (entities.Requirement, error) {
	if actor.Role != entities.RoleHomeowner {
		return entities.Requirement{}, ErrRequirementForbidden
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	location := strings.TrimSpace(in.Location)
	if title == "" || description == "" || location == "" {
		return entities.Requirement{}, ErrInvalidRequirementInput
	}
	if in.Budget < 0 {
		return entities.Requirement{}, ErrInvalidRequirementInput
	}
	if in.BuildingType == "" {
		return entities.Requirement{}, ErrInvalidRequirementInput
	}
	if !in.Timeline.StartDate.IsZero() && !in.Timeline.EndDate.IsZero() && in.Timeline.EndDate.Before(in.Timeline.StartDate) {
		return entities.Requirement{}, ErrInvalidRequirementInput
	}

	serviceType := in.ServiceType
	if serviceType == "" {
		serviceType = entities.ServiceTypeGeneral
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.PriorityMedium
	}
	contact := in.ContactPreference
	if contact == "" {
		contact = "email"
	}

	now := u.now().UTC()
	r := entities.Requirement{
		ID:                    uuid.NewString(),
		Homeowner:             actor.UserID,
		ServiceType:           serviceType,
		Title:                 title,
		Description:           description,
		Budget:                in.Budget,
		BudgetRange:           entities.DeriveBudgetRange(in.Budget),
		Timeline:              in.Timeline,
		Location:              location,
		BuildingType:          in.BuildingType,
		Size:                  in.Size,
		Bedrooms:              in.Bedrooms,
		Bathrooms:             in.Bathrooms,
		Features:              in.Features,
		Status:                entities.RequirementStatusOpen,
		Quotes:                []string{},
		IsActive:              true,
		Priority:              priority,
		RequestMultipleQuotes: in.RequestMultipleQuotes,
		ContactPreference:     contact,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.requirements.Create(ctx, r)
	if err != nil {
		return entities.Requirement{}, err
	}
	log.Printf("[requirement][usecase] created requirement_id=%s homeowner=%s budget_range=%q", created.ID, actor.UserID, created.BudgetRange)
	return created, nil
}

func (u *RequirementUseCase) ListMine(ctx context.Context, actor entities.Actor) ([]entities.Requirement, error) {
	if actor.Role != entities.RoleHomeowner {
		return nil, ErrRequirementForbidden
	}

	all, err := u.requirements.ListByHomeowner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	active := make([]entities.Requirement, 0, len(all))
	for _, r := range all {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active, nil
}

func (u *RequirementUseCase) ListOpen(ctx context.Context, actor entities.Actor, f interfaces.RequirementFilter, page, limit int) ([]entities.Requirement, int, error) {
	if !actor.CanBid() {
		return nil, 0, ErrRequirementForbidden
	}

	open, err := u.requirements.ListOpen(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return paginate(open, page, limit), len(open), nil
}

func (u *RequirementUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Requirement, error) {
	r, err := u.ownedRequirement(ctx, actor, id)
	if err != nil {
		return entities.Requirement{}, err
	}
	return r, nil
}

func (u *RequirementUseCase) GetPublic(ctx context.Context, actor entities.Actor, id string) (entities.Requirement, error) {
	if !actor.CanBid() {
		return entities.Requirement{}, ErrRequirementForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Requirement{}, ErrInvalidRequirementInput
	}

	r, err := u.requirements.GetByID(ctx, id)
	if err != nil {
		return entities.Requirement{}, err
	}
	// Bidders only ever see open requirements; closed and absent look alike.
	if r.ID == "" || !r.IsActive || r.Status != entities.RequirementStatusOpen {
		return entities.Requirement{}, ErrRequirementUnavailable
	}
	return r, nil
}

func (u *RequirementUseCase) ListQuotes(ctx context.Context, actor entities.Actor, id string) ([]entities.Quote, error) {
	r, err := u.ownedRequirement(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	quotes, err := u.quotes.ListByRequirementID(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	visible := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Status != entities.QuoteStatusSubmitted || !q.IsActive {
			continue
		}
		if q.IsExpired(now) {
			continue
		}
		visible = append(visible, q)
	}
	return visible, nil
}

func (u *RequirementUseCase) SelectQuote(ctx context.Context, actor entities.Actor, requirementID, quoteID string) (entities.Requirement, entities.Quote, error) {
	r, err := u.ownedRequirement(ctx, actor, requirementID)
	if err != nil {
		return entities.Requirement{}, entities.Quote{}, err
	}

	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Requirement{}, entities.Quote{}, ErrInvalidRequirementInput
	}

	winner, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Requirement{}, entities.Quote{}, err
	}
	// A valid quote id pointing at another requirement is rejected the same
	// way as a missing one: cross-requirement selection is not a thing.
	if winner.ID == "" || winner.Requirement != r.ID {
		return entities.Requirement{}, entities.Quote{}, ErrQuoteNotFound
	}

	// Gate re-checked on fresh state; the transaction re-verifies it again
	// with a condition on the requirement item.
	if r.Status != entities.RequirementStatusOpen && r.Status != entities.RequirementStatusReviewingQuotes {
		return entities.Requirement{}, entities.Quote{}, ErrAlreadySelected
	}
	if winner.Status != entities.QuoteStatusSubmitted && winner.Status != entities.QuoteStatusUnderReview {
		return entities.Requirement{}, entities.Quote{}, ErrQuoteNotSelectable
	}

	// A sibling withdrawing mid-selection cancels the transaction; the loser
	// set is recomputed from fresh state and the selection retried.
	rejected := 0
	for attempt := 0; ; attempt++ {
		siblings, err := u.quotes.ListByRequirementID(ctx, r.ID)
		if err != nil {
			return entities.Requirement{}, entities.Quote{}, err
		}
		loserIDs := make([]string, 0, len(siblings))
		for _, s := range siblings {
			if s.ID == winner.ID {
				continue
			}
			// Withdrawn quotes stay withdrawn; only live siblings get rejected.
			if s.Status == entities.QuoteStatusWithdrawn {
				continue
			}
			loserIDs = append(loserIDs, s.ID)
		}

		err = u.quotes.Select(ctx, r.ID, winner.ID, loserIDs)
		if err == nil {
			rejected = len(loserIDs)
			break
		}
		if errors.Is(err, interfaces.ErrSelectionRetry) && attempt < 2 {
			log.Printf("[requirement][usecase] selection retry requirement_id=%s quote_id=%s attempt=%d", r.ID, winner.ID, attempt+1)
			continue
		}
		switch {
		case errors.Is(err, interfaces.ErrSelectionConflict):
			return entities.Requirement{}, entities.Quote{}, ErrAlreadySelected
		case errors.Is(err, interfaces.ErrQuoteNotSelectable):
			return entities.Requirement{}, entities.Quote{}, ErrQuoteNotSelectable
		}
		return entities.Requirement{}, entities.Quote{}, err
	}
	log.Printf("[requirement][usecase] quote selected requirement_id=%s quote_id=%s rejected=%d", r.ID, winner.ID, rejected)

	updatedRequirement, err := u.requirements.GetByID(ctx, r.ID)
	if err != nil {
		return entities.Requirement{}, entities.Quote{}, err
	}
	updatedWinner, err := u.quotes.GetByID(ctx, winner.ID)
	if err != nil {
		return entities.Requirement{}, entities.Quote{}, err
	}
	return updatedRequirement, updatedWinner, nil
}

func (u *RequirementUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, id string, status entities.RequirementStatus) (entities.Requirement, error) {
	r, err := u.ownedRequirement(ctx, actor, id)
	if err != nil {
		return entities.Requirement{}, err
	}

	if !status.IsValid() {
		return entities.Requirement{}, ErrInvalidTransition
	}
	if status == entities.RequirementStatusCancelled {
		if err := u.cancel(ctx, r); err != nil {
			return entities.Requirement{}, err
		}
		return u.requirements.GetByID(ctx, r.ID)
	}
	if !r.Status.CanTransition(status) {
		return entities.Requirement{}, ErrInvalidTransition
	}

	updated, err := u.requirements.UpdateStatus(ctx, r.ID, r.Status, status)
	if err != nil {
		return entities.Requirement{}, err
	}
	if updated.ID == "" {
		// Stored status moved underneath us; the guard refused the write.
		return entities.Requirement{}, ErrInvalidTransition
	}
	log.Printf("[requirement][usecase] status updated requirement_id=%s from=%s to=%s", r.ID, r.Status, status)
	return updated, nil
}

func (u *RequirementUseCase) Cancel(ctx context.Context, actor entities.Actor, id string) error {
	r, err := u.ownedRequirement(ctx, actor, id)
	if err != nil {
		return err
	}
	return u.cancel(ctx, r)
}

func (u *RequirementUseCase) cancel(ctx context.Context, r entities.Requirement) error {
	if r.Status.IsTerminal() {
		return ErrInvalidTransition
	}

	cancelled, err := u.requirements.Cancel(ctx, r.ID)
	if err != nil {
		return err
	}
	if cancelled.ID == "" {
		return ErrInvalidTransition
	}

	// Cascade: every non-accepted quote becomes withdrawn and inactive. An
	// already-accepted quote is left alone even under a cancelled
	// requirement.
	if err := u.quotes.WithdrawAllForRequirement(ctx, r.ID); err != nil {
		log.Printf("[requirement][usecase] cancellation cascade failed requirement_id=%s err=%v", r.ID, err)
		return err
	}
	log.Printf("[requirement][usecase] cancelled requirement_id=%s", r.ID)
	return nil
}

// ownedRequirement loads a requirement and verifies the caller may act on
// it: the owning homeowner, or an operator with the admin role.
func (u *RequirementUseCase) ownedRequirement(ctx context.Context, actor entities.Actor, id string) (entities.Requirement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Requirement{}, ErrInvalidRequirementInput
	}
	if actor.Role != entities.RoleHomeowner && actor.Role != entities.RoleAdmin {
		return entities.Requirement{}, ErrRequirementForbidden
	}

	r, err := u.requirements.GetByID(ctx, id)
	if err != nil {
		return entities.Requirement{}, err
	}
	if r.ID == "" {
		return entities.Requirement{}, ErrRequirementNotFound
	}
	if actor.Role == entities.RoleHomeowner && r.Homeowner != actor.UserID {
		return entities.Requirement{}, ErrRequirementForbidden
	}
	return r, nil
}
