package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"buildconnect/internal/domain/entities"
	"buildconnect/internal/usecase/interfaces"
	mock_interfaces "buildconnect/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type quoteUseCaseMocks struct {
	quotes        *mock_interfaces.MockIQuoteRepository
	requirements  *mock_interfaces.MockIRequirementRepository
	companies     *mock_interfaces.MockICompanyRepository
	professionals *mock_interfaces.MockIProfessionalRepository
	notifications *mock_interfaces.MockINotificationRepository
}

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, quoteUseCaseMocks) {
	ctrl := gomock.NewController(t)
	m := quoteUseCaseMocks{
		quotes:        mock_interfaces.NewMockIQuoteRepository(ctrl),
		requirements:  mock_interfaces.NewMockIRequirementRepository(ctrl),
		companies:     mock_interfaces.NewMockICompanyRepository(ctrl),
		professionals: mock_interfaces.NewMockIProfessionalRepository(ctrl),
		notifications: mock_interfaces.NewMockINotificationRepository(ctrl),
	}
	uc := NewQuoteUseCase(m.quotes, m.requirements, m.companies, m.professionals, m.notifications)
	return uc, m
}

func validSubmitInput() SubmitQuoteInput {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	return SubmitQuoteInput{
		RequirementID:   "req-1",
		DesignProposal:  "Three floor residential build",
		EstimatedBudget: 1500000,
		Timeline: entities.QuoteTimeline{
			StartDate: start,
			EndDate:   start.AddDate(0, 6, 0),
		},
	}
}

func companyAdmin() entities.Actor {
	return entities.Actor{Role: entities.RoleCompanyAdmin, UserID: "user-1"}
}

func openRequirement() entities.Requirement {
	return entities.Requirement{
		ID:        "req-1",
		Homeowner: "owner-1",
		Title:     "Villa construction",
		Status:    entities.RequirementStatusOpen,
		IsActive:  true,
	}
}

func TestQuoteUseCase_Submit(t *testing.T) {
	t.Run("homeowner cannot bid", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		actor := entities.Actor{Role: entities.RoleHomeowner, UserID: "owner-1"}
		_, err := uc.Submit(context.Background(), actor, validSubmitInput())
		if !errors.Is(err, ErrBidderForbidden) {
			t.Fatalf("expected ErrBidderForbidden, got %v", err)
		}
	})

	t.Run("empty proposal", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		in := validSubmitInput()
		in.DesignProposal = "   "
		_, err := uc.Submit(context.Background(), companyAdmin(), in)
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("milestones over 100 percent", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		in := validSubmitInput()
		in.Timeline.Milestones = []entities.Milestone{
			{Name: "Foundation", Percentage: 60},
			{Name: "Structure", Percentage: 50},
		}
		_, err := uc.Submit(context.Background(), companyAdmin(), in)
		if !errors.Is(err, ErrInvalidQuoteInput) {
			t.Fatalf("expected ErrInvalidQuoteInput, got %v", err)
		}
	})

	t.Run("no company profile", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{}, nil)

		_, err := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("unverified professional", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		actor := entities.Actor{Role: entities.RoleProfessional, UserID: "user-2"}
		m.professionals.EXPECT().GetByUser(gomock.Any(), "user-2").Return(entities.Professional{ID: "pro-1", IsVerified: false}, nil)

		_, err := uc.Submit(context.Background(), actor, validSubmitInput())
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("requirement closed or missing look alike", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1", Admin: "user-1"}, nil).Times(2)

		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Requirement{}, nil)
		_, errMissing := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())

		closed := openRequirement()
		closed.Status = entities.RequirementStatusCompanySelected
		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(closed, nil)
		_, errClosed := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())

		if !errors.Is(errMissing, ErrRequirementUnavailable) || !errors.Is(errClosed, ErrRequirementUnavailable) {
			t.Fatalf("expected ErrRequirementUnavailable for both, got %v and %v", errMissing, errClosed)
		}
	})

	t.Run("second bidder while reviewing quotes", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		reviewing := openRequirement()
		reviewing.Status = entities.RequirementStatusReviewingQuotes
		reviewing.Quotes = []string{"req-1#c:comp-9"}
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(reviewing, nil)
		m.quotes.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, nil)

		created, err := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "req-1#c:comp-1" {
			t.Fatalf("unexpected pair key: %s", created.ID)
		}
	})

	t.Run("duplicate pair key", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequirement(), nil)
		m.quotes.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrQuoteConflict)

		_, err := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())
		if !errors.Is(err, ErrDuplicateQuote) {
			t.Fatalf("expected ErrDuplicateQuote, got %v", err)
		}
	})

	t.Run("requirement closed during transaction", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequirement(), nil)
		m.quotes.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Quote{}, interfaces.ErrRequirementNotOpen)

		_, err := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())
		if !errors.Is(err, ErrRequirementUnavailable) {
			t.Fatalf("expected ErrRequirementUnavailable, got %v", err)
		}
	})

	t.Run("success notifies homeowner", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequirement(), nil)
		m.quotes.EXPECT().Submit(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID != "req-1#c:comp-1" {
					t.Fatalf("unexpected pair key: %s", q.ID)
				}
				if q.Status != entities.QuoteStatusSubmitted || !q.IsActive {
					t.Fatalf("unexpected quote state: %+v", q)
				}
				if q.SubmittedAt.IsZero() || q.ValidUntil.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Notification{})).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Recipient != "owner-1" || n.Type != entities.NotificationTypeQuoteSubmitted {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return n, nil
			},
		)

		created, err := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected quote id")
		}
	})

	t.Run("notification failure does not fail submission", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.requirements.EXPECT().GetByID(gomock.Any(), "req-1").Return(openRequirement(), nil)
		m.quotes.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)
		m.notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("dynamo down"))

		_, err := uc.Submit(context.Background(), companyAdmin(), validSubmitInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Withdraw(t *testing.T) {
	ownQuote := entities.Quote{
		ID:          "req-1#c:comp-1",
		Requirement: "req-1",
		Company:     "comp-1",
		Status:      entities.QuoteStatusSubmitted,
		IsActive:    true,
	}

	t.Run("accepted quote cannot be withdrawn", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		accepted := ownQuote
		accepted.Status = entities.QuoteStatusAccepted
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), accepted.ID).Return(accepted, nil)

		err := uc.Withdraw(context.Background(), companyAdmin(), accepted.ID)
		if !errors.Is(err, ErrQuoteNotWithdrawable) {
			t.Fatalf("expected ErrQuoteNotWithdrawable, got %v", err)
		}
	})

	t.Run("selection wins the race", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), ownQuote.ID).Return(ownQuote, nil)
		m.quotes.EXPECT().Withdraw(gomock.Any(), ownQuote.ID).Return(entities.Quote{}, nil)

		err := uc.Withdraw(context.Background(), companyAdmin(), ownQuote.ID)
		if !errors.Is(err, ErrQuoteNotWithdrawable) {
			t.Fatalf("expected ErrQuoteNotWithdrawable, got %v", err)
		}
	})

	t.Run("someone else's quote looks missing", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		other := ownQuote
		other.Company = "comp-9"
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), other.ID).Return(other, nil)

		err := uc.Withdraw(context.Background(), companyAdmin(), other.ID)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("success removes requirement ref", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		withdrawn := ownQuote
		withdrawn.Status = entities.QuoteStatusWithdrawn
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), ownQuote.ID).Return(ownQuote, nil)
		m.quotes.EXPECT().Withdraw(gomock.Any(), ownQuote.ID).Return(withdrawn, nil)
		m.requirements.EXPECT().RemoveQuoteRef(gomock.Any(), "req-1", ownQuote.ID).Return(nil)

		if err := uc.Withdraw(context.Background(), companyAdmin(), ownQuote.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Update(t *testing.T) {
	base := entities.Quote{
		ID:              "req-1#c:comp-1",
		Requirement:     "req-1",
		Company:         "comp-1",
		DesignProposal:  "original proposal",
		EstimatedBudget: 1000000,
		Timeline: entities.QuoteTimeline{
			StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
		Status:   entities.QuoteStatusSubmitted,
		IsActive: true,
	}

	t.Run("rejected quote not editable", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		rejected := base
		rejected.Status = entities.QuoteStatusRejected
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), base.ID).Return(rejected, nil)

		newBudget := 2000000.0
		_, err := uc.Update(context.Background(), companyAdmin(), base.ID, QuoteUpdateInput{EstimatedBudget: &newBudget})
		if !errors.Is(err, ErrQuoteNotEditable) {
			t.Fatalf("expected ErrQuoteNotEditable, got %v", err)
		}
	})

	t.Run("conditional write lost the race", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), base.ID).Return(base, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Quote{}, nil)

		newBudget := 2000000.0
		_, err := uc.Update(context.Background(), companyAdmin(), base.ID, QuoteUpdateInput{EstimatedBudget: &newBudget})
		if !errors.Is(err, ErrQuoteNotEditable) {
			t.Fatalf("expected ErrQuoteNotEditable, got %v", err)
		}
	})

	t.Run("patch applies only provided fields", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().GetByID(gomock.Any(), base.ID).Return(base, nil)
		m.quotes.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.EstimatedBudget != 2000000 {
					t.Fatalf("expected patched budget, got %f", q.EstimatedBudget)
				}
				if q.DesignProposal != "original proposal" {
					t.Fatalf("untouched field changed: %s", q.DesignProposal)
				}
				return q, nil
			},
		)

		newBudget := 2000000.0
		updated, err := uc.Update(context.Background(), companyAdmin(), base.ID, QuoteUpdateInput{EstimatedBudget: &newBudget})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.EstimatedBudget != 2000000 {
			t.Fatalf("unexpected budget: %f", updated.EstimatedBudget)
		}
	})
}

func TestQuoteUseCase_ListMine(t *testing.T) {
	t.Run("pagination slices active quotes", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		quotes := []entities.Quote{
			{ID: "q1", Company: "comp-1", IsActive: true},
			{ID: "q2", Company: "comp-1", IsActive: false},
			{ID: "q3", Company: "comp-1", IsActive: true},
			{ID: "q4", Company: "comp-1", IsActive: true},
		}
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().ListByBidder(gomock.Any(), "c:comp-1", entities.QuoteStatus("")).Return(quotes, nil)

		page, total, err := uc.ListMine(context.Background(), companyAdmin(), "all", 2, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 {
			t.Fatalf("expected 3 active, got %d", total)
		}
		if len(page) != 1 || page[0].ID != "q4" {
			t.Fatalf("unexpected page: %+v", page)
		}
	})
}

func TestQuoteUseCase_Analytics(t *testing.T) {
	t.Run("expired submitted quotes leave the funnel", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return now }

		quotes := []entities.Quote{
			{ID: "q1", Company: "comp-1", Status: entities.QuoteStatusSubmitted, EstimatedBudget: 100, ValidUntil: now.AddDate(0, 1, 0), IsActive: true},
			{ID: "q2", Company: "comp-1", Status: entities.QuoteStatusSubmitted, EstimatedBudget: 300, ValidUntil: now.AddDate(0, -1, 0), IsActive: true},
			{ID: "q3", Company: "comp-1", Status: entities.QuoteStatusAccepted, EstimatedBudget: 500, ValidUntil: now.AddDate(0, -1, 0), IsActive: true},
		}
		m.companies.EXPECT().GetByAdmin(gomock.Any(), "user-1").Return(entities.Company{ID: "comp-1"}, nil)
		m.quotes.EXPECT().ListByBidder(gomock.Any(), "c:comp-1", entities.QuoteStatus("")).Return(quotes, nil)

		analytics, err := uc.Analytics(context.Background(), companyAdmin())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if analytics.TotalQuotes != 2 {
			t.Fatalf("expected 2 counted quotes, got %d", analytics.TotalQuotes)
		}
		if analytics.AcceptedQuotes != 1 {
			t.Fatalf("expected 1 accepted, got %d", analytics.AcceptedQuotes)
		}
		if analytics.ConversionRate != 50 {
			t.Fatalf("expected 50%% conversion, got %f", analytics.ConversionRate)
		}
	})
}
