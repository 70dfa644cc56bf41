package request

import (
	"testing"
	"time"
)

func TestQuoteTimelineRequest_Entity(t *testing.T) {
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)

	r := QuoteTimelineRequest{
		StartDate: start,
		EndDate:   end,
		Milestones: []MilestoneRequest{
			{Name: "Foundation", Percentage: 30},
			{Name: "Structure", Percentage: 40},
		},
	}

	tl := r.Entity()
	if !tl.StartDate.Equal(start) || !tl.EndDate.Equal(end) {
		t.Fatalf("unexpected window: %v .. %v", tl.StartDate, tl.EndDate)
	}
	if len(tl.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(tl.Milestones))
	}
	if tl.Milestones[0].Name != "Foundation" || tl.Milestones[1].Percentage != 40 {
		t.Fatalf("unexpected milestones: %+v", tl.Milestones)
	}

	empty := QuoteTimelineRequest{StartDate: start, EndDate: end}.Entity()
	if empty.Milestones == nil || len(empty.Milestones) != 0 {
		t.Fatalf("expected empty non-nil milestones, got %#v", empty.Milestones)
	}
}

func TestBudgetBreakdownRequest_Entity(t *testing.T) {
	r := BudgetBreakdownRequest{Materials: 10, Labor: 5, Overhead: 2}
	b := r.Entity()
	if b.Materials != 10 || b.Labor != 5 || b.Overhead != 2 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if got := b.Total(); got != 17 {
		t.Fatalf("expected total 17, got %v", got)
	}
}

func TestQuoteTermsRequest_Entity(t *testing.T) {
	r := QuoteTermsRequest{
		PaymentSchedule: []PaymentScheduleEntryRequest{
			{Milestone: "Foundation", Percentage: 50, Amount: 100000, DueDate: "2026-03-01"},
		},
		CancellationPolicy: "30 days notice",
	}

	terms := r.Entity()
	if len(terms.PaymentSchedule) != 1 || terms.PaymentSchedule[0].Amount != 100000 {
		t.Fatalf("unexpected schedule: %+v", terms.PaymentSchedule)
	}
	if terms.CancellationPolicy != "30 days notice" {
		t.Fatalf("unexpected policy: %q", terms.CancellationPolicy)
	}
}
