package entities

import (
	"testing"
	"time"
)

func TestDeriveBudgetRange(t *testing.T) {
	cases := []struct {
		budget float64
		want   BudgetRange
	}{
		{0, BudgetRangeUnder10L},
		{999_999, BudgetRangeUnder10L},
		{1_000_000, BudgetRange10Lto25L},
		{2_000_000, BudgetRange10Lto25L},
		{2_500_000, BudgetRange10Lto25L},
		{2_500_001, BudgetRange25Lto50L},
		{5_000_000, BudgetRange25Lto50L},
		{7_500_000, BudgetRange50Lto1Cr},
		{10_000_000, BudgetRange50Lto1Cr},
		{15_000_000, BudgetRange1Crto2Cr},
		{20_000_000, BudgetRange1Crto2Cr},
		{20_000_001, BudgetRangeAbove2Cr},
	}

	for _, tc := range cases {
		if got := DeriveBudgetRange(tc.budget); got != tc.want {
			t.Fatalf("DeriveBudgetRange(%v) = %q, want %q", tc.budget, got, tc.want)
		}
	}
}

func TestRequirementStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to RequirementStatus
	}{
		{RequirementStatusOpen, RequirementStatusReviewingQuotes},
		{RequirementStatusOpen, RequirementStatusCancelled},
		{RequirementStatusReviewingQuotes, RequirementStatusCompanySelected},
		{RequirementStatusReviewingQuotes, RequirementStatusCancelled},
		{RequirementStatusCompanySelected, RequirementStatusInProgress},
		{RequirementStatusCompanySelected, RequirementStatusCancelled},
		{RequirementStatusInProgress, RequirementStatusCompleted},
		{RequirementStatusInProgress, RequirementStatusCancelled},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransition(tc.to) {
			t.Fatalf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to RequirementStatus
	}{
		{RequirementStatusReviewingQuotes, RequirementStatusOpen},
		{RequirementStatusCompanySelected, RequirementStatusReviewingQuotes},
		{RequirementStatusCompleted, RequirementStatusInProgress},
		{RequirementStatusCancelled, RequirementStatusOpen},
		{RequirementStatusOpen, RequirementStatusCompanySelected},
		{RequirementStatusOpen, RequirementStatusCompleted},
		{RequirementStatusCompleted, RequirementStatusCancelled},
		{RequirementStatusCancelled, RequirementStatusCancelled},
	}
	for _, tc := range denied {
		if tc.from.CanTransition(tc.to) {
			t.Fatalf("expected %s -> %s to be rejected", tc.from, tc.to)
		}
	}

	if !RequirementStatusCompleted.IsTerminal() || !RequirementStatusCancelled.IsTerminal() {
		t.Fatalf("expected completed and cancelled to be terminal")
	}
	if RequirementStatusOpen.IsTerminal() {
		t.Fatalf("open must not be terminal")
	}
	if RequirementStatus("garbage").IsValid() {
		t.Fatalf("unknown literal must be invalid")
	}
}

func TestRequirementTimelineDuration(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	r := Requirement{Timeline: Timeline{StartDate: start, EndDate: start.Add(10 * 24 * time.Hour)}}
	if got := r.TimelineDuration(); got != 10 {
		t.Fatalf("expected 10 days, got %d", got)
	}

	r = Requirement{}
	if got := r.TimelineDuration(); got != 0 {
		t.Fatalf("expected 0 for unset timeline, got %d", got)
	}
}
