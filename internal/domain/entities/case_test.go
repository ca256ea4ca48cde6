package entities

import (
	"errors"
	"testing"
)

func TestParseCaseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want CaseStatus
		err  error
	}{
		{raw: "Protocolado", want: CaseStatusProtocolado},
		{raw: "  em andamento ", want: CaseStatusEmAndamento},
		{raw: "TRÂNSITO EM JULGADO", want: CaseStatusTransitoEmJulgado},
		{raw: "Audiência", err: ErrUnknownStatus},
		{raw: "", err: ErrUnknownStatus},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseCaseStatus(tc.raw)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q got %q", tc.want, got)
			}
		})
	}
}

func TestInitialCaseStatus(t *testing.T) {
	for _, s := range AllCaseStatuses() {
		want := s == CaseStatusEmElaboracao || s == CaseStatusPendente
		if got := InitialCaseStatus(s); got != want {
			t.Fatalf("status %q: expected %v", s, want)
		}
	}
}

func TestParseUrgencyAndOutcome(t *testing.T) {
	if u, err := ParseUrgency("média"); err != nil || u != UrgencyMedia {
		t.Fatalf("unexpected urgency %q %v", u, err)
	}
	if _, err := ParseUrgency("urgente"); !errors.Is(err, ErrUnknownUrgency) {
		t.Fatalf("expected ErrUnknownUrgency, got %v", err)
	}
	if o, err := ParseSentenceOutcome("acordo"); err != nil || o != SentenceOutcomeAcordo {
		t.Fatalf("unexpected outcome %q %v", o, err)
	}
	if _, err := ParseSentenceOutcome("nulo"); !errors.Is(err, ErrInvalidSentenceOutcome) {
		t.Fatalf("expected ErrInvalidSentenceOutcome, got %v", err)
	}
}

func TestCaseDetails_Empty(t *testing.T) {
	if !(CaseDetails{}).Empty() {
		t.Fatalf("expected empty details")
	}
	title := "Ação de cobrança"
	if (CaseDetails{Titulo: &title}).Empty() {
		t.Fatalf("expected non-empty details")
	}
}
