package request

import (
	"errors"
	"testing"
	"time"

	"escritorio_juridico/internal/domain/entities"
)

func TestCreateCaseRequest_ToInput(t *testing.T) {
	t.Run("defaults left blank", func(t *testing.T) {
		in, err := CreateCaseRequest{ClientID: "cli-1", Titulo: "Ação"}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Status != "" || in.Urgencia != "" {
			t.Fatalf("expected blank enums, got %+v", in)
		}
	})

	t.Run("parses labels", func(t *testing.T) {
		in, err := CreateCaseRequest{ClientID: "cli-1", Titulo: "Ação", Urgencia: "alta", Status: " pendente "}.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.Urgencia != entities.UrgencyAlta || in.Status != entities.CaseStatusPendente {
			t.Fatalf("unexpected input %+v", in)
		}
	})

	t.Run("unknown urgency", func(t *testing.T) {
		if _, err := (CreateCaseRequest{Urgencia: "urgentíssima"}).ToInput(); !errors.Is(err, entities.ErrUnknownUrgency) {
			t.Fatalf("expected ErrUnknownUrgency, got %v", err)
		}
	})
}

func TestUpdateCaseRequest_ToDetails(t *testing.T) {
	area := "Cível"
	urg := "Baixa"
	d, err := UpdateCaseRequest{Area: &area, Urgencia: &urg}.ToDetails()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Area == nil || *d.Area != "Cível" || d.Urgencia == nil || *d.Urgencia != entities.UrgencyBaixa || d.Titulo != nil {
		t.Fatalf("unexpected details %+v", d)
	}

	bad := "x"
	if _, err := (UpdateCaseRequest{Urgencia: &bad}).ToDetails(); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTransitionRequest_ToPipelineRequest(t *testing.T) {
	t.Run("status and hearing date", func(t *testing.T) {
		req, err := TransitionRequest{Status: "aguardando audiência", DataAudiencia: "2025-09-01T14:00:00-03:00"}.ToPipelineRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Target != entities.CaseStatusAguardandoAudiencia {
			t.Fatalf("unexpected target %q", req.Target)
		}
		want := time.Date(2025, 9, 1, 17, 0, 0, 0, time.UTC)
		if req.DataAudiencia == nil || !req.DataAudiencia.Equal(want) {
			t.Fatalf("unexpected date %v", req.DataAudiencia)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		if _, err := (TransitionRequest{Status: "Suspenso"}).ToPipelineRequest(); !errors.Is(err, entities.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		if _, err := (TransitionRequest{Status: "Protocolado", DataAudiencia: "01/09/2025"}).ToPipelineRequest(); !errors.Is(err, ErrInvalidHearingDate) {
			t.Fatalf("expected ErrInvalidHearingDate, got %v", err)
		}
	})
}
