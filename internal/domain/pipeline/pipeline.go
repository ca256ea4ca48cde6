// Package pipeline holds the legal case lifecycle: phases, the transition
// table and the fields each transition must carry.
//
// Everything here is pure and synchronous. Callers persist the returned
// StatusChange through the case repository.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"escritorio_juridico/internal/domain/entities"
)

type Phase string

const (
	PhaseTriagem        Phase = "TRIAGEM"
	PhaseAtendimento    Phase = "ATENDIMENTO"
	PhasePosAtendimento Phase = "POS_ATENDIMENTO"
	PhaseTerminal       Phase = "TERMINAL"
)

// Field names reported by MissingRequiredFieldError.
const (
	FieldNumeroProcesso    = "numeroProcesso"
	FieldResultadoSentenca = "resultadoSentenca"
)

var (
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrMissingRequiredField = errors.New("missing required field")
)

// InvalidTransitionError is returned when Requested is not reachable from Current.
type InvalidTransitionError struct {
	Current   entities.CaseStatus
	Requested entities.CaseStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// MissingRequiredFieldError is returned when a transition needs an accompanying value.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool { return target == ErrMissingRequiredField }

var phases = map[entities.CaseStatus]Phase{
	entities.CaseStatusEmElaboracao: PhaseTriagem,
	entities.CaseStatusPendente:     PhaseTriagem,
	entities.CaseStatusEmNegociacao: PhaseTriagem,
	entities.CaseStatusAnalise:      PhaseTriagem,

	entities.CaseStatusEmAndamento:         PhaseAtendimento,
	entities.CaseStatusProtocolado:         PhaseAtendimento,
	entities.CaseStatusAguardandoAudiencia: PhaseAtendimento,
	entities.CaseStatusAguardandoSentenca:  PhaseAtendimento,

	entities.CaseStatusSentenca:          PhasePosAtendimento,
	entities.CaseStatusEmRecurso:         PhasePosAtendimento,
	entities.CaseStatusTransitoEmJulgado: PhasePosAtendimento,
	entities.CaseStatusEmExecucao:        PhasePosAtendimento,

	entities.CaseStatusArquivado: PhaseTerminal,
	entities.CaseStatusConcluido: PhaseTerminal,
	entities.CaseStatusEncerrado: PhaseTerminal,
}

// transitions lists targets in the order they are offered to staff.
var transitions = map[entities.CaseStatus][]entities.CaseStatus{
	entities.CaseStatusEmElaboracao: {entities.CaseStatusProtocolado},
	entities.CaseStatusEmAndamento:  {entities.CaseStatusProtocolado},
	entities.CaseStatusProtocolado: {
		entities.CaseStatusAguardandoAudiencia,
		entities.CaseStatusAguardandoSentenca,
	},
	entities.CaseStatusAguardandoAudiencia: {entities.CaseStatusAguardandoSentenca},
	entities.CaseStatusAguardandoSentenca:  {entities.CaseStatusSentenca},
	entities.CaseStatusSentenca: {
		entities.CaseStatusEmRecurso,
		entities.CaseStatusTransitoEmJulgado,
	},
	entities.CaseStatusEmRecurso: {
		entities.CaseStatusTransitoEmJulgado,
		entities.CaseStatusArquivado,
	},
	entities.CaseStatusTransitoEmJulgado: {entities.CaseStatusEmExecucao},
	entities.CaseStatusEmExecucao:        {entities.CaseStatusArquivado},
}

// PhaseOf returns the phase a status belongs to.
func PhaseOf(status entities.CaseStatus) (Phase, error) {
	p, ok := phases[status]
	if !ok {
		return "", entities.ErrUnknownStatus
	}
	return p, nil
}

// StatusesIn returns the statuses of a phase, in lifecycle order.
func StatusesIn(phase Phase) []entities.CaseStatus {
	var out []entities.CaseStatus
	for _, s := range entities.AllCaseStatuses() {
		if phases[s] == phase {
			out = append(out, s)
		}
	}
	return out
}

func ParsePhase(raw string) (Phase, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	switch Phase(raw) {
	case PhaseTriagem, PhaseAtendimento, PhasePosAtendimento, PhaseTerminal:
		return Phase(raw), nil
	}
	return "", fmt.Errorf("unknown phase %q", raw)
}

// ValidTransitions returns the statuses reachable from status. The slice is a
// copy and is empty for terminal or unknown statuses.
func ValidTransitions(status entities.CaseStatus) []entities.CaseStatus {
	next := transitions[status]
	out := make([]entities.CaseStatus, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to entities.CaseStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionRequest is what staff submits to move a case forward.
type TransitionRequest struct {
	Target            entities.CaseStatus
	NumeroProcesso    string
	ResultadoSentenca string
	DataAudiencia     *time.Time
}

// StatusChange holds the values the caller must persist together with the new status.
// Empty fields mean "leave unchanged".
type StatusChange struct {
	From              entities.CaseStatus
	To                entities.CaseStatus
	NumeroProcesso    string
	ResultadoSentenca entities.SentenceOutcome
	DataAudiencia     *time.Time
}

// Transition validates req against current and returns the change to apply.
func Transition(current entities.CaseStatus, req TransitionRequest) (StatusChange, error) {
	if !current.Valid() || !req.Target.Valid() {
		return StatusChange{}, entities.ErrUnknownStatus
	}
	if !CanTransition(current, req.Target) {
		return StatusChange{}, &InvalidTransitionError{Current: current, Requested: req.Target}
	}

	change := StatusChange{From: current, To: req.Target}
	switch req.Target {
	case entities.CaseStatusProtocolado:
		num := strings.TrimSpace(req.NumeroProcesso)
		if num == "" {
			return StatusChange{}, &MissingRequiredFieldError{Field: FieldNumeroProcesso}
		}
		change.NumeroProcesso = num
	case entities.CaseStatusSentenca:
		if strings.TrimSpace(req.ResultadoSentenca) == "" {
			return StatusChange{}, &MissingRequiredFieldError{Field: FieldResultadoSentenca}
		}
		outcome, err := entities.ParseSentenceOutcome(req.ResultadoSentenca)
		if err != nil {
			return StatusChange{}, err
		}
		change.ResultadoSentenca = outcome
	case entities.CaseStatusAguardandoAudiencia:
		if req.DataAudiencia != nil {
			d := req.DataAudiencia.UTC()
			change.DataAudiencia = &d
		}
	}
	return change, nil
}
