package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUnknownStatus          = errors.New("unknown case status")
	ErrUnknownUrgency         = errors.New("unknown urgency")
	ErrInvalidSentenceOutcome = errors.New("invalid sentence outcome")
)

// CaseStatus is the closed set of statuses a legal case (processo) can be in.
//
// Domain notes:
//   - Values are stored and exchanged exactly as written below (Portuguese labels).
//   - Status is only changed through the pipeline (see internal/domain/pipeline).
type CaseStatus string

const (
	CaseStatusEmElaboracao CaseStatus = "Em Elaboração"
	CaseStatusPendente     CaseStatus = "Pendente"
	CaseStatusEmNegociacao CaseStatus = "Em Negociação"
	CaseStatusAnalise      CaseStatus = "Análise"

	CaseStatusEmAndamento         CaseStatus = "Em andamento"
	CaseStatusProtocolado         CaseStatus = "Protocolado"
	CaseStatusAguardandoAudiencia CaseStatus = "Aguardando Audiência"
	CaseStatusAguardandoSentenca  CaseStatus = "Aguardando Sentença"

	CaseStatusSentenca          CaseStatus = "Sentença"
	CaseStatusEmRecurso         CaseStatus = "Em Recurso"
	CaseStatusTransitoEmJulgado CaseStatus = "Trânsito em Julgado"
	CaseStatusEmExecucao        CaseStatus = "Em Execução"

	CaseStatusArquivado CaseStatus = "Arquivado"
	CaseStatusConcluido CaseStatus = "Concluído"
	CaseStatusEncerrado CaseStatus = "Encerrado"
)

var allCaseStatuses = []CaseStatus{
	CaseStatusEmElaboracao,
	CaseStatusPendente,
	CaseStatusEmNegociacao,
	CaseStatusAnalise,
	CaseStatusEmAndamento,
	CaseStatusProtocolado,
	CaseStatusAguardandoAudiencia,
	CaseStatusAguardandoSentenca,
	CaseStatusSentenca,
	CaseStatusEmRecurso,
	CaseStatusTransitoEmJulgado,
	CaseStatusEmExecucao,
	CaseStatusArquivado,
	CaseStatusConcluido,
	CaseStatusEncerrado,
}

// AllCaseStatuses returns every known status in lifecycle order.
func AllCaseStatuses() []CaseStatus {
	out := make([]CaseStatus, len(allCaseStatuses))
	copy(out, allCaseStatuses)
	return out
}

func (s CaseStatus) Valid() bool {
	for _, known := range allCaseStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseCaseStatus accepts a status label ignoring surrounding spaces and case.
// The returned value is always one of the declared constants.
func ParseCaseStatus(raw string) (CaseStatus, error) {
	raw = strings.TrimSpace(raw)
	for _, known := range allCaseStatuses {
		if strings.EqualFold(raw, string(known)) {
			return known, nil
		}
	}
	return "", ErrUnknownStatus
}

// InitialCaseStatus reports whether a case may be created with s.
func InitialCaseStatus(s CaseStatus) bool {
	return s == CaseStatusEmElaboracao || s == CaseStatusPendente
}

type Urgency string

const (
	UrgencyBaixa Urgency = "Baixa"
	UrgencyMedia Urgency = "Média"
	UrgencyAlta  Urgency = "Alta"
)

func ParseUrgency(raw string) (Urgency, error) {
	raw = strings.TrimSpace(raw)
	for _, u := range []Urgency{UrgencyBaixa, UrgencyMedia, UrgencyAlta} {
		if strings.EqualFold(raw, string(u)) {
			return u, nil
		}
	}
	return "", ErrUnknownUrgency
}

// SentenceOutcome classifies the decision recorded when a case reaches Sentença.
type SentenceOutcome string

const (
	SentenceOutcomeProcedente   SentenceOutcome = "Procedente"
	SentenceOutcomeImprocedente SentenceOutcome = "Improcedente"
	SentenceOutcomeParcial      SentenceOutcome = "Parcial"
	SentenceOutcomeAcordo       SentenceOutcome = "Acordo"
)

func ParseSentenceOutcome(raw string) (SentenceOutcome, error) {
	raw = strings.TrimSpace(raw)
	for _, o := range []SentenceOutcome{
		SentenceOutcomeProcedente,
		SentenceOutcomeImprocedente,
		SentenceOutcomeParcial,
		SentenceOutcomeAcordo,
	} {
		if strings.EqualFold(raw, string(o)) {
			return o, nil
		}
	}
	return "", ErrInvalidSentenceOutcome
}

// Case is a legal matter tracked from intake to archive.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Phase is never stored; it is derived from Status by the pipeline.
type Case struct {
	ID                string          `json:"id"`
	ClientID          string          `json:"client_id"`
	Titulo            string          `json:"titulo"`
	Area              string          `json:"area"`
	Descricao         string          `json:"descricao,omitempty"`
	NumeroProcesso    string          `json:"numero_processo,omitempty"`
	Status            CaseStatus      `json:"status"`
	Urgencia          Urgency         `json:"urgencia"`
	ResultadoSentenca SentenceOutcome `json:"resultado_sentenca,omitempty"`
	DataAudiencia     *time.Time      `json:"data_audiencia,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CaseDetails carries the descriptive fields staff may edit freely.
// Nil pointers are left untouched.
type CaseDetails struct {
	Titulo    *string
	Area      *string
	Descricao *string
	ClientID  *string
	Urgencia  *Urgency
}

func (d CaseDetails) Empty() bool {
	return d.Titulo == nil && d.Area == nil && d.Descricao == nil && d.ClientID == nil && d.Urgencia == nil
}
