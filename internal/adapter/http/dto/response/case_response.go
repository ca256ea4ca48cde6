package response

import (
	"time"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
	"escritorio_juridico/internal/usecase"
)

type CaseResponse struct {
	ID                string     `json:"id"`
	ClientID          string     `json:"client_id"`
	Titulo            string     `json:"titulo"`
	Area              string     `json:"area"`
	Descricao         string     `json:"descricao,omitempty"`
	NumeroProcesso    string     `json:"numero_processo,omitempty"`
	Status            string     `json:"status"`
	Phase             string     `json:"phase"`
	Urgencia          string     `json:"urgencia"`
	ResultadoSentenca string     `json:"resultado_sentenca,omitempty"`
	DataAudiencia     *time.Time `json:"data_audiencia,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// FromCase derives Phase from the status; unknown statuses get an empty phase.
func FromCase(c entities.Case) CaseResponse {
	phase, _ := pipeline.PhaseOf(c.Status)
	return CaseResponse{
		ID:                c.ID,
		ClientID:          c.ClientID,
		Titulo:            c.Titulo,
		Area:              c.Area,
		Descricao:         c.Descricao,
		NumeroProcesso:    c.NumeroProcesso,
		Status:            string(c.Status),
		Phase:             string(phase),
		Urgencia:          string(c.Urgencia),
		ResultadoSentenca: string(c.ResultadoSentenca),
		DataAudiencia:     c.DataAudiencia,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromCases(cases []entities.Case) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, FromCase(c))
	}
	return out
}

type CaseTransitionsResponse struct {
	CaseID       string   `json:"case_id"`
	Status       string   `json:"status"`
	Phase        string   `json:"phase"`
	NextStatuses []string `json:"next_statuses"`
}

func FromCaseTransitions(t usecase.CaseTransitions) CaseTransitionsResponse {
	next := make([]string, 0, len(t.Next))
	for _, s := range t.Next {
		next = append(next, string(s))
	}
	return CaseTransitionsResponse{
		CaseID:       t.Case.ID,
		Status:       string(t.Case.Status),
		Phase:        string(t.Phase),
		NextStatuses: next,
	}
}

type CaseMovementResponse struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"case_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Actor      string    `json:"actor"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromCaseMovements(ms []entities.CaseMovement) []CaseMovementResponse {
	out := make([]CaseMovementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, CaseMovementResponse{
			ID:         m.ID,
			CaseID:     m.CaseID,
			FromStatus: string(m.FromStatus),
			ToStatus:   string(m.ToStatus),
			Actor:      m.Actor,
			Note:       m.Note,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out
}

type PhaseDashboardResponse struct {
	Triagem        int `json:"TRIAGEM"`
	Atendimento    int `json:"ATENDIMENTO"`
	PosAtendimento int `json:"POS_ATENDIMENTO"`
	Terminal       int `json:"TERMINAL"`
	Unknown        int `json:"UNKNOWN,omitempty"`
	Total          int `json:"total"`
}

func FromPhaseCounts(c pipeline.PhaseCounts) PhaseDashboardResponse {
	return PhaseDashboardResponse{
		Triagem:        c.Triagem,
		Atendimento:    c.Atendimento,
		PosAtendimento: c.PosAtendimento,
		Terminal:       c.Terminal,
		Unknown:        c.Unknown,
		Total:          c.Total(),
	}
}
