package request

import (
	"errors"
	"strings"
	"time"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
	"escritorio_juridico/internal/usecase"
)

var (
	ErrInvalidHearingDate = errors.New("data_audiencia must be RFC3339")
)

type CreateCaseRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	Titulo    string `json:"titulo" binding:"required"`
	Area      string `json:"area"`
	Descricao string `json:"descricao"`
	Urgencia  string `json:"urgencia"`
	Status    string `json:"status"`
}

// ToInput parses the optional enum fields. Blank values keep the use case defaults.
func (r CreateCaseRequest) ToInput() (usecase.CreateCaseInput, error) {
	in := usecase.CreateCaseInput{
		ClientID:  r.ClientID,
		Titulo:    r.Titulo,
		Area:      r.Area,
		Descricao: r.Descricao,
	}
	if strings.TrimSpace(r.Urgencia) != "" {
		u, err := entities.ParseUrgency(r.Urgencia)
		if err != nil {
			return usecase.CreateCaseInput{}, err
		}
		in.Urgencia = u
	}
	if strings.TrimSpace(r.Status) != "" {
		s, err := entities.ParseCaseStatus(r.Status)
		if err != nil {
			return usecase.CreateCaseInput{}, err
		}
		in.Status = s
	}
	return in, nil
}

// UpdateCaseRequest is a partial update; absent fields are left unchanged.
// Status is not accepted here, see TransitionRequest.
type UpdateCaseRequest struct {
	ClientID  *string `json:"client_id"`
	Titulo    *string `json:"titulo"`
	Area      *string `json:"area"`
	Descricao *string `json:"descricao"`
	Urgencia  *string `json:"urgencia"`
}

func (r UpdateCaseRequest) ToDetails() (entities.CaseDetails, error) {
	d := entities.CaseDetails{
		Titulo:    r.Titulo,
		Area:      r.Area,
		Descricao: r.Descricao,
		ClientID:  r.ClientID,
	}
	if r.Urgencia != nil {
		u, err := entities.ParseUrgency(*r.Urgencia)
		if err != nil {
			return entities.CaseDetails{}, err
		}
		d.Urgencia = &u
	}
	return d, nil
}

type TransitionRequest struct {
	Status            string `json:"status" binding:"required"`
	NumeroProcesso    string `json:"numero_processo"`
	ResultadoSentenca string `json:"resultado_sentenca"`
	DataAudiencia     string `json:"data_audiencia"`
	Note              string `json:"note"`
}

func (r TransitionRequest) ToPipelineRequest() (pipeline.TransitionRequest, error) {
	target, err := entities.ParseCaseStatus(r.Status)
	if err != nil {
		return pipeline.TransitionRequest{}, err
	}
	req := pipeline.TransitionRequest{
		Target:            target,
		NumeroProcesso:    r.NumeroProcesso,
		ResultadoSentenca: r.ResultadoSentenca,
	}
	if v := strings.TrimSpace(r.DataAudiencia); v != "" {
		d, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return pipeline.TransitionRequest{}, ErrInvalidHearingDate
		}
		req.DataAudiencia = &d
	}
	return req, nil
}
