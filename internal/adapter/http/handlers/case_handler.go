package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "escritorio_juridico/internal/adapter/http/dto/request"
	response "escritorio_juridico/internal/adapter/http/dto/response"
	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
	"escritorio_juridico/internal/usecase"
	"escritorio_juridico/internal/usecase/interfaces"
	"escritorio_juridico/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// HeaderStaffID carries the authenticated staff member, set by the gateway in front of the API.
const HeaderStaffID = "X-Staff-ID"

var (
	errInvalidCasePayload       = pkg.NewDomainErrorSimple("INVALID_CASE_INPUT", "Invalid case payload", http.StatusBadRequest)
	errInvalidTransitionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSITION_INPUT", "Invalid transition payload", http.StatusBadRequest)
	errMissingStaff             = pkg.NewDomainErrorSimple("MISSING_STAFF_ID", "X-Staff-ID header is required", http.StatusUnauthorized)
)

type CaseHandler struct {
	usecase usecase.ICaseUseCase
}

func NewCaseHandler(uc usecase.ICaseUseCase) *CaseHandler {
	return &CaseHandler{usecase: uc}
}

// CreateCase godoc
// @Summary  Create a case
// @Tags     cases
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateCaseRequest true "Case"
// @Success  201 {object} response.CaseResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /cases [post]
func (h *CaseHandler) CreateCase(c *gin.Context) {
	var payload request.CreateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidCasePayload)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}

	created, err := h.usecase.CreateCase(c.Request.Context(), in)
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCase(created))
}

// ListCases godoc
// @Summary  List cases
// @Tags     cases
// @Produce  json
// @Param    status    query string false "Status label"
// @Param    phase     query string false "TRIAGEM, ATENDIMENTO, POS_ATENDIMENTO or TERMINAL"
// @Param    client_id query string false "Client"
// @Param    area      query string false "Practice area"
// @Param    urgencia  query string false "Baixa, Média or Alta"
// @Success  200 {array} response.CaseResponse
// @Router   /cases [get]
func (h *CaseHandler) ListCases(c *gin.Context) {
	filter, appErr := caseFilterFromQuery(c)
	if appErr != nil {
		writeError(c, appErr)
		return
	}

	cases, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCases(cases))
}

// GetCase godoc
// @Summary  Get a case
// @Tags     cases
// @Produce  json
// @Param    id path string true "Case ID"
// @Success  200 {object} response.CaseResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /cases/{id} [get]
func (h *CaseHandler) GetCase(c *gin.Context) {
	found, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCase(found))
}

// UpdateCase godoc
// @Summary  Update descriptive fields of a case
// @Tags     cases
// @Accept   json
// @Produce  json
// @Param    id      path string                    true "Case ID"
// @Param    payload body request.UpdateCaseRequest true "Fields"
// @Success  200 {object} response.CaseResponse
// @Router   /cases/{id} [patch]
func (h *CaseHandler) UpdateCase(c *gin.Context) {
	var payload request.UpdateCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidCasePayload)
		return
	}
	details, err := payload.ToDetails()
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}

	updated, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("id"), details)
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCase(updated))
}

// DeleteCase godoc
// @Summary  Delete a case without history
// @Tags     cases
// @Param    id path string true "Case ID"
// @Success  204
// @Failure  409 {object} pkg.HTTPError
// @Router   /cases/{id} [delete]
func (h *CaseHandler) DeleteCase(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTransitions godoc
// @Summary  Current phase and valid next statuses
// @Tags     pipeline
// @Produce  json
// @Param    id path string true "Case ID"
// @Success  200 {object} response.CaseTransitionsResponse
// @Router   /cases/{id}/transitions [get]
func (h *CaseHandler) GetTransitions(c *gin.Context) {
	t, err := h.usecase.AvailableTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCaseTransitions(t))
}

// ApplyTransition godoc
// @Summary  Move a case to another status
// @Tags     pipeline
// @Accept   json
// @Produce  json
// @Param    id         path   string                    true "Case ID"
// @Param    X-Staff-ID header string                    true "Acting staff member"
// @Param    payload    body   request.TransitionRequest true "Transition"
// @Success  200 {object} response.CaseResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  422 {object} pkg.HTTPError
// @Router   /cases/{id}/transitions [post]
func (h *CaseHandler) ApplyTransition(c *gin.Context) {
	actor, ok := staffID(c)
	if !ok {
		writeError(c, errMissingStaff)
		return
	}

	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidTransitionPayload)
		return
	}
	req, err := payload.ToPipelineRequest()
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}

	updated, err := h.usecase.Transition(c.Request.Context(), c.Param("id"), usecase.TransitionCommand{
		Actor:   actor,
		Note:    payload.Note,
		Request: req,
	})
	if err != nil {
		log.WithFields(log.Fields{"component": "case.handler", "case_id": c.Param("id"), "actor": actor}).
			WithError(err).Debug("transition failed")
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCase(updated))
}

// ListMovements godoc
// @Summary  Case history
// @Tags     pipeline
// @Produce  json
// @Param    id path string true "Case ID"
// @Success  200 {array} response.CaseMovementResponse
// @Router   /cases/{id}/movements [get]
func (h *CaseHandler) ListMovements(c *gin.Context) {
	ms, err := h.usecase.ListMovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCaseMovements(ms))
}

// PhaseDashboard godoc
// @Summary  Case counts per phase
// @Tags     dashboard
// @Produce  json
// @Param    client_id query string false "Client"
// @Param    area      query string false "Practice area"
// @Param    urgencia  query string false "Urgency"
// @Success  200 {object} response.PhaseDashboardResponse
// @Router   /dashboard/phases [get]
func (h *CaseHandler) PhaseDashboard(c *gin.Context) {
	filter, appErr := caseFilterFromQuery(c)
	if appErr != nil {
		writeError(c, appErr)
		return
	}

	counts, err := h.usecase.PhaseDashboard(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapCaseError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhaseCounts(counts))
}

func staffID(c *gin.Context) (string, bool) {
	v := strings.TrimSpace(c.GetHeader(HeaderStaffID))
	return v, v != ""
}

func caseFilterFromQuery(c *gin.Context) (interfaces.CaseFilter, *pkg.AppError) {
	invalid := func(field string) *pkg.AppError {
		return pkg.NewDomainErrorSimple("INVALID_FILTER", "Invalid filter", http.StatusBadRequest).WithDetails("field", field)
	}

	f := interfaces.CaseFilter{
		ClientID: strings.TrimSpace(c.Query("client_id")),
		Area:     strings.TrimSpace(c.Query("area")),
	}
	if v := c.Query("status"); strings.TrimSpace(v) != "" {
		s, err := entities.ParseCaseStatus(v)
		if err != nil {
			return interfaces.CaseFilter{}, invalid("status")
		}
		f.Status = s
	}
	if v := c.Query("phase"); strings.TrimSpace(v) != "" {
		p, err := pipeline.ParsePhase(v)
		if err != nil {
			return interfaces.CaseFilter{}, invalid("phase")
		}
		f.Phase = p
	}
	if v := c.Query("urgencia"); strings.TrimSpace(v) != "" {
		u, err := entities.ParseUrgency(v)
		if err != nil {
			return interfaces.CaseFilter{}, invalid("urgencia")
		}
		f.Urgencia = u
	}
	return f, nil
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.WithFields(log.Fields{"component": "http", "path": c.FullPath()}).WithError(appErr.Err).Error(appErr.Message)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCaseError(err error) *pkg.AppError {
	var invalidTransition *pipeline.InvalidTransitionError
	var missingField *pipeline.MissingRequiredFieldError

	switch {
	case errors.As(err, &invalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Transition not allowed", err, http.StatusUnprocessableEntity).
			WithDetails("current", string(invalidTransition.Current)).
			WithDetails("requested", string(invalidTransition.Requested))
	case errors.As(err, &missingField):
		return pkg.NewDomainError("MISSING_REQUIRED_FIELD", "Missing required field", err, http.StatusBadRequest).
			WithDetails("field", missingField.Field)
	case errors.Is(err, entities.ErrUnknownStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATUS", "Unknown case status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownUrgency):
		return pkg.NewDomainErrorSimple("UNKNOWN_URGENCY", "Unknown urgency", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidSentenceOutcome):
		return pkg.NewDomainErrorSimple("INVALID_SENTENCE_OUTCOME", "Invalid sentence outcome", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidHearingDate):
		return pkg.NewDomainErrorSimple("INVALID_HEARING_DATE", "data_audiencia must be RFC3339", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingStaff
	case errors.Is(err, usecase.ErrInvalidCaseID), errors.Is(err, usecase.ErrInvalidCaseTitle),
		errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrEmptyCaseUpdate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInitialState):
		return pkg.NewDomainErrorSimple("INVALID_INITIAL_STATUS", "Case must start as Em Elaboração or Pendente", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCaseNotFound):
		return pkg.NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainErrorSimple("STATUS_CONFLICT", "Case status changed, reload and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrCaseHasHistory):
		return pkg.NewDomainErrorSimple("CASE_HAS_HISTORY", "Case has movements or financial transactions", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
