package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
	"escritorio_juridico/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=case_usecase.go -destination=../adapter/http/handlers/mocks/case_usecase.go -package=mocks

var (
	ErrCaseNotFound        = errors.New("case not found")
	ErrInvalidCaseID       = errors.New("invalid case id")
	ErrInvalidCaseTitle    = errors.New("invalid case title")
	ErrInvalidClientID     = errors.New("invalid client id")
	ErrInvalidInitialState = errors.New("case must start as Em Elaboração or Pendente")
	ErrInvalidActor        = errors.New("invalid actor")
	ErrEmptyCaseUpdate     = errors.New("no fields to update")
	ErrCaseHasHistory      = errors.New("case has financial transactions or movements")

	// ErrStatusConflict is the repository error, re-exported for callers of this package.
	ErrStatusConflict = interfaces.ErrStatusConflict
)

const (
	TransitionOutcomeApplied  = "applied"
	TransitionOutcomeRejected = "rejected"
	TransitionOutcomeConflict = "conflict"
)

// CreateCaseInput is the command accepted by CreateCase. Status defaults to Em Elaboração.
type CreateCaseInput struct {
	ClientID  string
	Titulo    string
	Area      string
	Descricao string
	Urgencia  entities.Urgency
	Status    entities.CaseStatus
}

// TransitionCommand is a status change requested by a staff member.
// Actor comes from the request identity and is always passed explicitly.
type TransitionCommand struct {
	Actor   string
	Note    string
	Request pipeline.TransitionRequest
}

// CaseTransitions describes where a case is and where it can go next.
type CaseTransitions struct {
	Case  entities.Case
	Phase pipeline.Phase
	Next  []entities.CaseStatus
}

// ICaseUseCase exposes the case lifecycle operations used by the HTTP layer.
//
// Every status change goes through Transition, which validates against the
// pipeline and persists with an expected-status guard.
type ICaseUseCase interface {
	CreateCase(ctx context.Context, in CreateCaseInput) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context, filter interfaces.CaseFilter) ([]entities.Case, error)
	UpdateDetails(ctx context.Context, id string, details entities.CaseDetails) (entities.Case, error)
	Transition(ctx context.Context, id string, cmd TransitionCommand) (entities.Case, error)
	AvailableTransitions(ctx context.Context, id string) (CaseTransitions, error)
	ListMovements(ctx context.Context, id string) ([]entities.CaseMovement, error)
	Delete(ctx context.Context, id string) error
	PhaseDashboard(ctx context.Context, filter interfaces.CaseFilter) (pipeline.PhaseCounts, error)
}

type CaseUseCase struct {
	repo         interfaces.ICaseRepository
	movements    interfaces.ICaseMovementRepository
	transactions interfaces.IFinancialTransactionRepository
	recorder     interfaces.ITransitionRecorder
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

// NewCaseUseCase wires the case use cases. recorder may be nil.
func NewCaseUseCase(
	repo interfaces.ICaseRepository,
	movements interfaces.ICaseMovementRepository,
	transactions interfaces.IFinancialTransactionRepository,
	recorder interfaces.ITransitionRecorder,
) *CaseUseCase {
	return &CaseUseCase{repo: repo, movements: movements, transactions: transactions, recorder: recorder}
}

func (u *CaseUseCase) CreateCase(ctx context.Context, in CreateCaseInput) (entities.Case, error) {
	title := strings.TrimSpace(in.Titulo)
	if title == "" {
		return entities.Case{}, ErrInvalidCaseTitle
	}
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Case{}, ErrInvalidClientID
	}

	status := in.Status
	if status == "" {
		status = entities.CaseStatusEmElaboracao
	}
	if !entities.InitialCaseStatus(status) {
		return entities.Case{}, ErrInvalidInitialState
	}

	urgency := in.Urgencia
	if urgency == "" {
		urgency = entities.UrgencyMedia
	}

	now := time.Now().UTC()
	c := entities.Case{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Titulo:    title,
		Area:      strings.TrimSpace(in.Area),
		Descricao: strings.TrimSpace(in.Descricao),
		Status:    status,
		Urgencia:  urgency,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.WithError(err).WithField("component", "case.usecase").Error("create case failed")
		return entities.Case{}, err
	}
	log.WithFields(log.Fields{
		"component": "case.usecase",
		"case_id":   created.ID,
		"status":    created.Status,
	}).Info("case created")
	return created, nil
}

func (u *CaseUseCase) GetByID(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if c.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}

func (u *CaseUseCase) List(ctx context.Context, filter interfaces.CaseFilter) ([]entities.Case, error) {
	return u.repo.List(ctx, filter)
}

func (u *CaseUseCase) UpdateDetails(ctx context.Context, id string, details entities.CaseDetails) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidCaseID
	}
	if details.Empty() {
		return entities.Case{}, ErrEmptyCaseUpdate
	}
	if details.Titulo != nil && strings.TrimSpace(*details.Titulo) == "" {
		return entities.Case{}, ErrInvalidCaseTitle
	}
	if details.ClientID != nil && strings.TrimSpace(*details.ClientID) == "" {
		return entities.Case{}, ErrInvalidClientID
	}

	updated, err := u.repo.UpdateDetails(ctx, id, details)
	if err != nil {
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	return updated, nil
}

// Transition validates cmd against the stored status and persists the change.
// Nothing is written when validation fails.
func (u *CaseUseCase) Transition(ctx context.Context, id string, cmd TransitionCommand) (entities.Case, error) {
	actor := strings.TrimSpace(cmd.Actor)
	if actor == "" {
		return entities.Case{}, ErrInvalidActor
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}

	logger := log.WithFields(log.Fields{
		"component": "case.usecase",
		"case_id":   current.ID,
		"actor":     actor,
		"from":      current.Status,
		"to":        cmd.Request.Target,
	})

	change, err := pipeline.Transition(current.Status, cmd.Request)
	if err != nil {
		logger.WithError(err).Warn("transition rejected")
		u.record(current.Status, cmd.Request.Target, TransitionOutcomeRejected)
		return entities.Case{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, change)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			logger.Warn("transition conflict")
			u.record(current.Status, change.To, TransitionOutcomeConflict)
		} else {
			logger.WithError(err).Error("transition persist failed")
		}
		return entities.Case{}, err
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}

	movement := entities.CaseMovement{
		ID:         uuid.NewString(),
		CaseID:     updated.ID,
		FromStatus: change.From,
		ToStatus:   change.To,
		Actor:      actor,
		Note:       strings.TrimSpace(cmd.Note),
		CreatedAt:  updated.UpdatedAt,
	}
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now().UTC()
	}
	if _, err := u.movements.Create(ctx, movement); err != nil {
		// The status is already persisted; history is best effort.
		logger.WithError(err).Error("movement record failed")
	}

	u.record(change.From, change.To, TransitionOutcomeApplied)
	logger.Info("transition applied")
	return updated, nil
}

func (u *CaseUseCase) AvailableTransitions(ctx context.Context, id string) (CaseTransitions, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return CaseTransitions{}, err
	}
	phase, err := pipeline.PhaseOf(c.Status)
	if err != nil {
		return CaseTransitions{}, err
	}
	return CaseTransitions{Case: c, Phase: phase, Next: pipeline.ValidTransitions(c.Status)}, nil
}

func (u *CaseUseCase) ListMovements(ctx context.Context, id string) ([]entities.CaseMovement, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.movements.ListByCaseID(ctx, c.ID)
}

// Delete removes a case that has no history. Cases with any movement or
// financial transaction are kept.
func (u *CaseUseCase) Delete(ctx context.Context, id string) error {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	movements, err := u.movements.ListByCaseID(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(movements) > 0 {
		return ErrCaseHasHistory
	}
	txs, err := u.transactions.ListByCaseID(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(txs) > 0 {
		return ErrCaseHasHistory
	}

	if err := u.repo.Delete(ctx, c.ID); err != nil {
		return err
	}
	log.WithFields(log.Fields{"component": "case.usecase", "case_id": c.ID}).Info("case deleted")
	return nil
}

func (u *CaseUseCase) PhaseDashboard(ctx context.Context, filter interfaces.CaseFilter) (pipeline.PhaseCounts, error) {
	cases, err := u.repo.List(ctx, filter)
	if err != nil {
		return pipeline.PhaseCounts{}, err
	}
	return pipeline.CountByPhase(cases), nil
}

func (u *CaseUseCase) record(from, to entities.CaseStatus, outcome string) {
	if u.recorder == nil {
		return
	}
	u.recorder.RecordTransition(from, to, outcome)
}
