package interfaces

import (
	"context"
	"errors"

	"escritorio_juridico/internal/domain/entities"
	"escritorio_juridico/internal/domain/pipeline"
)

//go:generate mockgen -source=case_repository_interface.go -destination=mocks/case_repository_interface.go -package=mock_interfaces

// ErrStatusConflict is returned by UpdateStatus when the stored status no
// longer matches the status the transition was validated against.
var ErrStatusConflict = errors.New("case status changed concurrently")

// CaseFilter narrows List results. Zero values are ignored.
type CaseFilter struct {
	Status   entities.CaseStatus
	Phase    pipeline.Phase
	ClientID string
	Area     string
	Urgencia entities.Urgency
}

// ICaseRepository abstracts persistence for Case.
//
// Lookups return a zero Case (empty ID) when nothing is stored under the id,
// matching the other repositories of this service.
type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	List(ctx context.Context, filter CaseFilter) ([]entities.Case, error)
	UpdateStatus(ctx context.Context, id string, expected entities.CaseStatus, change pipeline.StatusChange) (entities.Case, error)
	UpdateDetails(ctx context.Context, id string, details entities.CaseDetails) (entities.Case, error)
	Delete(ctx context.Context, id string) error
}
