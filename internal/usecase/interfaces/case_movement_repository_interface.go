package interfaces

import (
	"context"

	"escritorio_juridico/internal/domain/entities"
)

//go:generate mockgen -source=case_movement_repository_interface.go -destination=mocks/case_movement_repository_interface.go -package=mock_interfaces

// ICaseMovementRepository stores the case history written on every transition.
type ICaseMovementRepository interface {
	Create(ctx context.Context, movement entities.CaseMovement) (entities.CaseMovement, error)
	ListByCaseID(ctx context.Context, caseID string) ([]entities.CaseMovement, error)
}
