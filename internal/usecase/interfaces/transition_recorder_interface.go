package interfaces

import "escritorio_juridico/internal/domain/entities"

//go:generate mockgen -source=transition_recorder_interface.go -destination=mocks/transition_recorder_interface.go -package=mock_interfaces

// ITransitionRecorder observes transition attempts (metrics).
type ITransitionRecorder interface {
	RecordTransition(from, to entities.CaseStatus, outcome string)
}
