package pipeline

import "escritorio_juridico/internal/domain/entities"

// PhaseCounts is the dashboard breakdown. Terminal cases are counted apart
// and never fall into the three working buckets.
type PhaseCounts struct {
	Triagem        int `json:"TRIAGEM"`
	Atendimento    int `json:"ATENDIMENTO"`
	PosAtendimento int `json:"POS_ATENDIMENTO"`
	Terminal       int `json:"TERMINAL"`
	Unknown        int `json:"UNKNOWN,omitempty"`
}

// CountByPhase counts cases per phase using PhaseOf only.
func CountByPhase(cases []entities.Case) PhaseCounts {
	var out PhaseCounts
	for _, c := range cases {
		p, err := PhaseOf(c.Status)
		if err != nil {
			out.Unknown++
			continue
		}
		switch p {
		case PhaseTriagem:
			out.Triagem++
		case PhaseAtendimento:
			out.Atendimento++
		case PhasePosAtendimento:
			out.PosAtendimento++
		case PhaseTerminal:
			out.Terminal++
		}
	}
	return out
}

// Total returns the number of counted cases, terminal ones included.
func (c PhaseCounts) Total() int {
	return c.Triagem + c.Atendimento + c.PosAtendimento + c.Terminal + c.Unknown
}
