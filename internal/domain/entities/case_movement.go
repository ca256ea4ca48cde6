package entities

import "time"

// CaseMovement is one entry of a case history (movimentação).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (case_id-index): case_id
type CaseMovement struct {
	ID         string     `json:"id"`
	CaseID     string     `json:"case_id"`
	FromStatus CaseStatus `json:"from_status"`
	ToStatus   CaseStatus `json:"to_status"`
	Actor      string     `json:"actor"`
	Note       string     `json:"note,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
