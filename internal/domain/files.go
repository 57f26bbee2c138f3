package domain

import (
	"time"

	"github.com/google/uuid"
)

type File struct {
	Name          string     `db:"name"           json:"name"`
	BatchID       uuid.UUID  `db:"batch_id"       json:"batch_id"`
	Status        FileStatus `db:"status"         json:"status"`
	PaymentsCount int        `db:"payments_count" json:"payments_count"`
	InvalidLines  int        `db:"invalid_lines"  json:"invalid_lines"`
	Duplicates    int        `db:"duplicates"     json:"duplicates"`
	ErrorMessage  string     `db:"error_message"  json:"error_message,omitempty"`
	ProcessedAt   *time.Time `db:"processed_at"   json:"processed_at,omitempty"`
}
