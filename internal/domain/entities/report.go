package entities

import (
	"github.com/google/uuid"

	shared "github.com/whiteelite/narrow/pkg/shared/domain/entities"
)

// Report is the outcome of one dispatch: the lines the operation
// reported, under a fresh identity.
type Report struct {
	shared.Entity

	ID    uuid.UUID
	Lines []string
}

func NewReport(lines []string) Report {
	return Report{ID: uuid.New(), Lines: lines}
}
