package entity

import (
	"time"

	"github.com/google/uuid"
)

// VerificationRecord is one append-only entry of the verification audit trail.
// Failed lookups are recorded too, with a nil ProductID.
type VerificationRecord struct {
	ID         uuid.UUID
	ProductID  *uuid.UUID
	Method     string // How the check was made, e.g. "api", "scan".
	Location   string
	DeviceInfo map[string]any
	Result     bool
	Notes      string
	CreatedAt  time.Time
}
