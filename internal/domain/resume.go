package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owning named resumes.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Resume is one named resume record scoped to a user. Data holds the full
// serialized document including its presentation settings; Template is a
// denormalized copy of settings.template kept for cheap list views.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Data      []byte    `json:"data"`
	Template  string    `json:"template"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResumeSummary is the list-view projection of a resume (no document body).
type ResumeSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuditEntry records one mutating action for the audit log.
type AuditEntry struct {
	UserID    *uuid.UUID
	Action    string
	Details   string
	IPAddress string
	CreatedAt time.Time
}
