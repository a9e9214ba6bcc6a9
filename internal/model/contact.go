package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactQuery is append-only; admin replies go out by mail and are not stored.
type ContactQuery struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Name    string
	Email   string
	Subject string
	Message string
	SentAt  time.Time
}
