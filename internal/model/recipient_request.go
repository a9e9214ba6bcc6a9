package model

import (
	"time"

	"github.com/google/uuid"
)

type RecipientRequest struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	AadhaarNumber    string
	RationCardNumber string
	AadhaarFileRef   *string // opaque references owned by external file storage
	RationCardRef    *string
	FamilyIncome     float64
	Description      string
	Status           ApprovalStatus
	ReviewedByID     *uuid.UUID
	ReviewedAt       *time.Time
	CreatedAt        time.Time
}

// RecipientRequestWithContact carries the submitter email for notifications.
type RecipientRequestWithContact struct {
	RecipientRequest
	UserName  string
	UserEmail string
}
