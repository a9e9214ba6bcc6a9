package model

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type DonationType string

const (
	DonationTypeMoney DonationType = "MONEY"
	DonationTypeGoods DonationType = "GOODS"
)

type Donation struct {
	ID           uuid.UUID
	DonationType DonationType
	UserID       *uuid.UUID // nil for anonymous donations
	Name         string
	Phone        string
	Email        string
	CampaignID   uuid.UUID
	Purpose      string
	Amount       float64 // 0 for goods-only donations
	Address      string
	Status       ApprovalStatus
	ReviewedByID *uuid.UUID
	ReviewedAt   *time.Time
	DonatedAt    time.Time
}

// DonationWithCampaign carries the campaign title for list views and mail copy.
type DonationWithCampaign struct {
	Donation
	CampaignTitle string
}

type DonationFilter struct {
	Status     *ApprovalStatus
	CampaignID *uuid.UUID
	UserID     *uuid.UUID
}
