package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/donations-service/internal/model"
)

type DonationStore interface {
	Create(ctx context.Context, donation model.Donation) (*model.Donation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.DonationWithCampaign, error)
	List(ctx context.Context, filter model.DonationFilter) ([]model.DonationWithCampaign, error)
	UpdateStatus(ctx context.Context, donationID uuid.UUID, status model.ApprovalStatus, reviewerID uuid.UUID, reviewedAt time.Time) (*model.DonationWithCampaign, error)
}

type CampaignStore interface {
	Create(ctx context.Context, campaign model.Campaign) (*model.Campaign, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error)
	List(ctx context.Context, category *model.CampaignCategory) ([]model.Campaign, error)
	Update(ctx context.Context, campaign model.Campaign) (*model.Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RequestStore interface {
	Create(ctx context.Context, request model.RecipientRequest) (*model.RecipientRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.RecipientRequestWithContact, error)
	List(ctx context.Context, status *model.ApprovalStatus, userID *uuid.UUID) ([]model.RecipientRequestWithContact, error)
	UpdateStatus(ctx context.Context, requestID uuid.UUID, status model.ApprovalStatus, reviewerID uuid.UUID, reviewedAt time.Time) (*model.RecipientRequestWithContact, error)
}

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	Upsert(ctx context.Context, profile model.Profile) (*model.Profile, error)
}

type ContactStore interface {
	Create(ctx context.Context, query model.ContactQuery) (*model.ContactQuery, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.ContactQuery, error)
	List(ctx context.Context) ([]model.ContactQuery, error)
}

type OrganizationStore interface {
	Create(ctx context.Context, org model.Organization) (*model.Organization, error)
	List(ctx context.Context, category *model.CampaignCategory) ([]model.Organization, error)
}
