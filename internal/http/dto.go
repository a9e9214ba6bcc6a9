package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/donations-service/internal/model"
)

type campaignResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	GoalAmount      float64   `json:"goal_amount"`
	CollectedAmount float64   `json:"collected_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

func toCampaignResponse(campaign model.Campaign) campaignResponse {
	return campaignResponse{
		ID:              campaign.ID,
		Title:           campaign.Title,
		Description:     campaign.Description,
		Category:        string(campaign.Category),
		GoalAmount:      campaign.GoalAmount,
		CollectedAmount: campaign.CollectedAmount,
		CreatedAt:       campaign.CreatedAt,
	}
}

type donationResponse struct {
	ID            uuid.UUID  `json:"id"`
	DonationType  string     `json:"donation_type"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	CampaignID    uuid.UUID  `json:"campaign_id"`
	CampaignTitle string     `json:"campaign_title,omitempty"`
	Purpose       string     `json:"purpose"`
	Amount        float64    `json:"amount"`
	Address       string     `json:"address"`
	Status        string     `json:"status"`
	DonatedAt     time.Time  `json:"donated_at"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
}

func toDonationResponse(donation model.DonationWithCampaign) donationResponse {
	return donationResponse{
		ID:            donation.ID,
		DonationType:  string(donation.DonationType),
		Name:          donation.Name,
		Email:         donation.Email,
		Phone:         donation.Phone,
		CampaignID:    donation.CampaignID,
		CampaignTitle: donation.CampaignTitle,
		Purpose:       donation.Purpose,
		Amount:        donation.Amount,
		Address:       donation.Address,
		Status:        string(donation.Status),
		DonatedAt:     donation.DonatedAt,
		ReviewedAt:    donation.ReviewedAt,
	}
}

func toDonationResponses(donations []model.DonationWithCampaign) []donationResponse {
	responses := make([]donationResponse, 0, len(donations))
	for _, donation := range donations {
		responses = append(responses, toDonationResponse(donation))
	}
	return responses
}

type requestResponse struct {
	ID               uuid.UUID  `json:"id"`
	AadhaarNumber    string     `json:"aadhaar_number"`
	RationCardNumber string     `json:"ration_card_number"`
	AadhaarFileRef   *string    `json:"aadhaar_file_ref,omitempty"`
	RationCardRef    *string    `json:"ration_card_ref,omitempty"`
	FamilyIncome     float64    `json:"family_income"`
	Description      string     `json:"description"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
}

func toRequestResponse(request model.RecipientRequestWithContact) requestResponse {
	return requestResponse{
		ID:               request.ID,
		AadhaarNumber:    request.AadhaarNumber,
		RationCardNumber: request.RationCardNumber,
		AadhaarFileRef:   request.AadhaarFileRef,
		RationCardRef:    request.RationCardRef,
		FamilyIncome:     request.FamilyIncome,
		Description:      request.Description,
		Status:           string(request.Status),
		CreatedAt:        request.CreatedAt,
		ReviewedAt:       request.ReviewedAt,
	}
}

func toRequestResponses(requests []model.RecipientRequestWithContact) []requestResponse {
	responses := make([]requestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toRequestResponse(request))
	}
	return responses
}

type profileResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Gender  string    `json:"gender"`
	Phone   string    `json:"phone"`
	Address string    `json:"address"`
}

func toProfileResponse(profile model.Profile) profileResponse {
	return profileResponse{
		UserID:  profile.UserID,
		Name:    profile.Name,
		Email:   profile.Email,
		Role:    string(profile.Role),
		Gender:  string(profile.Gender),
		Phone:   profile.Phone,
		Address: profile.Address,
	}
}

type contactResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

func toContactResponse(query model.ContactQuery) contactResponse {
	return contactResponse{
		ID:      query.ID,
		Name:    query.Name,
		Email:   query.Email,
		Subject: query.Subject,
		Message: query.Message,
		SentAt:  query.SentAt,
	}
}

type organizationResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	WebsiteURL string    `json:"website_url"`
	Category   string    `json:"category"`
	ImageRef   *string   `json:"image_ref,omitempty"`
}

func toOrganizationResponse(org model.Organization) organizationResponse {
	return organizationResponse{
		ID:         org.ID,
		Name:       org.Name,
		WebsiteURL: org.WebsiteURL,
		Category:   string(org.Category),
		ImageRef:   org.ImageRef,
	}
}
