package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/repository"
)

// memStore is an in-memory stand-in for the repositories. It mirrors the
// derived-total semantics: every status transition recomputes the campaign's
// collected amount from its approved donations.
type memStore struct {
	campaigns []*model.Campaign
	donations []*model.Donation
	requests  []*model.RecipientRequestWithContact
	profiles  []*model.Profile
	contacts  []*model.ContactQuery
	orgs      []*model.Organization
}

func newMemStore() *memStore {
	return &memStore{}
}

func (s *memStore) addCampaign(title string, goal float64) *model.Campaign {
	campaign := &model.Campaign{
		ID:          uuid.New(),
		Title:       title,
		Description: "test campaign",
		Category:    model.CategoryEducation,
		GoalAmount:  goal,
		CreatedByID: uuid.New(),
		CreatedAt:   time.Now().UTC(),
	}
	s.campaigns = append(s.campaigns, campaign)
	return campaign
}

func (s *memStore) addDonation(campaignID uuid.UUID, email string, amount float64) *model.Donation {
	donation := &model.Donation{
		ID:           uuid.New(),
		DonationType: model.DonationTypeMoney,
		Name:         "Test Donor",
		Phone:        "1234567890",
		Email:        email,
		CampaignID:   campaignID,
		Purpose:      "General Donation",
		Amount:       amount,
		Address:      "Not Provided",
		Status:       model.StatusPending,
		DonatedAt:    time.Now().UTC(),
	}
	s.donations = append(s.donations, donation)
	return donation
}

func (s *memStore) campaignByID(id uuid.UUID) *model.Campaign {
	for _, campaign := range s.campaigns {
		if campaign.ID == id {
			return campaign
		}
	}
	return nil
}

func (s *memStore) withCampaign(donation model.Donation) model.DonationWithCampaign {
	title := ""
	if campaign := s.campaignByID(donation.CampaignID); campaign != nil {
		title = campaign.Title
	}
	return model.DonationWithCampaign{Donation: donation, CampaignTitle: title}
}

func (s *memStore) recomputeTotal(campaignID uuid.UUID) float64 {
	total := 0.0
	for _, donation := range s.donations {
		if donation.CampaignID == campaignID && donation.Status == model.StatusApproved {
			total += donation.Amount
		}
	}
	if campaign := s.campaignByID(campaignID); campaign != nil {
		campaign.CollectedAmount = total
	}
	return total
}

// DonationStore

func (s *memStore) Create(ctx context.Context, donation model.Donation) (*model.Donation, error) {
	donation.ID = uuid.New()
	donation.Status = model.StatusPending
	donation.DonatedAt = time.Now().UTC()
	saved := donation
	s.donations = append(s.donations, &saved)
	out := saved
	return &out, nil
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*model.DonationWithCampaign, error) {
	for _, donation := range s.donations {
		if donation.ID == id {
			row := s.withCampaign(*donation)
			return &row, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memStore) List(ctx context.Context, filter model.DonationFilter) ([]model.DonationWithCampaign, error) {
	var rows []model.DonationWithCampaign
	for _, donation := range s.donations {
		if filter.Status != nil && donation.Status != *filter.Status {
			continue
		}
		if filter.CampaignID != nil && donation.CampaignID != *filter.CampaignID {
			continue
		}
		if filter.UserID != nil && (donation.UserID == nil || *donation.UserID != *filter.UserID) {
			continue
		}
		rows = append(rows, s.withCampaign(*donation))
	}
	return rows, nil
}

func (s *memStore) UpdateStatus(ctx context.Context, donationID uuid.UUID, status model.ApprovalStatus, reviewerID uuid.UUID, reviewedAt time.Time) (*model.DonationWithCampaign, error) {
	for _, donation := range s.donations {
		if donation.ID != donationID {
			continue
		}
		donation.Status = status
		donation.ReviewedByID = &reviewerID
		donation.ReviewedAt = &reviewedAt
		if total := s.recomputeTotal(donation.CampaignID); total < 0 {
			return nil, fmt.Errorf("%w: total %.2f", repository.ErrNegativeTotal, total)
		}
		row := s.withCampaign(*donation)
		return &row, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// campaignStore wraps memStore so both store interfaces can be satisfied
// despite the clashing method sets.
type campaignStore struct {
	mem *memStore
}

func (s campaignStore) Create(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	campaign.ID = uuid.New()
	campaign.CreatedAt = time.Now().UTC()
	saved := campaign
	s.mem.campaigns = append(s.mem.campaigns, &saved)
	out := saved
	return &out, nil
}

func (s campaignStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	if campaign := s.mem.campaignByID(id); campaign != nil {
		out := *campaign
		return &out, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s campaignStore) List(ctx context.Context, category *model.CampaignCategory) ([]model.Campaign, error) {
	var campaigns []model.Campaign
	for _, campaign := range s.mem.campaigns {
		if category != nil && campaign.Category != *category {
			continue
		}
		campaigns = append(campaigns, *campaign)
	}
	return campaigns, nil
}

func (s campaignStore) Update(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	existing := s.mem.campaignByID(campaign.ID)
	if existing == nil {
		return nil, gorm.ErrRecordNotFound
	}
	existing.Title = campaign.Title
	existing.Description = campaign.Description
	existing.Category = campaign.Category
	existing.GoalAmount = campaign.GoalAmount
	out := *existing
	return &out, nil
}

func (s campaignStore) Delete(ctx context.Context, id uuid.UUID) error {
	for _, donation := range s.mem.donations {
		if donation.CampaignID == id {
			return repository.ErrHasDonations
		}
	}
	for i, campaign := range s.mem.campaigns {
		if campaign.ID == id {
			s.mem.campaigns = append(s.mem.campaigns[:i], s.mem.campaigns[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// profileStore

type profileStore struct {
	mem *memStore
}

func (s profileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	for _, profile := range s.mem.profiles {
		if profile.UserID == userID {
			out := *profile
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s profileStore) Upsert(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	for _, existing := range s.mem.profiles {
		if existing.UserID == profile.UserID {
			profile.ID = existing.ID
			*existing = profile
			out := profile
			return &out, nil
		}
	}
	profile.ID = uuid.New()
	saved := profile
	s.mem.profiles = append(s.mem.profiles, &saved)
	out := saved
	return &out, nil
}

// requestStore

type requestStore struct {
	mem *memStore
}

func (s requestStore) Create(ctx context.Context, request model.RecipientRequest) (*model.RecipientRequest, error) {
	request.ID = uuid.New()
	request.Status = model.StatusPending
	request.CreatedAt = time.Now().UTC()
	row := &model.RecipientRequestWithContact{RecipientRequest: request}
	for _, profile := range s.mem.profiles {
		if profile.UserID == request.UserID {
			row.UserName = profile.Name
			row.UserEmail = profile.Email
		}
	}
	s.mem.requests = append(s.mem.requests, row)
	out := row.RecipientRequest
	return &out, nil
}

func (s requestStore) GetByID(ctx context.Context, id uuid.UUID) (*model.RecipientRequestWithContact, error) {
	for _, request := range s.mem.requests {
		if request.ID == id {
			out := *request
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s requestStore) List(ctx context.Context, status *model.ApprovalStatus, userID *uuid.UUID) ([]model.RecipientRequestWithContact, error) {
	var rows []model.RecipientRequestWithContact
	for _, request := range s.mem.requests {
		if status != nil && request.Status != *status {
			continue
		}
		if userID != nil && request.UserID != *userID {
			continue
		}
		rows = append(rows, *request)
	}
	return rows, nil
}

func (s requestStore) UpdateStatus(ctx context.Context, requestID uuid.UUID, status model.ApprovalStatus, reviewerID uuid.UUID, reviewedAt time.Time) (*model.RecipientRequestWithContact, error) {
	for _, request := range s.mem.requests {
		if request.ID == requestID {
			request.Status = status
			request.ReviewedByID = &reviewerID
			request.ReviewedAt = &reviewedAt
			out := *request
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// contactStore

type contactStore struct {
	mem *memStore
}

func (s contactStore) Create(ctx context.Context, query model.ContactQuery) (*model.ContactQuery, error) {
	query.ID = uuid.New()
	query.SentAt = time.Now().UTC()
	saved := query
	s.mem.contacts = append(s.mem.contacts, &saved)
	out := saved
	return &out, nil
}

func (s contactStore) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactQuery, error) {
	for _, query := range s.mem.contacts {
		if query.ID == id {
			out := *query
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s contactStore) List(ctx context.Context) ([]model.ContactQuery, error) {
	var queries []model.ContactQuery
	for _, query := range s.mem.contacts {
		queries = append(queries, *query)
	}
	return queries, nil
}

// orgStore

type orgStore struct {
	mem *memStore
}

func (s orgStore) Create(ctx context.Context, org model.Organization) (*model.Organization, error) {
	org.ID = uuid.New()
	saved := org
	s.mem.orgs = append(s.mem.orgs, &saved)
	out := saved
	return &out, nil
}

func (s orgStore) List(ctx context.Context, category *model.CampaignCategory) ([]model.Organization, error) {
	var orgs []model.Organization
	for _, org := range s.mem.orgs {
		if category != nil && org.Category != *category {
			continue
		}
		orgs = append(orgs, *org)
	}
	return orgs, nil
}

// fakeMailer records sends and can be told to fail for specific recipients.

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent   []sentMail
	failTo map[string]bool
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{failTo: map[string]bool{}}
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.failTo[to] {
		return fmt.Errorf("smtp send to %s: connection refused", to)
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

// stub generators

type stubExcel struct{}

func (stubExcel) Generate(report model.DonationReport) ([]byte, error) {
	return []byte("xlsx"), nil
}

type stubReceipts struct{}

func (stubReceipts) Generate(doc model.ReceiptDocument) ([]byte, error) {
	return []byte("pdf"), nil
}

func staffPrincipal() model.Principal {
	return model.Principal{
		UserID: uuid.New(),
		Name:   "Admin",
		Email:  "admin@example.com",
		Role:   model.RoleAdmin,
		Staff:  true,
	}
}

func donorPrincipal() model.Principal {
	return model.Principal{
		UserID: uuid.New(),
		Name:   "Donor",
		Email:  "donor@example.com",
		Role:   model.RoleDonor,
	}
}
