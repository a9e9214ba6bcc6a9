package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/mailer"
	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/repository"
)

type ExcelGenerator interface {
	Generate(report model.DonationReport) ([]byte, error)
}

type ReceiptGenerator interface {
	Generate(doc model.ReceiptDocument) ([]byte, error)
}

type DonationService struct {
	donations DonationStore
	campaigns CampaignStore
	profiles  ProfileStore
	mail      mailer.Mailer
	excel     ExcelGenerator
	receipts  ReceiptGenerator
	log       zerolog.Logger
}

func NewDonationService(
	donations DonationStore,
	campaigns CampaignStore,
	profiles ProfileStore,
	mail mailer.Mailer,
	excel ExcelGenerator,
	receipts ReceiptGenerator,
	log zerolog.Logger,
) *DonationService {
	return &DonationService{
		donations: donations,
		campaigns: campaigns,
		profiles:  profiles,
		mail:      mail,
		excel:     excel,
		receipts:  receipts,
		log:       log,
	}
}

type SubmitDonationInput struct {
	DonationType model.DonationType
	Name         string
	Phone        string
	Email        string
	CampaignID   uuid.UUID
	Purpose      string
	Amount       float64
	Address      string
	Anonymous    bool
	Principal    model.Principal
}

func (s *DonationService) Submit(ctx context.Context, input SubmitDonationInput) (*model.Donation, error) {
	switch input.DonationType {
	case model.DonationTypeMoney:
		if input.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount is required for monetary donations", ErrInvalidInput)
		}
	case model.DonationTypeGoods:
		if input.Amount < 0 {
			return nil, fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: invalid donation type", ErrInvalidInput)
	}
	if input.CampaignID == uuid.Nil {
		return nil, fmt.Errorf("%w: campaign_id is required", ErrInvalidInput)
	}

	campaign, err := s.campaigns.GetByID(ctx, input.CampaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: campaign", ErrNotFound)
		}
		return nil, err
	}

	donation := model.Donation{
		DonationType: input.DonationType,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		CampaignID:   campaign.ID,
		Purpose:      strings.TrimSpace(input.Purpose),
		Amount:       round2(input.Amount),
		Address:      strings.TrimSpace(input.Address),
	}
	if !input.Anonymous {
		userID := input.Principal.UserID
		donation.UserID = &userID
	}
	if donation.Purpose == "" {
		donation.Purpose = campaign.Description
	}
	s.fillContactDefaults(ctx, &donation, input.Principal, input.Anonymous)

	return s.donations.Create(ctx, donation)
}

// fillContactDefaults backfills missing contact fields from the submitter's
// profile, then from the token claims, then from the historical defaults.
func (s *DonationService) fillContactDefaults(ctx context.Context, donation *model.Donation, principal model.Principal, anonymous bool) {
	if !anonymous && (donation.Name == "" || donation.Email == "" || donation.Phone == "") {
		profile, err := s.profiles.GetByUserID(ctx, principal.UserID)
		if err == nil {
			if donation.Name == "" {
				donation.Name = profile.Name
			}
			if donation.Email == "" {
				donation.Email = profile.Email
			}
			if donation.Phone == "" {
				donation.Phone = profile.Phone
			}
		}
		if donation.Name == "" {
			donation.Name = principal.Name
		}
		if donation.Email == "" {
			donation.Email = principal.Email
		}
	}
	if donation.Name == "" {
		donation.Name = "Anonymous"
	}
	if donation.Phone == "" {
		donation.Phone = "Unknown"
	}
	if donation.Address == "" {
		donation.Address = "Not Provided"
	}
	if donation.Purpose == "" {
		donation.Purpose = "General Donation"
	}
}

type ReviewResult struct {
	Donation        model.DonationWithCampaign
	DeliveryWarning string
}

func (s *DonationService) Approve(ctx context.Context, donationID uuid.UUID, principal model.Principal) (*ReviewResult, error) {
	return s.review(ctx, donationID, model.StatusApproved, principal)
}

func (s *DonationService) Reject(ctx context.Context, donationID uuid.UUID, principal model.Principal) (*ReviewResult, error) {
	return s.review(ctx, donationID, model.StatusRejected, principal)
}

// review persists the transition first, then notifies. A delivery failure
// never rolls the transition back; it is reported as a warning.
func (s *DonationService) review(ctx context.Context, donationID uuid.UUID, status model.ApprovalStatus, principal model.Principal) (*ReviewResult, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if donationID == uuid.Nil {
		return nil, fmt.Errorf("%w: donation id is required", ErrInvalidInput)
	}

	donation, err := s.donations.UpdateStatus(ctx, donationID, status, principal.UserID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: donation", ErrNotFound)
		case errors.Is(err, repository.ErrNegativeTotal):
			return nil, fmt.Errorf("%w: %v", ErrInvariantViolation, err)
		default:
			return nil, err
		}
	}

	result := &ReviewResult{Donation: *donation}
	result.DeliveryWarning = s.notifyDonor(*donation, status)
	return result, nil
}

func (s *DonationService) notifyDonor(donation model.DonationWithCampaign, status model.ApprovalStatus) string {
	if donation.Email == "" {
		return "no email on record, notification skipped"
	}

	var subject, body string
	if status == model.StatusApproved {
		subject = mailer.SubjectDonationApproved
		body = mailer.DonationApprovedBody(donation.Name, donation.CampaignTitle)
	} else {
		subject = mailer.SubjectDonationRejected
		body = mailer.DonationRejectedBody(donation.Name, donation.CampaignTitle)
	}

	if err := s.mail.Send(donation.Email, subject, body); err != nil {
		s.log.Warn().Err(err).
			Str("donation_id", donation.ID.String()).
			Str("email", donation.Email).
			Msg("donation outcome notification failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err).Error()
	}
	return ""
}

type BulkReviewItem struct {
	DonationID      uuid.UUID
	Err             string
	DeliveryWarning string
}

// BulkReview applies the same transition to each donation independently.
// One failed item never blocks the rest.
func (s *DonationService) BulkReview(ctx context.Context, donationIDs []uuid.UUID, status model.ApprovalStatus, principal model.Principal) ([]BulkReviewItem, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if len(donationIDs) == 0 {
		return nil, fmt.Errorf("%w: donation ids are required", ErrInvalidInput)
	}
	if status != model.StatusApproved && status != model.StatusRejected {
		return nil, fmt.Errorf("%w: invalid target status", ErrInvalidInput)
	}

	items := make([]BulkReviewItem, 0, len(donationIDs))
	for _, id := range donationIDs {
		item := BulkReviewItem{DonationID: id}
		result, err := s.review(ctx, id, status, principal)
		if err != nil {
			item.Err = err.Error()
		} else {
			item.DeliveryWarning = result.DeliveryWarning
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *DonationService) ListMine(ctx context.Context, principal model.Principal) ([]model.DonationWithCampaign, error) {
	userID := principal.UserID
	return s.donations.List(ctx, model.DonationFilter{UserID: &userID})
}

func (s *DonationService) ListApproved(ctx context.Context) ([]model.DonationWithCampaign, error) {
	approved := model.StatusApproved
	return s.donations.List(ctx, model.DonationFilter{Status: &approved})
}

func (s *DonationService) ListAll(ctx context.Context, filter model.DonationFilter, principal model.Principal) ([]model.DonationWithCampaign, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	return s.donations.List(ctx, filter)
}

// PendingQueue is the admin approval panel: donations awaiting review.
func (s *DonationService) PendingQueue(ctx context.Context, principal model.Principal) ([]model.DonationWithCampaign, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	pending := model.StatusPending
	return s.donations.List(ctx, model.DonationFilter{Status: &pending})
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *DonationService) ExportReport(ctx context.Context, status *model.ApprovalStatus, principal model.Principal) (*ExportResult, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	donations, err := s.donations.List(ctx, model.DonationFilter{Status: status})
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	report := buildDonationReport(campaigns, donations, status)

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: buildReportFileName(status, report.GeneratedAt),
		Content:  content,
	}, nil
}

// Receipt renders a PDF receipt for an approved donation. Available to the
// donation's owner and to staff.
func (s *DonationService) Receipt(ctx context.Context, donationID uuid.UUID, principal model.Principal) (*ExportResult, error) {
	donation, err := s.donations.GetByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: donation", ErrNotFound)
		}
		return nil, err
	}

	owner := donation.UserID != nil && *donation.UserID == principal.UserID
	if !owner && !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if donation.Status != model.StatusApproved {
		return nil, fmt.Errorf("%w: receipt is available for approved donations only", ErrInvalidInput)
	}

	campaign, err := s.campaigns.GetByID(ctx, donation.CampaignID)
	if err != nil {
		return nil, err
	}

	content, err := s.receipts.Generate(model.ReceiptDocument{
		Donation: *donation,
		Campaign: *campaign,
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("donation-receipt-%s.pdf", donation.ID),
		Content:  content,
	}, nil
}

func buildDonationReport(campaigns []model.Campaign, donations []model.DonationWithCampaign, status *model.ApprovalStatus) model.DonationReport {
	byCampaign := make(map[uuid.UUID][]model.DonationWithCampaign)
	for _, donation := range donations {
		byCampaign[donation.CampaignID] = append(byCampaign[donation.CampaignID], donation)
	}

	report := model.DonationReport{
		Status:      status,
		GeneratedAt: time.Now().UTC(),
	}
	for _, campaign := range campaigns {
		rows, ok := byCampaign[campaign.ID]
		if !ok {
			continue
		}
		subtotal := 0.0
		for _, row := range rows {
			subtotal += row.Amount
		}
		report.Groups = append(report.Groups, model.CampaignGroup{
			Campaign:  campaign,
			Donations: rows,
			Subtotal:  round2(subtotal),
		})
		report.GrandTotal += subtotal
	}
	report.GrandTotal = round2(report.GrandTotal)
	return report
}

func buildReportFileName(status *model.ApprovalStatus, at time.Time) string {
	suffix := "all"
	if status != nil {
		suffix = strings.ToLower(string(*status))
	}
	return fmt.Sprintf("donations-%s-%s.xlsx", suffix, at.Format("20060102"))
}

func round2(value float64) float64 {
	if value >= 0 {
		return float64(int64(value*100+0.5)) / 100
	}
	return float64(int64(value*100-0.5)) / 100
}
