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
)

type RequestService struct {
	requests RequestStore
	mail     mailer.Mailer
	log      zerolog.Logger
}

func NewRequestService(requests RequestStore, mail mailer.Mailer, log zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, mail: mail, log: log}
}

type SubmitRequestInput struct {
	AadhaarNumber    string
	RationCardNumber string
	AadhaarFileRef   *string
	RationCardRef    *string
	FamilyIncome     float64
	Description      string
	Principal        model.Principal
}

func (s *RequestService) Submit(ctx context.Context, input SubmitRequestInput) (*model.RecipientRequest, error) {
	aadhaar := strings.TrimSpace(input.AadhaarNumber)
	if aadhaar == "" {
		return nil, fmt.Errorf("%w: aadhaar_number is required", ErrInvalidInput)
	}
	if len(aadhaar) > 12 {
		return nil, fmt.Errorf("%w: aadhaar_number is too long", ErrInvalidInput)
	}
	if input.FamilyIncome < 0 {
		return nil, fmt.Errorf("%w: family_income cannot be negative", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	return s.requests.Create(ctx, model.RecipientRequest{
		UserID:           input.Principal.UserID,
		AadhaarNumber:    aadhaar,
		RationCardNumber: strings.TrimSpace(input.RationCardNumber),
		AadhaarFileRef:   input.AadhaarFileRef,
		RationCardRef:    input.RationCardRef,
		FamilyIncome:     round2(input.FamilyIncome),
		Description:      strings.TrimSpace(input.Description),
	})
}

func (s *RequestService) ListMine(ctx context.Context, principal model.Principal) ([]model.RecipientRequestWithContact, error) {
	userID := principal.UserID
	return s.requests.List(ctx, nil, &userID)
}

func (s *RequestService) ListAll(ctx context.Context, status *model.ApprovalStatus, principal model.Principal) ([]model.RecipientRequestWithContact, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	return s.requests.List(ctx, status, nil)
}

type RequestReviewResult struct {
	Request         model.RecipientRequestWithContact
	DeliveryWarning string
}

func (s *RequestService) Approve(ctx context.Context, requestID uuid.UUID, principal model.Principal) (*RequestReviewResult, error) {
	return s.review(ctx, requestID, model.StatusApproved, principal)
}

func (s *RequestService) Reject(ctx context.Context, requestID uuid.UUID, principal model.Principal) (*RequestReviewResult, error) {
	return s.review(ctx, requestID, model.StatusRejected, principal)
}

func (s *RequestService) review(ctx context.Context, requestID uuid.UUID, status model.ApprovalStatus, principal model.Principal) (*RequestReviewResult, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if requestID == uuid.Nil {
		return nil, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	request, err := s.requests.UpdateStatus(ctx, requestID, status, principal.UserID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipient request", ErrNotFound)
		}
		return nil, err
	}

	result := &RequestReviewResult{Request: *request}
	result.DeliveryWarning = s.notifySubmitter(*request, status)
	return result, nil
}

func (s *RequestService) notifySubmitter(request model.RecipientRequestWithContact, status model.ApprovalStatus) string {
	if request.UserEmail == "" {
		return "no email on record, notification skipped"
	}

	var subject, body string
	if status == model.StatusApproved {
		subject = mailer.SubjectRequestApproved
		body = mailer.RequestApprovedBody(request.UserName)
	} else {
		subject = mailer.SubjectRequestRejected
		body = mailer.RequestRejectedBody(request.UserName)
	}

	if err := s.mail.Send(request.UserEmail, subject, body); err != nil {
		s.log.Warn().Err(err).
			Str("request_id", request.ID.String()).
			Str("email", request.UserEmail).
			Msg("request outcome notification failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err).Error()
	}
	return ""
}
