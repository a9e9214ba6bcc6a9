package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/mailer"
	"github.com/nurpe/donations-service/internal/model"
)

type ContactService struct {
	contacts ContactStore
	mail     mailer.Mailer
	log      zerolog.Logger
}

func NewContactService(contacts ContactStore, mail mailer.Mailer, log zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, mail: mail, log: log}
}

type SubmitContactInput struct {
	Subject   string
	Message   string
	Principal model.Principal
}

func (s *ContactService) Submit(ctx context.Context, input SubmitContactInput) (*model.ContactQuery, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	return s.contacts.Create(ctx, model.ContactQuery{
		UserID:  input.Principal.UserID,
		Name:    input.Principal.Name,
		Email:   input.Principal.Email,
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	})
}

func (s *ContactService) List(ctx context.Context, principal model.Principal) ([]model.ContactQuery, error) {
	if !principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	return s.contacts.List(ctx)
}

type ReplyInput struct {
	QueryID   uuid.UUID
	Subject   string
	Message   string
	Principal model.Principal
}

// Reply mails the submitter directly. Replies are not persisted; the query
// log stays append-only.
func (s *ContactService) Reply(ctx context.Context, input ReplyInput) error {
	if !input.Principal.IsStaff() {
		return ErrPermissionDenied
	}
	if strings.TrimSpace(input.Message) == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	query, err := s.contacts.GetByID(ctx, input.QueryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: contact query", ErrNotFound)
		}
		return err
	}
	if query.Email == "" {
		return fmt.Errorf("%w: query has no email on record", ErrInvalidInput)
	}

	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		subject = "Re: " + query.Subject
	}

	if err := s.mail.Send(query.Email, subject, input.Message); err != nil {
		s.log.Warn().Err(err).
			Str("query_id", query.ID.String()).
			Msg("contact reply delivery failed")
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}
