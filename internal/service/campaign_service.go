package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
	"github.com/nurpe/donations-service/internal/repository"
)

type CampaignService struct {
	campaigns CampaignStore
}

func NewCampaignService(campaigns CampaignStore) *CampaignService {
	return &CampaignService{campaigns: campaigns}
}

type CampaignInput struct {
	Title       string
	Description string
	Category    model.CampaignCategory
	GoalAmount  float64
	Principal   model.Principal
}

func (s *CampaignService) Create(ctx context.Context, input CampaignInput) (*model.Campaign, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}

	return s.campaigns.Create(ctx, model.Campaign{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		GoalAmount:  round2(input.GoalAmount),
		CreatedByID: input.Principal.UserID,
	})
}

func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, input CampaignInput) (*model.Campaign, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if err := validateCampaignInput(input); err != nil {
		return nil, err
	}

	updated, err := s.campaigns.Update(ctx, model.Campaign{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		GoalAmount:  round2(input.GoalAmount),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: campaign", ErrNotFound)
		}
		return nil, err
	}
	return updated, nil
}

// Delete refuses to remove a campaign that already has donations.
func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID, principal model.Principal) error {
	if !principal.IsStaff() {
		return ErrPermissionDenied
	}

	err := s.campaigns.Delete(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrHasDonations):
		return fmt.Errorf("%w: donations already exist for this campaign", ErrConflict)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: campaign", ErrNotFound)
	default:
		return err
	}
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: campaign", ErrNotFound)
		}
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) List(ctx context.Context, category *model.CampaignCategory) ([]model.Campaign, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: invalid category", ErrInvalidInput)
	}
	return s.campaigns.List(ctx, category)
}

func validateCampaignInput(input CampaignInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if !input.Category.Valid() {
		return fmt.Errorf("%w: invalid category", ErrInvalidInput)
	}
	if input.GoalAmount <= 0 {
		return fmt.Errorf("%w: goal_amount must be positive", ErrInvalidInput)
	}
	return nil
}
