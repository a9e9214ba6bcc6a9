package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nurpe/donations-service/internal/model"
)

type OrganizationService struct {
	orgs OrganizationStore
}

func NewOrganizationService(orgs OrganizationStore) *OrganizationService {
	return &OrganizationService{orgs: orgs}
}

type OrganizationInput struct {
	Name       string
	WebsiteURL string
	Category   model.CampaignCategory
	ImageRef   *string
	Principal  model.Principal
}

func (s *OrganizationService) Create(ctx context.Context, input OrganizationInput) (*model.Organization, error) {
	if !input.Principal.IsStaff() {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !input.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category", ErrInvalidInput)
	}

	return s.orgs.Create(ctx, model.Organization{
		Name:       strings.TrimSpace(input.Name),
		WebsiteURL: strings.TrimSpace(input.WebsiteURL),
		Category:   input.Category,
		ImageRef:   input.ImageRef,
	})
}

func (s *OrganizationService) List(ctx context.Context, category *model.CampaignCategory) ([]model.Organization, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: invalid category", ErrInvalidInput)
	}
	return s.orgs.List(ctx, category)
}
