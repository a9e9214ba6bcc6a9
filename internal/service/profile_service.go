package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

type ProfileService struct {
	profiles ProfileStore
}

func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// GetOrCreate returns the caller's profile, creating a default donor profile
// on first access.
func (s *ProfileService) GetOrCreate(ctx context.Context, principal model.Principal) (*model.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, principal.UserID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := principal.Role
	if !role.Valid() {
		role = model.RoleDonor
	}
	return s.profiles.Upsert(ctx, model.Profile{
		UserID: principal.UserID,
		Name:   principal.Name,
		Email:  principal.Email,
		Role:   role,
		Gender: model.GenderOther,
	})
}

type UpdateProfileInput struct {
	Name      string
	Role      model.Role
	Gender    model.Gender
	Phone     string
	Address   string
	Principal model.Principal
}

// Update saves the caller's profile. All role changes funnel through
// resolveRole: a non-superuser asking for ADMIN keeps the stored role,
// silently. This is the only mutation path for roles.
func (s *ProfileService) Update(ctx context.Context, input UpdateProfileInput) (*model.Profile, error) {
	if input.Role != "" && !input.Role.Valid() {
		return nil, fmt.Errorf("%w: invalid role", ErrInvalidInput)
	}

	current, err := s.GetOrCreate(ctx, input.Principal)
	if err != nil {
		return nil, err
	}

	updated := *current
	if name := strings.TrimSpace(input.Name); name != "" {
		updated.Name = name
	}
	updated.Role = resolveRole(current.Role, input.Role, input.Principal)
	if input.Gender != "" {
		updated.Gender = input.Gender
	}
	updated.Phone = strings.TrimSpace(input.Phone)
	updated.Address = strings.TrimSpace(input.Address)

	return s.profiles.Upsert(ctx, updated)
}

func resolveRole(stored, requested model.Role, principal model.Principal) model.Role {
	if requested == "" {
		return stored
	}
	if requested == model.RoleAdmin && !principal.Superuser {
		return stored
	}
	return requested
}
