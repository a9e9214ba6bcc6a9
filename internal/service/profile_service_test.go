package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nurpe/donations-service/internal/model"
)

func TestProfileGetOrCreate_Defaults(t *testing.T) {
	mem := newMemStore()
	svc := NewProfileService(profileStore{mem: mem})
	principal := donorPrincipal()

	profile, err := svc.GetOrCreate(context.Background(), principal)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if profile.UserID != principal.UserID {
		t.Error("profile not bound to caller")
	}
	if profile.Name != principal.Name || profile.Email != principal.Email {
		t.Errorf("claims not copied: %+v", profile)
	}
	if profile.Role != model.RoleDonor {
		t.Errorf("default role: got %s, want DONOR", profile.Role)
	}

	// Second call returns the stored profile rather than creating another.
	again, err := svc.GetOrCreate(context.Background(), principal)
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if again.ID != profile.ID {
		t.Error("second call created a new profile")
	}
	if len(mem.profiles) != 1 {
		t.Errorf("expected 1 profile, got %d", len(mem.profiles))
	}
}

func TestProfileUpdate_Fields(t *testing.T) {
	mem := newMemStore()
	svc := NewProfileService(profileStore{mem: mem})
	principal := donorPrincipal()

	profile, err := svc.Update(context.Background(), UpdateProfileInput{
		Name:      "  Priya Sharma  ",
		Role:      model.RoleRecipient,
		Gender:    model.GenderFemale,
		Phone:     "9876543210",
		Address:   "12 MG Road",
		Principal: principal,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if profile.Name != "Priya Sharma" {
		t.Errorf("name not trimmed: %q", profile.Name)
	}
	if profile.Role != model.RoleRecipient {
		t.Errorf("role: got %s, want RECIPIENT", profile.Role)
	}
	if profile.Gender != model.GenderFemale {
		t.Errorf("gender: got %s", profile.Gender)
	}
}

func TestProfileUpdate_AdminRequestKeepsStoredRole(t *testing.T) {
	mem := newMemStore()
	svc := NewProfileService(profileStore{mem: mem})
	principal := donorPrincipal()

	// Escalation attempt succeeds as a request but the role stays put.
	profile, err := svc.Update(context.Background(), UpdateProfileInput{
		Role:      model.RoleAdmin,
		Principal: principal,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if profile.Role != model.RoleDonor {
		t.Errorf("role escalated: got %s, want DONOR", profile.Role)
	}
}

func TestProfileUpdate_SuperuserMaySetAdmin(t *testing.T) {
	mem := newMemStore()
	svc := NewProfileService(profileStore{mem: mem})
	principal := staffPrincipal()
	principal.Superuser = true

	profile, err := svc.Update(context.Background(), UpdateProfileInput{
		Role:      model.RoleAdmin,
		Principal: principal,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if profile.Role != model.RoleAdmin {
		t.Errorf("role: got %s, want ADMIN", profile.Role)
	}
}

func TestProfileUpdate_InvalidRole(t *testing.T) {
	svc := NewProfileService(profileStore{mem: newMemStore()})

	_, err := svc.Update(context.Background(), UpdateProfileInput{
		Role:      model.Role("OVERLORD"),
		Principal: donorPrincipal(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
