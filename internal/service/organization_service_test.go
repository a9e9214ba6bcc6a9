package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nurpe/donations-service/internal/model"
)

func TestOrganizationCreate_StaffOnly(t *testing.T) {
	mem := newMemStore()
	svc := NewOrganizationService(orgStore{mem: mem})

	_, err := svc.Create(context.Background(), OrganizationInput{
		Name:      "Akshaya Patra",
		Category:  model.CategoryFood,
		Principal: donorPrincipal(),
	})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	org, err := svc.Create(context.Background(), OrganizationInput{
		Name:       "  Akshaya Patra  ",
		WebsiteURL: "https://www.akshayapatra.org",
		Category:   model.CategoryFood,
		Principal:  staffPrincipal(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if org.Name != "Akshaya Patra" {
		t.Errorf("name not trimmed: %q", org.Name)
	}
}

func TestOrganizationList_FiltersByCategory(t *testing.T) {
	mem := newMemStore()
	svc := NewOrganizationService(orgStore{mem: mem})
	admin := staffPrincipal()

	for _, in := range []OrganizationInput{
		{Name: "Akshaya Patra", Category: model.CategoryFood, Principal: admin},
		{Name: "Pratham", Category: model.CategoryEducation, Principal: admin},
	} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("Create %s: %v", in.Name, err)
		}
	}

	category := model.CategoryEducation
	orgs, err := svc.List(context.Background(), &category)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(orgs) != 1 || orgs[0].Name != "Pratham" {
		t.Errorf("unexpected result: %+v", orgs)
	}

	bad := model.CampaignCategory("LUXURY")
	if _, err := svc.List(context.Background(), &bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
