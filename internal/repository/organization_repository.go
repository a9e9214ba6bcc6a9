package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) Create(ctx context.Context, org model.Organization) (*model.Organization, error) {
	var saved model.Organization
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO organizations (name, website_url, category, image_ref)
		VALUES (?, ?, ?, ?)
		RETURNING id, name, website_url, category, image_ref
	`,
		org.Name,
		org.WebsiteURL,
		org.Category,
		org.ImageRef,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *OrganizationRepository) List(ctx context.Context, category *model.CampaignCategory) ([]model.Organization, error) {
	baseQuery := `
		SELECT id, name, website_url, category, image_ref
		FROM organizations
	`
	var args []interface{}
	if category != nil {
		baseQuery += " WHERE category = ?"
		args = append(args, *category)
	}
	baseQuery += " ORDER BY name ASC"

	var orgs []model.Organization
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}
