package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

// ErrHasDonations blocks deletion of a campaign that already owns donations.
var ErrHasDonations = errors.New("campaign has donations")

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `
	id,
	title,
	description,
	category,
	goal_amount,
	collected_amount,
	created_by AS created_by_id,
	created_at
`

func (r *CampaignRepository) Create(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	var saved model.Campaign
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO campaigns (title, description, category, goal_amount, created_by)
		VALUES (?, ?, ?, ?, ?)
		RETURNING `+campaignColumns+`
	`,
		campaign.Title,
		campaign.Description,
		campaign.Category,
		campaign.GoalAmount,
		campaign.CreatedByID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+campaignColumns+`
		FROM campaigns
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&campaign).Error
	if err != nil {
		return nil, err
	}
	if campaign.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &campaign, nil
}

func (r *CampaignRepository) List(ctx context.Context, category *model.CampaignCategory) ([]model.Campaign, error) {
	baseQuery := `
		SELECT ` + campaignColumns + `
		FROM campaigns
	`
	var args []interface{}
	if category != nil {
		baseQuery += " WHERE category = ?"
		args = append(args, *category)
	}
	baseQuery += " ORDER BY created_at DESC"

	var campaigns []model.Campaign
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *CampaignRepository) Update(ctx context.Context, campaign model.Campaign) (*model.Campaign, error) {
	var updated model.Campaign
	err := r.db.WithContext(ctx).Raw(`
		UPDATE campaigns
		SET title = ?, description = ?, category = ?, goal_amount = ?
		WHERE id = ?
		RETURNING `+campaignColumns+`
	`,
		campaign.Title,
		campaign.Description,
		campaign.Category,
		campaign.GoalAmount,
		campaign.ID,
	).Scan(&updated).Error
	if err != nil {
		return nil, err
	}
	if updated.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &updated, nil
}

// Delete removes a campaign unless donations reference it. The count check
// and delete run in one transaction; the RESTRICT foreign key backs it up.
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Raw(`
			SELECT COUNT(*) FROM donations WHERE campaign_id = ?
		`, id).Scan(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrHasDonations
		}

		result := tx.Exec(`DELETE FROM campaigns WHERE id = ?`, id)
		if result.Error != nil {
			if strings.Contains(result.Error.Error(), "violates foreign key constraint") {
				return ErrHasDonations
			}
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
