package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

// ErrNegativeTotal means a recomputed campaign total came out below zero.
// The surrounding transaction is rolled back when it is returned.
var ErrNegativeTotal = errors.New("campaign collected total below zero")

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

const donationColumns = `
	d.id,
	d.donation_type,
	d.user_id,
	d.name,
	d.phone,
	d.email,
	d.campaign_id,
	d.purpose,
	d.amount,
	d.address,
	d.status,
	d.reviewed_by AS reviewed_by_id,
	d.reviewed_at,
	d.donated_at,
	c.title AS campaign_title
`

func (r *DonationRepository) Create(ctx context.Context, donation model.Donation) (*model.Donation, error) {
	var saved model.Donation
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO donations (
			donation_type,
			user_id,
			name,
			phone,
			email,
			campaign_id,
			purpose,
			amount,
			address,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING
			id,
			donation_type,
			user_id,
			name,
			phone,
			email,
			campaign_id,
			purpose,
			amount,
			address,
			status,
			reviewed_by AS reviewed_by_id,
			reviewed_at,
			donated_at
	`,
		donation.DonationType,
		donation.UserID,
		donation.Name,
		donation.Phone,
		donation.Email,
		donation.CampaignID,
		donation.Purpose,
		donation.Amount,
		donation.Address,
		model.StatusPending,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *DonationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.DonationWithCampaign, error) {
	var donation model.DonationWithCampaign
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+donationColumns+`
		FROM donations d
		JOIN campaigns c ON c.id = d.campaign_id
		WHERE d.id = ?
		LIMIT 1
	`, id).Scan(&donation).Error
	if err != nil {
		return nil, err
	}
	if donation.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &donation, nil
}

func (r *DonationRepository) List(ctx context.Context, filter model.DonationFilter) ([]model.DonationWithCampaign, error) {
	baseQuery := `
		SELECT ` + donationColumns + `
		FROM donations d
		JOIN campaigns c ON c.id = d.campaign_id
	`
	var filters []string
	var args []interface{}
	if filter.Status != nil {
		filters = append(filters, "d.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.CampaignID != nil {
		filters = append(filters, "d.campaign_id = ?")
		args = append(args, *filter.CampaignID)
	}
	if filter.UserID != nil {
		filters = append(filters, "d.user_id = ?")
		args = append(args, *filter.UserID)
	}

	if len(filters) > 0 {
		baseQuery += " WHERE " + strings.Join(filters, " AND ")
	}
	baseQuery += " ORDER BY d.donated_at DESC"

	var donations []model.DonationWithCampaign
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateStatus applies a status transition and rederives the campaign total
// in one transaction. The campaign row is locked first so concurrent
// approvals against the same campaign serialize.
func (r *DonationRepository) UpdateStatus(
	ctx context.Context,
	donationID uuid.UUID,
	status model.ApprovalStatus,
	reviewerID uuid.UUID,
	reviewedAt time.Time,
) (*model.DonationWithCampaign, error) {
	var updated model.DonationWithCampaign
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaignID uuid.UUID
		if err := tx.Raw(`
			SELECT campaign_id FROM donations WHERE id = ? LIMIT 1
		`, donationID).Scan(&campaignID).Error; err != nil {
			return err
		}
		if campaignID == uuid.Nil {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Exec(`
			SELECT id FROM campaigns WHERE id = ? FOR UPDATE
		`, campaignID).Error; err != nil {
			return err
		}

		if err := tx.Exec(`
			UPDATE donations
			SET status = ?, reviewed_by = ?, reviewed_at = ?
			WHERE id = ?
		`, status, reviewerID, reviewedAt, donationID).Error; err != nil {
			return err
		}

		var total float64
		if err := tx.Raw(`
			SELECT COALESCE(SUM(amount), 0)
			FROM donations
			WHERE campaign_id = ? AND status = ?
		`, campaignID, model.StatusApproved).Scan(&total).Error; err != nil {
			return err
		}
		if total < 0 {
			return fmt.Errorf("%w: campaign %s total %.2f", ErrNegativeTotal, campaignID, total)
		}

		if err := tx.Exec(`
			UPDATE campaigns SET collected_amount = ? WHERE id = ?
		`, total, campaignID).Error; err != nil {
			return err
		}

		return tx.Raw(`
			SELECT `+donationColumns+`
			FROM donations d
			JOIN campaigns c ON c.id = d.campaign_id
			WHERE d.id = ?
			LIMIT 1
		`, donationID).Scan(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
