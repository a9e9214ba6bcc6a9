package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	id,
	user_id,
	name,
	email,
	role,
	gender,
	phone,
	address
`

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = ?
		LIMIT 1
	`, userID).Scan(&profile).Error
	if err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

// Upsert creates the profile on first touch and updates it afterwards,
// keyed by user_id.
func (r *ProfileRepository) Upsert(ctx context.Context, profile model.Profile) (*model.Profile, error) {
	var saved model.Profile
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO profiles (user_id, name, email, role, gender, phone, address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			gender = EXCLUDED.gender,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address
		RETURNING `+profileColumns+`
	`,
		profile.UserID,
		profile.Name,
		profile.Email,
		profile.Role,
		profile.Gender,
		profile.Phone,
		profile.Address,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
