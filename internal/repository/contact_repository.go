package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, query model.ContactQuery) (*model.ContactQuery, error) {
	var saved model.ContactQuery
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contact_queries (user_id, name, email, subject, message)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, user_id, name, email, subject, message, sent_at
	`,
		query.UserID,
		query.Name,
		query.Email,
		query.Subject,
		query.Message,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ContactQuery, error) {
	var query model.ContactQuery
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, email, subject, message, sent_at
		FROM contact_queries
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&query).Error
	if err != nil {
		return nil, err
	}
	if query.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &query, nil
}

func (r *ContactRepository) List(ctx context.Context) ([]model.ContactQuery, error) {
	var queries []model.ContactQuery
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, user_id, name, email, subject, message, sent_at
		FROM contact_queries
		ORDER BY sent_at DESC
	`).Scan(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
