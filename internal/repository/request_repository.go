package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/donations-service/internal/model"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `
	r.id,
	r.user_id,
	r.aadhaar_number,
	r.ration_card_number,
	r.aadhaar_file_ref,
	r.ration_card_ref,
	r.family_income,
	r.description,
	r.status,
	r.reviewed_by AS reviewed_by_id,
	r.reviewed_at,
	r.created_at,
	COALESCE(p.name, '') AS user_name,
	COALESCE(p.email, '') AS user_email
`

func (r *RequestRepository) Create(ctx context.Context, request model.RecipientRequest) (*model.RecipientRequest, error) {
	var saved model.RecipientRequest
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO recipient_requests (
			user_id,
			aadhaar_number,
			ration_card_number,
			aadhaar_file_ref,
			ration_card_ref,
			family_income,
			description,
			status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING
			id,
			user_id,
			aadhaar_number,
			ration_card_number,
			aadhaar_file_ref,
			ration_card_ref,
			family_income,
			description,
			status,
			reviewed_by AS reviewed_by_id,
			reviewed_at,
			created_at
	`,
		request.UserID,
		request.AadhaarNumber,
		request.RationCardNumber,
		request.AadhaarFileRef,
		request.RationCardRef,
		request.FamilyIncome,
		request.Description,
		model.StatusPending,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RecipientRequestWithContact, error) {
	var request model.RecipientRequestWithContact
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+requestColumns+`
		FROM recipient_requests r
		LEFT JOIN profiles p ON p.user_id = r.user_id
		WHERE r.id = ?
		LIMIT 1
	`, id).Scan(&request).Error
	if err != nil {
		return nil, err
	}
	if request.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (r *RequestRepository) List(ctx context.Context, status *model.ApprovalStatus, userID *uuid.UUID) ([]model.RecipientRequestWithContact, error) {
	baseQuery := `
		SELECT ` + requestColumns + `
		FROM recipient_requests r
		LEFT JOIN profiles p ON p.user_id = r.user_id
	`
	var filters []string
	var args []interface{}
	if status != nil {
		filters = append(filters, "r.status = ?")
		args = append(args, *status)
	}
	if userID != nil {
		filters = append(filters, "r.user_id = ?")
		args = append(args, *userID)
	}

	if len(filters) > 0 {
		baseQuery += " WHERE " + strings.Join(filters, " AND ")
	}
	baseQuery += " ORDER BY r.created_at DESC"

	var requests []model.RecipientRequestWithContact
	if err := r.db.WithContext(ctx).Raw(baseQuery, args...).Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *RequestRepository) UpdateStatus(
	ctx context.Context,
	requestID uuid.UUID,
	status model.ApprovalStatus,
	reviewerID uuid.UUID,
	reviewedAt time.Time,
) (*model.RecipientRequestWithContact, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE recipient_requests
		SET status = ?, reviewed_by = ?, reviewed_at = ?
		WHERE id = ?
	`, status, reviewerID, reviewedAt, requestID)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, requestID)
}
