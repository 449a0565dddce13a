package request

import (
	"context"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	RequestRepository interface {
		CreateRequest(ctx context.Context, request *entities.DonationRequest) error
		GetRequestByID(ctx context.Context, id string) (*entities.DonationRequest, error)
		UpdateRequestStatus(ctx context.Context, id string, fromStatus, toStatus string) error
		ApproveRequest(ctx context.Context, requestID, donationID string) error
		GetBeneficiaryRequests(ctx context.Context, beneficiaryID string, status string) ([]*entities.DonationRequest, error)
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.DonationRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id string) (*entities.DonationRequest, error) {
	var request entities.DonationRequest
	if err := r.db.WithContext(ctx).
		Preload("Donation").
		Preload("Donation.User").
		Preload("Beneficiary").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id string, fromStatus, toStatus string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.DonationRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRequestNotPending
	}
	return nil
}

// ApproveRequest commits the coupled transition, request pending->approved
// and donation available->requested, as one transaction. Both updates are
// guarded on the current status, so concurrent approvals against the same
// donation cannot both succeed and a partial commit is never observable.
func (r *requestRepository) ApproveRequest(ctx context.Context, requestID, donationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.DonationRequest{}).
			Where("id = ? AND status = ?", requestID, domain.RequestStatusPending).
			Update("status", domain.RequestStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}

		res = tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", donationID, domain.DonationStatusAvailable).
			Updates(map[string]interface{}{
				"status":     domain.DonationStatusRequested,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDonationNotAvailable
		}
		return nil
	})
}

func (r *requestRepository) GetBeneficiaryRequests(ctx context.Context, beneficiaryID string, status string) ([]*entities.DonationRequest, error) {
	var requests []*entities.DonationRequest

	query := r.db.WithContext(ctx).
		Where("beneficiary_id = ?", beneficiaryID).
		Order("requested_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
