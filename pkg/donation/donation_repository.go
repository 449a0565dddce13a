package donation

import (
	"context"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		CreateDonation(ctx context.Context, donation *entities.Donation) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateDonation(ctx context.Context, donation *entities.Donation) error
		UpdateDonationStatus(ctx context.Context, id string, fromStatus, toStatus string) error
		ReopenDonation(ctx context.Context, id string, fromStatus string) error
		DeleteDonation(ctx context.Context, id string) error
		GetUserDonations(ctx context.Context, userID string, status string) ([]*entities.Donation, error)
		GetAllDonations(ctx context.Context) ([]*entities.Donation, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Create(donation).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) UpdateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Save(donation).Error
}

// UpdateDonationStatus applies a transition with a guard on the current
// status, so a donation whose state moved underneath the caller is not
// silently overwritten.
func (r *donationRepository) UpdateDonationStatus(ctx context.Context, id string, fromStatus, toStatus string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":     toStatus,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrDonationStateChanged
	}
	return nil
}

// ReopenDonation puts a rejected or expired donation back on the board.
// Any approval it still carried is voided in the same transaction, so the
// reopened donation starts with no approved request.
func (r *donationRepository) ReopenDonation(ctx context.Context, id string, fromStatus string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Donation{}).
			Where("id = ? AND status = ?", id, fromStatus).
			Updates(map[string]interface{}{
				"status":     domain.DonationStatusAvailable,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrDonationStateChanged
		}
		return tx.Model(&entities.DonationRequest{}).
			Where("donation_id = ? AND status = ?", id, domain.RequestStatusApproved).
			Update("status", domain.RequestStatusCancelled).Error
	})
}

// DeleteDonation removes the donation and cancels its still-pending requests
// in one transaction. Approved and other terminal requests are kept for
// analytics.
func (r *donationRepository) DeleteDonation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.DonationRequest{}).
			Where("donation_id = ? AND status = ?", id, domain.RequestStatusPending).
			Update("status", domain.RequestStatusCancelled).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Donation{}).Error
	})
}

func (r *donationRepository) GetUserDonations(ctx context.Context, userID string, status string) ([]*entities.Donation, error) {
	var donations []*entities.Donation

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationRepository) GetAllDonations(ctx context.Context) ([]*entities.Donation, error) {
	var donations []*entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
