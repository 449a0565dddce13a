package entities

import (
	"github.com/google/uuid"
	"time"
)

type Donation struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	FoodDescription   string    `json:"food_description"`
	FoodCategory      string    `json:"food_category"` // perishable, non_perishable, prepared
	QuantityKg        float64   `json:"quantity_kg"`
	ExpiryDate        time.Time `json:"expiry_date"`
	PickupWindowStart time.Time `json:"pickup_window_start"`
	PickupWindowEnd   time.Time `json:"pickup_window_end"`
	Status            string    `json:"status"` // available, requested, in_transit, delivered, expired, rejected
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	ImageURL          string    `json:"image_url,omitempty"`

	User     *User              `gorm:"foreignKey:UserID"`
	Requests []*DonationRequest `gorm:"foreignKey:DonationID"`
	Timestamp
}

type DonationRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonationID    uuid.UUID `json:"donation_id"`
	BeneficiaryID uuid.UUID `json:"beneficiary_id"`
	Status        string    `json:"status"` // pending, approved, rejected, cancelled
	RequestedAt   time.Time `json:"requested_at"`

	Donation    *Donation `gorm:"foreignKey:DonationID"`
	Beneficiary *User     `gorm:"foreignKey:BeneficiaryID"`
}
