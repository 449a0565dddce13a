package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	DonationStatusAvailable = "available"
	DonationStatusRequested = "requested"
	DonationStatusInTransit = "in_transit"
	DonationStatusDelivered = "delivered"
	DonationStatusExpired   = "expired"
	DonationStatusRejected  = "rejected"

	FoodCategoryPerishable    = "perishable"
	FoodCategoryNonPerishable = "non_perishable"
	FoodCategoryPrepared      = "prepared"

	// MatchRadiusKm is the proximity threshold for shortlisting
	// beneficiaries around a donation.
	MatchRadiusKm = 50.0
)

var (
	MessageSuccessCreateDonation      = "donation created successfully"
	MessageSuccessGetDonations        = "donations retrieved successfully"
	MessageSuccessGetDonationDetails  = "donation details retrieved successfully"
	MessageSuccessUpdateDonation      = "donation updated successfully"
	MessageSuccessDeleteDonation      = "donation deleted successfully"
	MessageSuccessUpdateDonationState = "donation status updated successfully"
	MessageSuccessMatchDonation       = "matched beneficiaries retrieved successfully"

	MessageFailedCreateDonation      = "failed to create donation"
	MessageFailedGetDonations        = "failed to retrieve donations"
	MessageFailedGetDonationDetails  = "failed to retrieve donation details"
	MessageFailedUpdateDonation      = "failed to update donation"
	MessageFailedDeleteDonation      = "failed to delete donation"
	MessageFailedUpdateDonationState = "failed to update donation status"
	MessageFailedMatchDonation       = "failed to match beneficiaries"

	ErrDonationNotFound           = errors.New("donation not found")
	ErrUnauthorizedDonationAccess = errors.New("unauthorized access to donation")
	ErrInvalidFoodCategory        = errors.New("invalid food category")
	ErrInvalidQuantity            = errors.New("quantity_kg must be positive")
	ErrInvalidPickupWindow        = errors.New("pickup window start must precede end")
	ErrInvalidDonationStatus      = errors.New("invalid donation status")
	ErrInvalidStatusTransition    = errors.New("status transition not allowed")
	ErrDonationNotEditable        = errors.New("donation can only be edited while available")
	ErrDonationStateChanged       = errors.New("donation state changed concurrently")
	ErrMissingCoordinates         = errors.New("donation has no coordinates")
)

type (
	CreateDonationRequest struct {
		FoodDescription   string                `json:"food_description" form:"food_description" validate:"required"`
		FoodCategory      string                `json:"food_category" form:"food_category" validate:"required,oneof=perishable non_perishable prepared"`
		QuantityKg        float64               `json:"quantity_kg" form:"quantity_kg" validate:"required,gt=0"`
		ExpiryDate        time.Time             `json:"expiry_date" form:"expiry_date" validate:"required"`
		PickupWindowStart time.Time             `json:"pickup_window_start" form:"pickup_window_start" validate:"required"`
		PickupWindowEnd   time.Time             `json:"pickup_window_end" form:"pickup_window_end" validate:"required"`
		Latitude          *float64              `json:"latitude" form:"latitude"`
		Longitude         *float64              `json:"longitude" form:"longitude"`
		FoodImage         *multipart.FileHeader `json:"food_image" form:"food_image"`
	}

	UpdateDonationRequest struct {
		FoodDescription   string    `json:"food_description" validate:"required"`
		FoodCategory      string    `json:"food_category" validate:"required,oneof=perishable non_perishable prepared"`
		QuantityKg        float64   `json:"quantity_kg" validate:"required,gt=0"`
		ExpiryDate        time.Time `json:"expiry_date" validate:"required"`
		PickupWindowStart time.Time `json:"pickup_window_start" validate:"required"`
		PickupWindowEnd   time.Time `json:"pickup_window_end" validate:"required"`
		Latitude          *float64  `json:"latitude"`
		Longitude         *float64  `json:"longitude"`
	}

	UpdateDonationStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=available requested in_transit delivered expired rejected"`
	}

	Donation struct {
		ID                string    `json:"id"`
		UserID            string    `json:"user_id"`
		FoodDescription   string    `json:"food_description"`
		FoodCategory      string    `json:"food_category"`
		QuantityKg        float64   `json:"quantity_kg"`
		ExpiryDate        time.Time `json:"expiry_date"`
		PickupWindowStart time.Time `json:"pickup_window_start"`
		PickupWindowEnd   time.Time `json:"pickup_window_end"`
		Status            string    `json:"status"`
		Latitude          *float64  `json:"latitude,omitempty"`
		Longitude         *float64  `json:"longitude,omitempty"`
		ImageURL          string    `json:"image_url,omitempty"`
		CreatedAt         time.Time `json:"created_at"`
		UpdatedAt         time.Time `json:"updated_at"`
	}

	MatchedBeneficiary struct {
		UserID     string  `json:"user_id"`
		Username   string  `json:"username"`
		DistanceKm float64 `json:"distance_km"`
	}
)
