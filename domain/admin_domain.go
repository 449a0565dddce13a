package domain

import "errors"

const (
	// TopDonorsSize caps the top-donor section of the analytics report.
	TopDonorsSize = 5

	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
)

var (
	MessageSuccessGetUsers         = "users retrieved successfully"
	MessageSuccessGetUserDetails   = "user details retrieved successfully"
	MessageSuccessUpdateUserStatus = "user status updated successfully"
	MessageSuccessGetAllDonations  = "all donations retrieved successfully"
	MessageSuccessOverrideStatus   = "donation status overridden successfully"
	MessageSuccessAuditDonation    = "donation audited successfully"
	MessageSuccessAnalyticsReport  = "analytics report generated successfully"

	MessageFailedGetUsers         = "failed to retrieve users"
	MessageFailedGetUserDetails   = "failed to retrieve user details"
	MessageFailedUpdateUserStatus = "failed to update user status"
	MessageFailedGetAllDonations  = "failed to retrieve donations"
	MessageFailedOverrideStatus   = "failed to override donation status"
	MessageFailedAuditDonation    = "failed to audit donation"
	MessageFailedAnalyticsReport  = "failed to generate analytics report"

	ErrNotAdmin           = errors.New("user is not an admin")
	ErrInvalidAuditAction = errors.New("invalid audit action")
)

type (
	UpdateUserStatusRequest struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}

	AuditDonationRequest struct {
		Action string `json:"action" validate:"required,oneof=approve reject"`
	}

	AuditDonationResponse struct {
		DonationID string `json:"donation_id"`
		Status     string `json:"status"`
	}

	TopDonor struct {
		UserID         string `json:"user_id"`
		Username       string `json:"username"`
		TotalDonations int64  `json:"total_donations"`
	}

	GeographicImpact struct {
		City        string  `json:"city"`
		FoodSavedKg float64 `json:"food_saved_kg"`
	}

	AnalyticsReport struct {
		TotalDonations   int                `json:"total_donations"`
		TotalFoodSavedKg float64            `json:"total_food_saved_kg"`
		TotalMealsServed int64              `json:"total_meals_served"`
		TopDonors        []TopDonor         `json:"top_donors"`
		GeographicImpact []GeographicImpact `json:"geographic_impact"`
	}
)
