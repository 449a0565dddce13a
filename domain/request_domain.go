package domain

import (
	"errors"
	"time"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusCancelled = "cancelled"
)

var (
	MessageSuccessCreateRequest  = "donation request created successfully"
	MessageSuccessGetRequests    = "donation requests retrieved successfully"
	MessageSuccessCancelRequest  = "donation request cancelled successfully"
	MessageSuccessApproveRequest = "donation request approved successfully"

	MessageFailedCreateRequest  = "failed to create donation request"
	MessageFailedGetRequests    = "failed to retrieve donation requests"
	MessageFailedCancelRequest  = "failed to cancel donation request"
	MessageFailedApproveRequest = "failed to approve donation request"

	ErrRequestNotFound             = errors.New("donation request not found")
	ErrUnauthorizedRequestAccess   = errors.New("unauthorized access to donation request")
	ErrOnlyBeneficiariesMayRequest = errors.New("only beneficiaries can request donations")
	ErrDonationNotAvailable        = errors.New("donation is not available for request")
	ErrRequestNotPending           = errors.New("donation request is not pending")
)

type (
	CreateDonationRequestRequest struct {
		DonationID string `json:"donation_id" validate:"required,uuid"`
	}

	DonationRequestResponse struct {
		ID            string    `json:"id"`
		DonationID    string    `json:"donation_id"`
		BeneficiaryID string    `json:"beneficiary_id"`
		Status        string    `json:"status"`
		RequestedAt   time.Time `json:"requested_at"`
	}
)
