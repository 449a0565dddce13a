package request

import (
	"context"
	"errors"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/pkg/donation"
	"foodshare-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateDonationRequestRequest, userID string) (*domain.DonationRequestResponse, error)
		CancelRequest(ctx context.Context, id string, userID string) error
		ApproveRequest(ctx context.Context, id string, userID string) (*domain.DonationRequestResponse, error)
		GetBeneficiaryRequests(ctx context.Context, userID string, status string) ([]*domain.DonationRequestResponse, error)
	}

	requestService struct {
		requestRepository  RequestRepository
		donationRepository donation.DonationRepository
		userRepository     user.UserRepository
	}
)

func NewRequestService(requestRepository RequestRepository, donationRepository donation.DonationRepository, userRepository user.UserRepository) RequestService {
	return &requestService{
		requestRepository:  requestRepository,
		donationRepository: donationRepository,
		userRepository:     userRepository,
	}
}

var requestStatuses = map[string]bool{
	domain.RequestStatusPending:   true,
	domain.RequestStatusApproved:  true,
	domain.RequestStatusRejected:  true,
	domain.RequestStatusCancelled: true,
}

func mapToDomainRequest(request *entities.DonationRequest) *domain.DonationRequestResponse {
	return &domain.DonationRequestResponse{
		ID:            request.ID.String(),
		DonationID:    request.DonationID.String(),
		BeneficiaryID: request.BeneficiaryID.String(),
		Status:        request.Status,
		RequestedAt:   request.RequestedAt,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateDonationRequestRequest, userID string) (*domain.DonationRequestResponse, error) {
	beneficiary, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	if beneficiary.Role != domain.RoleBeneficiary {
		return nil, domain.ErrOnlyBeneficiariesMayRequest
	}

	target, err := s.donationRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	if target.Status != domain.DonationStatusAvailable {
		return nil, domain.ErrDonationNotAvailable
	}

	request := &entities.DonationRequest{
		ID:            uuid.New(),
		DonationID:    target.ID,
		BeneficiaryID: beneficiary.ID,
		Status:        domain.RequestStatusPending,
		RequestedAt:   time.Now(),
	}

	if err := s.requestRepository.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	return mapToDomainRequest(request), nil
}

func (s *requestService) CancelRequest(ctx context.Context, id string, userID string) error {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.BeneficiaryID.String() != userID {
		return domain.ErrUnauthorizedRequestAccess
	}
	if request.Status != domain.RequestStatusPending {
		return domain.ErrRequestNotPending
	}

	return s.requestRepository.UpdateRequestStatus(ctx, id, domain.RequestStatusPending, domain.RequestStatusCancelled)
}

func (s *requestService) ApproveRequest(ctx context.Context, id string, userID string) (*domain.DonationRequestResponse, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.Donation == nil {
		return nil, domain.ErrDonationNotFound
	}
	// Approval authority rests with the donation's owning donor.
	if request.Donation.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRequestAccess
	}
	if request.Status != domain.RequestStatusPending {
		return nil, domain.ErrRequestNotPending
	}

	if err := s.requestRepository.ApproveRequest(ctx, id, request.DonationID.String()); err != nil {
		return nil, err
	}

	request.Status = domain.RequestStatusApproved
	return mapToDomainRequest(request), nil
}

func (s *requestService) GetBeneficiaryRequests(ctx context.Context, userID string, status string) ([]*domain.DonationRequestResponse, error) {
	// Unknown status filter values fall back to an unfiltered listing.
	if !requestStatuses[status] {
		status = ""
	}

	requests, err := s.requestRepository.GetBeneficiaryRequests(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationRequestResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, mapToDomainRequest(request))
	}
	return result, nil
}
