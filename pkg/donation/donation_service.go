package donation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/internal/utils/geo"
	"foodshare-backend/internal/utils/storage"
	"foodshare-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.Donation, error)
		GetUserDonations(ctx context.Context, userID string, status string) ([]*domain.Donation, error)
		GetDonationDetails(ctx context.Context, id string, userID string, role string) (*domain.Donation, error)
		UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID string) (*domain.Donation, error)
		DeleteDonation(ctx context.Context, id string, userID string) error
		UpdateDonationStatus(ctx context.Context, id string, newStatus string, userID string, role string) (*domain.Donation, error)
		MatchDonation(ctx context.Context, id string, userID string) ([]*domain.MatchedBeneficiary, error)
	}

	donationService struct {
		donationRepository DonationRepository
		userRepository     user.UserRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, userRepository user.UserRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		userRepository:     userRepository,
		s3:                 s3,
	}
}

func mapToDomainDonation(donation *entities.Donation) *domain.Donation {
	return &domain.Donation{
		ID:                donation.ID.String(),
		UserID:            donation.UserID.String(),
		FoodDescription:   donation.FoodDescription,
		FoodCategory:      donation.FoodCategory,
		QuantityKg:        donation.QuantityKg,
		ExpiryDate:        donation.ExpiryDate,
		PickupWindowStart: donation.PickupWindowStart,
		PickupWindowEnd:   donation.PickupWindowEnd,
		Status:            donation.Status,
		Latitude:          donation.Latitude,
		Longitude:         donation.Longitude,
		ImageURL:          donation.ImageURL,
		CreatedAt:         donation.CreatedAt,
		UpdatedAt:         donation.UpdatedAt,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.Donation, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if req.QuantityKg <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !req.PickupWindowStart.Before(req.PickupWindowEnd) {
		return nil, domain.ErrInvalidPickupWindow
	}
	if !isValidCategory(req.FoodCategory) {
		return nil, domain.ErrInvalidFoodCategory
	}

	donationID := uuid.New()

	var imageURL string
	if req.FoodImage != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s", donationID.String()),
			req.FoodImage,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	donation := &entities.Donation{
		ID:                donationID,
		UserID:            userUUID,
		FoodDescription:   req.FoodDescription,
		FoodCategory:      req.FoodCategory,
		QuantityKg:        req.QuantityKg,
		ExpiryDate:        req.ExpiryDate,
		PickupWindowStart: req.PickupWindowStart,
		PickupWindowEnd:   req.PickupWindowEnd,
		Status:            domain.DonationStatusAvailable,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		ImageURL:          imageURL,
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return mapToDomainDonation(donation), nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string, status string) ([]*domain.Donation, error) {
	// Unknown status filter values fall back to an unfiltered listing.
	if !isValidStatus(status) {
		status = ""
	}

	donations, err := s.donationRepository.GetUserDonations(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, donation := range donations {
		result = append(result, mapToDomainDonation(donation))
	}
	return result, nil
}

func (s *donationService) GetDonationDetails(ctx context.Context, id string, userID string, role string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if err := domain.AuthorizeOwner(userID, role, donation.UserID.String()); err != nil {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	return mapToDomainDonation(donation), nil
}

func (s *donationService) UpdateDonation(ctx context.Context, id string, req domain.UpdateDonationRequest, userID string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}
	if donation.Status != domain.DonationStatusAvailable {
		return nil, domain.ErrDonationNotEditable
	}

	if req.QuantityKg <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !req.PickupWindowStart.Before(req.PickupWindowEnd) {
		return nil, domain.ErrInvalidPickupWindow
	}
	if !isValidCategory(req.FoodCategory) {
		return nil, domain.ErrInvalidFoodCategory
	}

	donation.FoodDescription = req.FoodDescription
	donation.FoodCategory = req.FoodCategory
	donation.QuantityKg = req.QuantityKg
	donation.ExpiryDate = req.ExpiryDate
	donation.PickupWindowStart = req.PickupWindowStart
	donation.PickupWindowEnd = req.PickupWindowEnd
	donation.Latitude = req.Latitude
	donation.Longitude = req.Longitude

	if err := s.donationRepository.UpdateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return mapToDomainDonation(donation), nil
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, userID string) error {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if donation.UserID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}

	return s.donationRepository.DeleteDonation(ctx, id)
}

func (s *donationService) UpdateDonationStatus(ctx context.Context, id string, newStatus string, userID string, role string) (*domain.Donation, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if err := domain.AuthorizeOwner(userID, role, donation.UserID.String()); err != nil {
		return nil, domain.ErrUnauthorizedDonationAccess
	}
	if adminOnlyTargets[newStatus] && role != domain.RoleAdmin {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	if !isValidStatus(newStatus) {
		return nil, domain.ErrInvalidDonationStatus
	}
	if !canTransition(donation.Status, newStatus) {
		return nil, domain.ErrInvalidStatusTransition
	}

	if err := s.donationRepository.UpdateDonationStatus(ctx, id, donation.Status, newStatus); err != nil {
		return nil, err
	}

	// Mirror the timestamp the repository just wrote.
	donation.Status = newStatus
	donation.UpdatedAt = time.Now()
	return mapToDomainDonation(donation), nil
}

func (s *donationService) MatchDonation(ctx context.Context, id string, userID string) ([]*domain.MatchedBeneficiary, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}
	if donation.Latitude == nil || donation.Longitude == nil {
		return nil, domain.ErrMissingCoordinates
	}

	beneficiaries, err := s.userRepository.GetActiveBeneficiaries(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.MatchedBeneficiary, 0)
	for _, beneficiary := range beneficiaries {
		if beneficiary.Latitude == nil || beneficiary.Longitude == nil {
			continue
		}
		distance := geo.Distance(*donation.Latitude, *donation.Longitude, *beneficiary.Latitude, *beneficiary.Longitude)
		if distance <= domain.MatchRadiusKm {
			matches = append(matches, &domain.MatchedBeneficiary{
				UserID:     beneficiary.ID.String(),
				Username:   beneficiary.Username,
				DistanceKm: distance,
			})
		}
	}

	// Nearest first, ties broken by user id for a deterministic order.
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}
		return matches[i].UserID < matches[j].UserID
	})

	return matches, nil
}
