package admin

import (
	"context"
	"errors"
	"sort"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/pkg/donation"
	"foodshare-backend/pkg/user"

	"gorm.io/gorm"
)

type (
	AdminService interface {
		ListAllUsers(ctx context.Context, actorID string) ([]*domain.User, error)
		GetUserDetails(ctx context.Context, targetUserID string, actorID string) (*domain.User, error)
		UpdateUserStatus(ctx context.Context, targetUserID string, isActive bool, actorID string) (*domain.User, error)
		ListAllDonations(ctx context.Context, actorID string) ([]*domain.Donation, error)
		OverrideDonationStatus(ctx context.Context, donationID string, newStatus string, actorID string) (*domain.Donation, error)
		AuditDonation(ctx context.Context, donationID string, action string, actorID string) (*domain.AuditDonationResponse, error)
		GenerateAnalyticsReport(ctx context.Context, actorID string) (*domain.AnalyticsReport, error)
	}

	adminService struct {
		userRepository     user.UserRepository
		donationRepository donation.DonationRepository
		donationService    donation.DonationService
	}
)

func NewAdminService(userRepository user.UserRepository, donationRepository donation.DonationRepository, donationService donation.DonationService) AdminService {
	return &adminService{
		userRepository:     userRepository,
		donationRepository: donationRepository,
		donationService:    donationService,
	}
}

func (s *adminService) validateAdmin(ctx context.Context, actorID string) error {
	actor, err := s.userRepository.GetUserByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotAdmin
		}
		return err
	}
	if actor.Role != domain.RoleAdmin {
		return domain.ErrNotAdmin
	}
	return nil
}

func mapToDomainUser(user *entities.User) *domain.User {
	return &domain.User{
		ID:         user.ID.String(),
		Username:   user.Username,
		Email:      user.Email,
		Role:       user.Role,
		Phone:      user.Phone,
		Address:    user.Address,
		City:       user.City,
		State:      user.State,
		PostalCode: user.PostalCode,
		Country:    user.Country,
		Latitude:   user.Latitude,
		Longitude:  user.Longitude,
		IsActive:   user.IsActive,
	}
}

func (s *adminService) ListAllUsers(ctx context.Context, actorID string) ([]*domain.User, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.User, 0, len(users))
	for _, u := range users {
		result = append(result, mapToDomainUser(u))
	}
	return result, nil
}

func (s *adminService) GetUserDetails(ctx context.Context, targetUserID string, actorID string) (*domain.User, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.userRepository.GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mapToDomainUser(target), nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, targetUserID string, isActive bool, actorID string) (*domain.User, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.userRepository.GetUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepository.UpdateUserStatus(ctx, targetUserID, isActive); err != nil {
		return nil, err
	}

	target.IsActive = isActive
	return mapToDomainUser(target), nil
}

func (s *adminService) ListAllDonations(ctx context.Context, actorID string) ([]*domain.Donation, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	donations, err := s.donationRepository.GetAllDonations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, &domain.Donation{
			ID:                d.ID.String(),
			UserID:            d.UserID.String(),
			FoodDescription:   d.FoodDescription,
			FoodCategory:      d.FoodCategory,
			QuantityKg:        d.QuantityKg,
			ExpiryDate:        d.ExpiryDate,
			PickupWindowStart: d.PickupWindowStart,
			PickupWindowEnd:   d.PickupWindowEnd,
			Status:            d.Status,
			Latitude:          d.Latitude,
			Longitude:         d.Longitude,
			ImageURL:          d.ImageURL,
			CreatedAt:         d.CreatedAt,
			UpdatedAt:         d.UpdatedAt,
		})
	}
	return result, nil
}

// OverrideDonationStatus lets an admin move a donation along any edge of the
// lifecycle graph regardless of ownership. The graph itself still applies.
func (s *adminService) OverrideDonationStatus(ctx context.Context, donationID string, newStatus string, actorID string) (*domain.Donation, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	return s.donationService.UpdateDonationStatus(ctx, donationID, newStatus, actorID, domain.RoleAdmin)
}

// Audit verdicts stay on the lifecycle graph: approve only resurrects a
// rejected or expired donation, reject only takes the edges the graph
// defines into rejected. A donation mid-fulfilment cannot be audited back
// to available.
var (
	auditApproveFrom = map[string]bool{
		domain.DonationStatusRejected: true,
		domain.DonationStatusExpired:  true,
	}
	auditRejectFrom = map[string]bool{
		domain.DonationStatusAvailable: true,
		domain.DonationStatusRequested: true,
	}
)

func (s *adminService) AuditDonation(ctx context.Context, donationID string, action string, actorID string) (*domain.AuditDonationResponse, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.donationRepository.GetDonationByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	var newStatus string
	var allowedFrom map[string]bool
	switch action {
	case domain.AuditActionApprove:
		newStatus = domain.DonationStatusAvailable
		allowedFrom = auditApproveFrom
	case domain.AuditActionReject:
		newStatus = domain.DonationStatusRejected
		allowedFrom = auditRejectFrom
	default:
		return nil, domain.ErrInvalidAuditAction
	}

	if target.Status != newStatus {
		if !allowedFrom[target.Status] {
			return nil, domain.ErrInvalidStatusTransition
		}
		if action == domain.AuditActionApprove {
			// Reopening also voids any approval the donation carried.
			err = s.donationRepository.ReopenDonation(ctx, donationID, target.Status)
		} else {
			err = s.donationRepository.UpdateDonationStatus(ctx, donationID, target.Status, newStatus)
		}
		if err != nil {
			return nil, err
		}
	}

	return &domain.AuditDonationResponse{
		DonationID: donationID,
		Status:     newStatus,
	}, nil
}

func (s *adminService) GenerateAnalyticsReport(ctx context.Context, actorID string) (*domain.AnalyticsReport, error) {
	if err := s.validateAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	donations, err := s.donationRepository.GetAllDonations(ctx)
	if err != nil {
		return nil, err
	}

	report := &domain.AnalyticsReport{
		TotalDonations: len(donations),
	}

	type donorStats struct {
		username string
		count    int64
	}
	donors := make(map[string]*donorStats)
	foodByCity := make(map[string]float64)

	for _, d := range donations {
		id := d.UserID.String()
		stats, ok := donors[id]
		if !ok {
			stats = &donorStats{}
			if d.User != nil {
				stats.username = d.User.Username
			}
			donors[id] = stats
		}
		stats.count++

		if d.Status == domain.DonationStatusDelivered {
			report.TotalFoodSavedKg += d.QuantityKg
			if d.User != nil && d.User.City != "" {
				foodByCity[d.User.City] += d.QuantityKg
			}
		}
	}

	report.TotalMealsServed = int64(report.TotalFoodSavedKg * domain.MealsPerKg)

	topDonors := make([]domain.TopDonor, 0, len(donors))
	for id, stats := range donors {
		topDonors = append(topDonors, domain.TopDonor{
			UserID:         id,
			Username:       stats.username,
			TotalDonations: stats.count,
		})
	}
	sort.Slice(topDonors, func(i, j int) bool {
		if topDonors[i].TotalDonations != topDonors[j].TotalDonations {
			return topDonors[i].TotalDonations > topDonors[j].TotalDonations
		}
		return topDonors[i].UserID < topDonors[j].UserID
	})
	if len(topDonors) > domain.TopDonorsSize {
		topDonors = topDonors[:domain.TopDonorsSize]
	}
	report.TopDonors = topDonors

	geographic := make([]domain.GeographicImpact, 0, len(foodByCity))
	for city, kg := range foodByCity {
		geographic = append(geographic, domain.GeographicImpact{
			City:        city,
			FoodSavedKg: kg,
		})
	}
	sort.Slice(geographic, func(i, j int) bool {
		return geographic[i].City < geographic[j].City
	})
	report.GeographicImpact = geographic

	return report, nil
}
