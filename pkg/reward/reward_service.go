package reward

import (
	"context"
	"errors"
	"sort"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/pkg/donation"
	"foodshare-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RewardService interface {
		AssignReward(ctx context.Context, req domain.AssignRewardRequest, actorRole string) (*domain.Reward, error)
		GetUserRewards(ctx context.Context, userID string) ([]*domain.Reward, error)
		GetImpactMetrics(ctx context.Context, userID string) (*domain.ImpactMetrics, error)
		GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error)
	}

	rewardService struct {
		rewardRepository   RewardRepository
		donationRepository donation.DonationRepository
		userRepository     user.UserRepository
	}
)

func NewRewardService(rewardRepository RewardRepository, donationRepository donation.DonationRepository, userRepository user.UserRepository) RewardService {
	return &rewardService{
		rewardRepository:   rewardRepository,
		donationRepository: donationRepository,
		userRepository:     userRepository,
	}
}

func mapToDomainReward(reward *entities.Reward) *domain.Reward {
	return &domain.Reward{
		ID:        reward.ID.String(),
		UserID:    reward.UserID.String(),
		Points:    reward.Points,
		Reason:    reward.Reason,
		AwardedAt: reward.AwardedAt,
	}
}

func (s *rewardService) AssignReward(ctx context.Context, req domain.AssignRewardRequest, actorRole string) (*domain.Reward, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrNotAdmin
	}
	if req.Points <= 0 {
		return nil, domain.ErrInvalidRewardPoints
	}
	if req.Reason == "" {
		return nil, domain.ErrEmptyRewardReason
	}

	recipient, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	reward := &entities.Reward{
		ID:        uuid.New(),
		UserID:    recipient.ID,
		Points:    req.Points,
		Reason:    req.Reason,
		AwardedAt: time.Now(),
	}

	if err := s.rewardRepository.CreateReward(ctx, reward); err != nil {
		return nil, err
	}

	return mapToDomainReward(reward), nil
}

func (s *rewardService) GetUserRewards(ctx context.Context, userID string) ([]*domain.Reward, error) {
	rewards, err := s.rewardRepository.GetUserRewards(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Reward, 0, len(rewards))
	for _, reward := range rewards {
		result = append(result, mapToDomainReward(reward))
	}
	return result, nil
}

func (s *rewardService) GetImpactMetrics(ctx context.Context, userID string) (*domain.ImpactMetrics, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	donations, err := s.donationRepository.GetUserDonations(ctx, userID, "")
	if err != nil {
		return nil, err
	}

	var foodSavedKg float64
	for _, d := range donations {
		if d.Status == domain.DonationStatusDelivered {
			foodSavedKg += d.QuantityKg
		}
	}

	return &domain.ImpactMetrics{
		UserID:         userID,
		FoodSavedKg:    foodSavedKg,
		MealsServed:    int64(foodSavedKg * domain.MealsPerKg),
		CarbonOffsetKg: foodSavedKg * domain.CarbonOffsetPerKg,
	}, nil
}

func (s *rewardService) GetLeaderboard(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	rewards, err := s.rewardRepository.GetAllRewards(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*domain.LeaderboardEntry)
	for _, reward := range rewards {
		id := reward.UserID.String()
		entry, ok := totals[id]
		if !ok {
			entry = &domain.LeaderboardEntry{UserID: id}
			if reward.User != nil {
				entry.Username = reward.User.Username
			}
			totals[id] = entry
		}
		entry.TotalPoints += int64(reward.Points)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(totals))
	for _, entry := range totals {
		entries = append(entries, entry)
	}

	// Highest total first, ties broken by user id for a stable order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})

	if len(entries) > domain.LeaderboardSize {
		entries = entries[:domain.LeaderboardSize]
	}
	return entries, nil
}
