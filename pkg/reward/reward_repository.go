package reward

import (
	"context"

	"foodshare-backend/entities"

	"gorm.io/gorm"
)

type (
	RewardRepository interface {
		CreateReward(ctx context.Context, reward *entities.Reward) error
		GetUserRewards(ctx context.Context, userID string) ([]*entities.Reward, error)
		GetAllRewards(ctx context.Context) ([]*entities.Reward, error)
	}

	rewardRepository struct {
		db *gorm.DB
	}
)

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) CreateReward(ctx context.Context, reward *entities.Reward) error {
	return r.db.WithContext(ctx).Create(reward).Error
}

func (r *rewardRepository) GetUserRewards(ctx context.Context, userID string) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("awarded_at DESC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepository) GetAllRewards(ctx context.Context) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	if err := r.db.WithContext(ctx).
		Preload("User").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}
