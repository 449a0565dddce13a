package domain

import (
	"errors"
	"time"
)

// Conversion factors are policy decisions, kept as named constants rather
// than inline literals.
const (
	MealsPerKg        = 2.0
	CarbonOffsetPerKg = 0.5
	LeaderboardSize   = 10
)

var (
	MessageSuccessAssignReward   = "reward points assigned successfully"
	MessageSuccessGetRewards     = "rewards retrieved successfully"
	MessageSuccessGetImpact      = "impact metrics retrieved successfully"
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"

	MessageFailedAssignReward   = "failed to assign reward points"
	MessageFailedGetRewards     = "failed to retrieve rewards"
	MessageFailedGetImpact      = "failed to retrieve impact metrics"
	MessageFailedGetLeaderboard = "failed to retrieve leaderboard"

	ErrInvalidRewardPoints = errors.New("points must be positive")
	ErrEmptyRewardReason   = errors.New("reason is required")
)

type (
	AssignRewardRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Points int    `json:"points" validate:"required,gt=0"`
		Reason string `json:"reason" validate:"required"`
	}

	Reward struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		Points    int       `json:"points"`
		Reason    string    `json:"reason"`
		AwardedAt time.Time `json:"awarded_at"`
	}

	ImpactMetrics struct {
		UserID         string  `json:"user_id"`
		FoodSavedKg    float64 `json:"food_saved_kg"`
		MealsServed    int64   `json:"meals_served"`
		CarbonOffsetKg float64 `json:"carbon_offset_kg"`
	}

	LeaderboardEntry struct {
		UserID      string `json:"user_id"`
		Username    string `json:"username"`
		TotalPoints int64  `json:"total_points"`
	}
)
