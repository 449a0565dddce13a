package entities

import (
	"github.com/google/uuid"
	"time"
)

// Reward rows are append-only. They are created by the reward assignment
// operation and never updated afterwards.
type Reward struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	AwardedAt time.Time `json:"awarded_at"`

	User *User `gorm:"foreignKey:UserID"`
}
