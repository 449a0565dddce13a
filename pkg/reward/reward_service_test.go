package reward

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodshare-backend/domain"
	"foodshare-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeRewardRepo struct {
	rewards []*entities.Reward
}

func (r *fakeRewardRepo) CreateReward(_ context.Context, reward *entities.Reward) error {
	r.rewards = append(r.rewards, reward)
	return nil
}

func (r *fakeRewardRepo) GetUserRewards(_ context.Context, userID string) ([]*entities.Reward, error) {
	var result []*entities.Reward
	for _, reward := range r.rewards {
		if reward.UserID.String() == userID {
			result = append(result, reward)
		}
	}
	return result, nil
}

func (r *fakeRewardRepo) GetAllRewards(_ context.Context) ([]*entities.Reward, error) {
	return r.rewards, nil
}

type fakeDonationRepo struct {
	donations []*entities.Donation
}

func (r *fakeDonationRepo) CreateDonation(_ context.Context, donation *entities.Donation) error {
	r.donations = append(r.donations, donation)
	return nil
}

func (r *fakeDonationRepo) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	for _, donation := range r.donations {
		if donation.ID.String() == id {
			return donation, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeDonationRepo) UpdateDonation(_ context.Context, _ *entities.Donation) error {
	return nil
}

func (r *fakeDonationRepo) UpdateDonationStatus(_ context.Context, _ string, _, _ string) error {
	return nil
}

func (r *fakeDonationRepo) ReopenDonation(_ context.Context, _ string, _ string) error {
	return nil
}

func (r *fakeDonationRepo) DeleteDonation(_ context.Context, _ string) error {
	return nil
}

func (r *fakeDonationRepo) GetUserDonations(_ context.Context, userID string, status string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, donation := range r.donations {
		if donation.UserID.String() != userID {
			continue
		}
		if status != "" && donation.Status != status {
			continue
		}
		result = append(result, donation)
	}
	return result, nil
}

func (r *fakeDonationRepo) GetAllDonations(_ context.Context) ([]*entities.Donation, error) {
	return r.donations, nil
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, _ string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) UpdateUserStatus(_ context.Context, _ string, _ bool) error {
	return nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context) ([]*entities.User, error) {
	var result []*entities.User
	for _, user := range r.users {
		result = append(result, user)
	}
	return result, nil
}

func (r *fakeUserRepo) GetActiveBeneficiaries(_ context.Context) ([]*entities.User, error) {
	return nil, nil
}

func newTestService() (RewardService, *fakeRewardRepo, *fakeDonationRepo, *fakeUserRepo) {
	rewardRepo := &fakeRewardRepo{}
	donationRepo := &fakeDonationRepo{}
	userRepo := &fakeUserRepo{users: make(map[string]*entities.User)}
	return NewRewardService(rewardRepo, donationRepo, userRepo), rewardRepo, donationRepo, userRepo
}

func addUser(userRepo *fakeUserRepo, username string) uuid.UUID {
	id := uuid.New()
	userRepo.users[id.String()] = &entities.User{ID: id, Username: username, Role: domain.RoleDonor, IsActive: true}
	return id
}

func TestAssignReward_AdminOnly(t *testing.T) {
	service, _, _, userRepo := newTestService()
	userID := addUser(userRepo, "alice")

	req := domain.AssignRewardRequest{UserID: userID.String(), Points: 10, Reason: "delivered donation"}
	_, err := service.AssignReward(context.Background(), req, domain.RoleDonor)
	if !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}
}

func TestAssignReward_ValidatesPointsAndReason(t *testing.T) {
	service, _, _, userRepo := newTestService()
	userID := addUser(userRepo, "alice")

	req := domain.AssignRewardRequest{UserID: userID.String(), Points: 0, Reason: "delivered donation"}
	if _, err := service.AssignReward(context.Background(), req, domain.RoleAdmin); !errors.Is(err, domain.ErrInvalidRewardPoints) {
		t.Fatalf("expected ErrInvalidRewardPoints, got %v", err)
	}

	req = domain.AssignRewardRequest{UserID: userID.String(), Points: 10, Reason: ""}
	if _, err := service.AssignReward(context.Background(), req, domain.RoleAdmin); !errors.Is(err, domain.ErrEmptyRewardReason) {
		t.Fatalf("expected ErrEmptyRewardReason, got %v", err)
	}
}

func TestAssignReward_UnknownUser(t *testing.T) {
	service, _, _, _ := newTestService()

	req := domain.AssignRewardRequest{UserID: uuid.NewString(), Points: 10, Reason: "delivered donation"}
	_, err := service.AssignReward(context.Background(), req, domain.RoleAdmin)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAssignReward_AppendsRow(t *testing.T) {
	service, rewardRepo, _, userRepo := newTestService()
	userID := addUser(userRepo, "alice")

	req := domain.AssignRewardRequest{UserID: userID.String(), Points: 25, Reason: "delivered donation"}
	reward, err := service.AssignReward(context.Background(), req, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reward.Points != 25 {
		t.Fatalf("expected 25 points, got %d", reward.Points)
	}
	if len(rewardRepo.rewards) != 1 {
		t.Fatalf("expected one stored reward, got %d", len(rewardRepo.rewards))
	}
	if reward.AwardedAt.After(time.Now()) {
		t.Fatalf("awarded_at must not be in the future")
	}
}

func TestGetImpactMetrics_DeliveredOnly(t *testing.T) {
	service, _, donationRepo, userRepo := newTestService()
	userID := addUser(userRepo, "alice")

	donationRepo.donations = []*entities.Donation{
		{ID: uuid.New(), UserID: userID, QuantityKg: 4, Status: domain.DonationStatusDelivered},
		{ID: uuid.New(), UserID: userID, QuantityKg: 6, Status: domain.DonationStatusDelivered},
		{ID: uuid.New(), UserID: userID, QuantityKg: 100, Status: domain.DonationStatusAvailable},
		{ID: uuid.New(), UserID: userID, QuantityKg: 50, Status: domain.DonationStatusExpired},
	}

	metrics, err := service.GetImpactMetrics(context.Background(), userID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metrics.FoodSavedKg != 10 {
		t.Fatalf("expected 10kg saved, got %v", metrics.FoodSavedKg)
	}
	if metrics.MealsServed != 20 {
		t.Fatalf("expected 20 meals, got %d", metrics.MealsServed)
	}
	if metrics.CarbonOffsetKg != 5.0 {
		t.Fatalf("expected 5.0kg carbon offset, got %v", metrics.CarbonOffsetKg)
	}
}

func TestGetImpactMetrics_UnknownUser(t *testing.T) {
	service, _, _, _ := newTestService()

	_, err := service.GetImpactMetrics(context.Background(), uuid.NewString())
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetLeaderboard_OrdersByTotalPoints(t *testing.T) {
	service, rewardRepo, _, userRepo := newTestService()

	alice := addUser(userRepo, "alice")
	bob := addUser(userRepo, "bob")
	carol := addUser(userRepo, "carol")

	for _, row := range []struct {
		user   uuid.UUID
		name   string
		points int
	}{
		{alice, "alice", 10},
		{alice, "alice", 20},
		{bob, "bob", 50},
		{carol, "carol", 10},
	} {
		rewardRepo.rewards = append(rewardRepo.rewards, &entities.Reward{
			ID:     uuid.New(),
			UserID: row.user,
			Points: row.points,
			User:   userRepo.users[row.user.String()],
		})
	}

	entries, err := service.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Username != "bob" || entries[0].TotalPoints != 50 {
		t.Fatalf("expected bob with 50 first, got %s with %d", entries[0].Username, entries[0].TotalPoints)
	}
	if entries[1].Username != "alice" || entries[1].TotalPoints != 30 {
		t.Fatalf("expected alice with 30 second, got %s with %d", entries[1].Username, entries[1].TotalPoints)
	}
	if entries[2].Username != "carol" {
		t.Fatalf("expected carol last, got %s", entries[2].Username)
	}
}

func TestGetLeaderboard_CapsAtTen(t *testing.T) {
	service, rewardRepo, _, userRepo := newTestService()

	for i := 0; i < domain.LeaderboardSize+3; i++ {
		id := addUser(userRepo, "user")
		rewardRepo.rewards = append(rewardRepo.rewards, &entities.Reward{
			ID:     uuid.New(),
			UserID: id,
			Points: i + 1,
			User:   userRepo.users[id.String()],
		})
	}

	entries, err := service.GetLeaderboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != domain.LeaderboardSize {
		t.Fatalf("expected %d entries, got %d", domain.LeaderboardSize, len(entries))
	}
}
