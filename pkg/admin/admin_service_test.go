package admin

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"foodshare-backend/domain"
	"foodshare-backend/entities"
	"foodshare-backend/internal/utils/storage"
	"foodshare-backend/pkg/donation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeDonationRepo struct {
	donations map[string]*entities.Donation
	requests  map[string]*entities.DonationRequest
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{
		donations: make(map[string]*entities.Donation),
		requests:  make(map[string]*entities.DonationRequest),
	}
}

func (r *fakeDonationRepo) CreateDonation(_ context.Context, donation *entities.Donation) error {
	r.donations[donation.ID.String()] = donation
	return nil
}

func (r *fakeDonationRepo) GetDonationByID(_ context.Context, id string) (*entities.Donation, error) {
	donation, ok := r.donations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return donation, nil
}

func (r *fakeDonationRepo) UpdateDonation(_ context.Context, donation *entities.Donation) error {
	r.donations[donation.ID.String()] = donation
	return nil
}

func (r *fakeDonationRepo) UpdateDonationStatus(_ context.Context, id string, fromStatus, toStatus string) error {
	donation, ok := r.donations[id]
	if !ok || donation.Status != fromStatus {
		return domain.ErrDonationStateChanged
	}
	donation.Status = toStatus
	return nil
}

func (r *fakeDonationRepo) ReopenDonation(_ context.Context, id string, fromStatus string) error {
	donation, ok := r.donations[id]
	if !ok || donation.Status != fromStatus {
		return domain.ErrDonationStateChanged
	}
	donation.Status = domain.DonationStatusAvailable
	for _, request := range r.requests {
		if request.DonationID.String() == id && request.Status == domain.RequestStatusApproved {
			request.Status = domain.RequestStatusCancelled
		}
	}
	return nil
}

func (r *fakeDonationRepo) DeleteDonation(_ context.Context, id string) error {
	delete(r.donations, id)
	return nil
}

func (r *fakeDonationRepo) GetUserDonations(_ context.Context, userID string, status string) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, donation := range r.donations {
		if donation.UserID.String() == userID {
			result = append(result, donation)
		}
	}
	return result, nil
}

func (r *fakeDonationRepo) GetAllDonations(_ context.Context) ([]*entities.Donation, error) {
	var result []*entities.Donation
	for _, donation := range r.donations {
		result = append(result, donation)
	}
	return result, nil
}

type fakeUserRepo struct {
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
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

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) UpdateUserStatus(_ context.Context, id string, isActive bool) error {
	user, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.IsActive = isActive
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
	var result []*entities.User
	for _, user := range r.users {
		if user.Role == domain.RoleBeneficiary && user.IsActive {
			result = append(result, user)
		}
	}
	return result, nil
}

type testFixture struct {
	service      AdminService
	donationRepo *fakeDonationRepo
	userRepo     *fakeUserRepo
	adminID      uuid.UUID
}

func newTestFixture() *testFixture {
	donationRepo := newFakeDonationRepo()
	userRepo := newFakeUserRepo()

	adminID := uuid.New()
	userRepo.users[adminID.String()] = &entities.User{ID: adminID, Role: domain.RoleAdmin, IsActive: true}

	donationService := donation.NewDonationService(donationRepo, userRepo, storage.AwsS3{})
	service := NewAdminService(userRepo, donationRepo, donationService)

	return &testFixture{
		service:      service,
		donationRepo: donationRepo,
		userRepo:     userRepo,
		adminID:      adminID,
	}
}

func (f *testFixture) addDonor(username, city string) uuid.UUID {
	id := uuid.New()
	f.userRepo.users[id.String()] = &entities.User{
		ID:       id,
		Username: username,
		Role:     domain.RoleDonor,
		City:     city,
		IsActive: true,
	}
	return id
}

func (f *testFixture) addDonation(donorID uuid.UUID, kg float64, status string) uuid.UUID {
	id := uuid.New()
	f.donationRepo.donations[id.String()] = &entities.Donation{
		ID:         id,
		UserID:     donorID,
		QuantityKg: kg,
		Status:     status,
		User:       f.userRepo.users[donorID.String()],
	}
	return id
}

func TestAdminOperations_RequireAdminRole(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")

	if _, err := f.service.ListAllUsers(context.Background(), donorID.String()); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("ListAllUsers: expected ErrNotAdmin, got %v", err)
	}
	if _, err := f.service.GenerateAnalyticsReport(context.Background(), donorID.String()); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("GenerateAnalyticsReport: expected ErrNotAdmin, got %v", err)
	}
	if _, err := f.service.ListAllDonations(context.Background(), uuid.NewString()); !errors.Is(err, domain.ErrNotAdmin) {
		t.Fatalf("ListAllDonations: expected ErrNotAdmin for unknown actor, got %v", err)
	}
}

func TestUpdateUserStatus_DeactivatesUser(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")

	updated, err := f.service.UpdateUserStatus(context.Background(), donorID.String(), false, f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected user to be deactivated")
	}
	if f.userRepo.users[donorID.String()].IsActive {
		t.Fatalf("deactivation not persisted")
	}
}

func TestOverrideDonationStatus_StillObeysLifecycle(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")
	donationID := f.addDonation(donorID, 10, domain.DonationStatusAvailable)

	_, err := f.service.OverrideDonationStatus(context.Background(), donationID.String(), domain.DonationStatusDelivered, f.adminID.String())
	if !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}

	updated, err := f.service.OverrideDonationStatus(context.Background(), donationID.String(), domain.DonationStatusRejected, f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.DonationStatusRejected {
		t.Fatalf("expected rejected, got %s", updated.Status)
	}
}

func TestAuditDonation_ApproveAndReject(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")
	donationID := f.addDonation(donorID, 10, domain.DonationStatusAvailable)

	result, err := f.service.AuditDonation(context.Background(), donationID.String(), domain.AuditActionReject, f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.DonationStatusRejected {
		t.Fatalf("expected rejected, got %s", result.Status)
	}

	result, err = f.service.AuditDonation(context.Background(), donationID.String(), domain.AuditActionApprove, f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.DonationStatusAvailable {
		t.Fatalf("expected available, got %s", result.Status)
	}

	if _, err := f.service.AuditDonation(context.Background(), donationID.String(), "escalate", f.adminID.String()); !errors.Is(err, domain.ErrInvalidAuditAction) {
		t.Fatalf("expected ErrInvalidAuditAction, got %v", err)
	}
}

func TestAuditDonation_CannotApproveMidFulfilment(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")

	for _, status := range []string{
		domain.DonationStatusRequested,
		domain.DonationStatusInTransit,
		domain.DonationStatusDelivered,
	} {
		donationID := f.addDonation(donorID, 10, status)
		_, err := f.service.AuditDonation(context.Background(), donationID.String(), domain.AuditActionApprove, f.adminID.String())
		if !errors.Is(err, domain.ErrInvalidStatusTransition) {
			t.Fatalf("approve from %s: expected ErrInvalidStatusTransition, got %v", status, err)
		}
		if got := f.donationRepo.donations[donationID.String()].Status; got != status {
			t.Fatalf("approve from %s: donation status must be untouched, got %s", status, got)
		}
	}
}

func TestAuditDonation_ReopenVoidsApproval(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")
	donationID := f.addDonation(donorID, 10, domain.DonationStatusRejected)

	approvedID := uuid.New()
	f.donationRepo.requests[approvedID.String()] = &entities.DonationRequest{
		ID:         approvedID,
		DonationID: donationID,
		Status:     domain.RequestStatusApproved,
	}

	result, err := f.service.AuditDonation(context.Background(), donationID.String(), domain.AuditActionApprove, f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != domain.DonationStatusAvailable {
		t.Fatalf("expected available, got %s", result.Status)
	}
	if got := f.donationRepo.requests[approvedID.String()].Status; got != domain.RequestStatusCancelled {
		t.Fatalf("reopening must void the prior approval, got %s", got)
	}
}

func TestAuditDonation_CannotRejectDeliveredDonation(t *testing.T) {
	f := newTestFixture()
	donorID := f.addDonor("dave", "Austin")
	donationID := f.addDonation(donorID, 10, domain.DonationStatusDelivered)

	_, err := f.service.AuditDonation(context.Background(), donationID.String(), domain.AuditActionReject, f.adminID.String())
	if !errors.Is(err, domain.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestGenerateAnalyticsReport_Totals(t *testing.T) {
	f := newTestFixture()
	alice := f.addDonor("alice", "Austin")
	bob := f.addDonor("bob", "Boston")

	f.addDonation(alice, 4, domain.DonationStatusDelivered)
	f.addDonation(alice, 6, domain.DonationStatusDelivered)
	f.addDonation(bob, 8, domain.DonationStatusDelivered)
	f.addDonation(bob, 100, domain.DonationStatusAvailable)

	report, err := f.service.GenerateAnalyticsReport(context.Background(), f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalDonations != 4 {
		t.Fatalf("expected 4 donations, got %d", report.TotalDonations)
	}
	if report.TotalFoodSavedKg != 18 {
		t.Fatalf("expected 18kg saved, got %v", report.TotalFoodSavedKg)
	}
	if report.TotalMealsServed != 36 {
		t.Fatalf("expected 36 meals, got %d", report.TotalMealsServed)
	}
}

func TestGenerateAnalyticsReport_TopDonorsCappedAtFive(t *testing.T) {
	f := newTestFixture()

	heavy := f.addDonor("heavy", "Austin")
	for i := 0; i < 3; i++ {
		f.addDonation(heavy, 1, domain.DonationStatusAvailable)
	}
	for i := 0; i < domain.TopDonorsSize+2; i++ {
		donor := f.addDonor(fmt.Sprintf("donor-%d", i), "Boston")
		f.addDonation(donor, 1, domain.DonationStatusAvailable)
	}

	report, err := f.service.GenerateAnalyticsReport(context.Background(), f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.TopDonors) != domain.TopDonorsSize {
		t.Fatalf("expected %d top donors, got %d", domain.TopDonorsSize, len(report.TopDonors))
	}
	if report.TopDonors[0].Username != "heavy" || report.TopDonors[0].TotalDonations != 3 {
		t.Fatalf("expected heavy first with 3 donations, got %s with %d", report.TopDonors[0].Username, report.TopDonors[0].TotalDonations)
	}
}

func TestGenerateAnalyticsReport_GeographicImpactByCity(t *testing.T) {
	f := newTestFixture()
	alice := f.addDonor("alice", "Austin")
	bob := f.addDonor("bob", "Boston")
	carl := f.addDonor("carl", "Austin")

	f.addDonation(alice, 4, domain.DonationStatusDelivered)
	f.addDonation(carl, 6, domain.DonationStatusDelivered)
	f.addDonation(bob, 8, domain.DonationStatusDelivered)
	f.addDonation(bob, 50, domain.DonationStatusExpired)

	report, err := f.service.GenerateAnalyticsReport(context.Background(), f.adminID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.GeographicImpact) != 2 {
		t.Fatalf("expected 2 cities, got %d", len(report.GeographicImpact))
	}
	austin, boston := report.GeographicImpact[0], report.GeographicImpact[1]
	if austin.City != "Austin" || austin.FoodSavedKg != 10 {
		t.Fatalf("expected Austin with 10kg, got %s with %v", austin.City, austin.FoodSavedKg)
	}
	if boston.City != "Boston" || boston.FoodSavedKg != 8 {
		t.Fatalf("expected Boston with 8kg, got %s with %v", boston.City, boston.FoodSavedKg)
	}
}
