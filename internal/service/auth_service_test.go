package service

import (
	"testing"

	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	"github.com/mystfest/registration-backend/pkg/supabase"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeProvider struct {
	users map[string]*supabase.ProviderUser
}

func (p *fakeProvider) GetUser(accessToken string) (*supabase.ProviderUser, error) {
	user, ok := p.users[accessToken]
	if !ok {
		return nil, supabase.ErrInvalidToken
	}
	return user, nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeProvider, *gorm.DB) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t, t.Name())
	provider := &fakeProvider{users: map[string]*supabase.ProviderUser{
		"good-token": {ID: "sb-1", Email: "leader@example.com", FullName: "Team Leader"},
	}}
	svc := NewAuthService(repository.NewUserRepository(db), provider, zap.NewNop())
	return svc, provider, db
}

func TestValidateTokenCreatesUserOnce(t *testing.T) {
	svc, _, db := newAuthService(t)

	if _, err := svc.ValidateToken("bad-token", ""); err != ErrInvalidProviderToken {
		t.Fatalf("expected ErrInvalidProviderToken, got %v", err)
	}

	resp, err := svc.ValidateToken("good-token", "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected session token issued")
	}
	if resp.User.Role != models.RoleCL {
		t.Fatalf("default role should be CL, got %s", resp.User.Role)
	}

	// Second exchange reuses the same row.
	if _, err := svc.ValidateToken("good-token", ""); err != nil {
		t.Fatalf("revalidate: %v", err)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user, got %d", count)
	}
}

func TestValidateTokenRoleFromRegistrationType(t *testing.T) {
	svc, provider, _ := newAuthService(t)
	provider.users["prnc-token"] = &supabase.ProviderUser{ID: "sb-2", Email: "prnc@example.com", FullName: "Principal"}

	resp, err := svc.ValidateToken("prnc-token", models.RegistrationPrincipal)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if resp.User.Role != models.RolePRNC {
		t.Fatalf("PRINCIPAL registration should map to PRNC, got %s", resp.User.Role)
	}
	if resp.User.RegistrationType != models.RegistrationPrincipal {
		t.Fatalf("registration type not stored")
	}
}

func TestRegistrationTypeSetExactlyOnce(t *testing.T) {
	svc, _, db := newAuthService(t)

	if _, err := svc.ValidateToken("good-token", ""); err != nil {
		t.Fatalf("first exchange: %v", err)
	}

	// Supplied later, set once.
	resp, err := svc.ValidateToken("good-token", models.RegistrationContingent)
	if err != nil {
		t.Fatalf("second exchange: %v", err)
	}
	if resp.User.RegistrationType != models.RegistrationContingent {
		t.Fatalf("registration type should be set, got %q", resp.User.RegistrationType)
	}

	// A profile exists now; another registration attempt must fail.
	profile := models.Profile{
		UserID: resp.User.UserID, Contact: "1", AadhaarFileURL: "https://x/a",
		CollegeIDURL: "https://x/b", CollegeName: "C", Status: models.StatusPending,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if _, err := svc.ValidateToken("good-token", models.RegistrationContingent); err != ErrAlreadyRegistered {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Without a registration type the exchange still works, the stored
	// type is untouched.
	again, err := svc.ValidateToken("good-token", "")
	if err != nil {
		t.Fatalf("plain exchange: %v", err)
	}
	if again.User.RegistrationType != models.RegistrationContingent {
		t.Fatalf("stored registration type changed to %q", again.User.RegistrationType)
	}
}

func TestBlockedUserRefused(t *testing.T) {
	svc, _, db := newAuthService(t)

	resp, err := svc.ValidateToken("good-token", "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	if err := svc.BlockUser(resp.User.UserID); err != nil {
		t.Fatalf("block: %v", err)
	}
	if _, err := svc.ValidateToken("good-token", ""); err != ErrUserBlocked {
		t.Fatalf("expected ErrUserBlocked on exchange, got %v", err)
	}
	if _, err := svc.ValidateUser(resp.User.UserID); err != ErrUserBlocked {
		t.Fatalf("expected ErrUserBlocked on session check, got %v", err)
	}

	if err := svc.UnblockUser(resp.User.UserID); err != nil {
		t.Fatalf("unblock: %v", err)
	}
	if _, err := svc.ValidateToken("good-token", ""); err != nil {
		t.Fatalf("exchange after unblock: %v", err)
	}

	var blocked models.User
	db.Where("user_id = ?", resp.User.UserID).First(&blocked)
	if blocked.IsBlocked {
		t.Fatalf("user should be unblocked")
	}

	if err := svc.BlockUser("no-such-user"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCanAccessDashboard(t *testing.T) {
	svc, _, db := newAuthService(t)

	resp, err := svc.ValidateToken("good-token", "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	// No profile yet.
	if ok, _ := svc.CanAccessDashboard(resp.User.UserID); ok {
		t.Fatalf("no profile should mean no dashboard")
	}

	profile := models.Profile{
		UserID: resp.User.UserID, Contact: "1", AadhaarFileURL: "https://x/a",
		CollegeIDURL: "https://x/b", CollegeName: "C", Status: models.StatusPending,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if ok, _ := svc.CanAccessDashboard(resp.User.UserID); ok {
		t.Fatalf("pending profile should mean no dashboard")
	}

	if err := db.Model(&profile).Update("status", models.StatusApproved).Error; err != nil {
		t.Fatalf("approve profile: %v", err)
	}
	if ok, _ := svc.CanAccessDashboard(resp.User.UserID); !ok {
		t.Fatalf("approved profile should grant dashboard")
	}

	admin := models.User{Email: "admin@example.com", Name: "Admin", Role: models.RoleAdmin}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	if ok, _ := svc.CanAccessDashboard(admin.UserID); !ok {
		t.Fatalf("admins always access the dashboard")
	}

	if ok, _ := svc.CanAccessDashboard("ghost"); ok {
		t.Fatalf("unknown user should not access the dashboard")
	}
}

func TestGetUserInfoIncludesProfileSummary(t *testing.T) {
	svc, _, db := newAuthService(t)

	resp, err := svc.ValidateToken("good-token", "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	info, err := svc.GetUserInfo(resp.User.UserID)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Profile != nil {
		t.Fatalf("expected nil profile summary before submission")
	}

	profile := models.Profile{
		UserID: resp.User.UserID, Contact: "9876543210", AadhaarFileURL: "https://x/a",
		CollegeIDURL: "https://x/b", CollegeName: "Some College", Status: models.StatusPending,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	info, err = svc.GetUserInfo(resp.User.UserID)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Profile == nil || info.Profile.CollegeName != "Some College" {
		t.Fatalf("expected profile summary, got %+v", info.Profile)
	}
}
