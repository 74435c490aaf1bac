package service

import (
	"errors"

	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	jwtPkg "github.com/mystfest/registration-backend/pkg/jwt"
	"github.com/mystfest/registration-backend/pkg/supabase"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInvalidProviderToken = errors.New("invalid supabase token")
	ErrUserBlocked          = errors.New("your account has been blocked, please contact support")
	ErrAlreadyRegistered    = errors.New("you have already registered, cannot register again")
	ErrUserNotFound         = errors.New("user not found")
)

// IdentityProvider resolves an external access token to a verified identity.
type IdentityProvider interface {
	GetUser(accessToken string) (*supabase.ProviderUser, error)
}

type AuthService struct {
	userRepo *repository.UserRepository
	provider IdentityProvider
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, provider IdentityProvider, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		provider: provider,
		logger:   logger,
	}
}

// ValidateToken exchanges a Supabase access token for a local session. The
// local user row is created on first sight; the registration type may be set
// exactly once and never after a profile exists.
func (s *AuthService) ValidateToken(accessToken string, regType models.RegistrationType) (*models.AuthResponse, error) {
	providerUser, err := s.provider.GetUser(accessToken)
	if err != nil {
		s.logger.Warn("token exchange failed", zap.Error(err))
		return nil, ErrInvalidProviderToken
	}

	blocked, err := s.userRepo.IsBlocked(providerUser.Email)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, ErrUserBlocked
	}

	user, err := s.userRepo.GetByEmail(providerUser.Email)
	switch {
	case err == gorm.ErrRecordNotFound:
		user = &models.User{
			Email:            providerUser.Email,
			Name:             providerUser.FullName,
			Role:             determineRole(regType),
			RegistrationType: regType,
		}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		s.logger.Info("user created",
			zap.String("user_id", user.UserID),
			zap.String("role", string(user.Role)))
	case err != nil:
		return nil, err
	default:
		if user.Profile != nil && regType != "" {
			return nil, ErrAlreadyRegistered
		}
		if regType != "" && user.RegistrationType == "" {
			if err := s.userRepo.SetRegistrationType(user.UserID, regType); err != nil {
				return nil, err
			}
			user.RegistrationType = regType
		}
	}

	token, err := jwtPkg.GenerateToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// ValidateUser is the per-request session check: the user must still exist
// and must not have been blocked since the token was issued.
func (s *AuthService) ValidateUser(userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}
	return user, nil
}

func (s *AuthService) GetUserInfo(userID string) (*models.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	info := &models.UserInfo{
		UserID:           user.UserID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		RegistrationType: user.RegistrationType,
		IsBlocked:        user.IsBlocked,
	}
	if user.Profile != nil {
		info.Profile = &models.ProfileSummary{
			ID:          user.Profile.ID,
			Contact:     user.Profile.Contact,
			CollegeName: user.Profile.CollegeName,
			Status:      user.Profile.Status,
		}
	}
	return info, nil
}

// CanAccessDashboard: admins always, everyone else needs an approved profile.
func (s *AuthService) CanAccessDashboard(userID string) (bool, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false, nil
	}
	if user.Role == models.RoleAdmin {
		return true, nil
	}
	if user.Profile == nil {
		return false, nil
	}
	return user.Profile.Status == models.StatusApproved, nil
}

func (s *AuthService) BlockUser(userID string) error {
	if err := s.userRepo.SetBlocked(userID, true); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}
	s.logger.Info("user blocked", zap.String("user_id", userID))
	return nil
}

func (s *AuthService) UnblockUser(userID string) error {
	if err := s.userRepo.SetBlocked(userID, false); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrUserNotFound
		}
		return err
	}
	s.logger.Info("user unblocked", zap.String("user_id", userID))
	return nil
}

func determineRole(regType models.RegistrationType) models.Role {
	if regType == models.RegistrationPrincipal {
		return models.RolePRNC
	}
	return models.RoleCL
}
