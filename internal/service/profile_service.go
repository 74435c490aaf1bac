package service

import (
	"errors"

	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProfileExists          = errors.New("profile already exists")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrProfileNotRejected     = errors.New("can only update rejected profiles")
	ErrProfileAlreadyApproved = errors.New("profile already approved")
	ErrProfileAlreadyRejected = errors.New("profile already rejected")
)

type ProfileService struct {
	profileRepo *repository.ProfileRepository
	userRepo    *repository.UserRepository
	mailer      Mailer
}

func NewProfileService(profileRepo *repository.ProfileRepository, userRepo *repository.UserRepository, mailer Mailer) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

func (s *ProfileService) CreateProfile(userID string, req models.CreateProfileRequest) (*models.Profile, error) {
	if _, err := s.profileRepo.GetByUserID(userID); err == nil {
		return nil, ErrProfileExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	profile := &models.Profile{
		UserID:         userID,
		Contact:        req.Contact,
		AadhaarFileURL: req.AadhaarFileURL,
		CollegeIDURL:   req.CollegeIDURL,
		CollegeName:    req.CollegeName,
		Status:         models.StatusPending,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetMyProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile lets an owner resubmit after rejection; the resubmission
// goes back to the review queue as PENDING.
func (s *ProfileService) UpdateProfile(userID string, req models.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetMyProfile(userID)
	if err != nil {
		return nil, err
	}

	if profile.Status != models.StatusRejected {
		return nil, ErrProfileNotRejected
	}

	values := map[string]interface{}{"status": models.StatusPending}
	if req.Contact != nil {
		values["contact"] = *req.Contact
	}
	if req.AadhaarFileURL != nil {
		values["aadhaar_file_url"] = *req.AadhaarFileURL
	}
	if req.CollegeIDURL != nil {
		values["college_id_url"] = *req.CollegeIDURL
	}
	if req.CollegeName != nil {
		values["college_name"] = *req.CollegeName
	}

	if err := s.profileRepo.Updates(profile.ID, values); err != nil {
		return nil, err
	}
	return s.profileRepo.GetByUserID(userID)
}

func (s *ProfileService) GetAllProfiles(status models.Status, search string) ([]models.ProfileWithUser, error) {
	return s.profileRepo.List(status, search)
}

func (s *ProfileService) GetProfileByID(id uint) (*models.ProfileWithUser, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(profile.UserID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileWithUser{
		Profile: *profile,
		User: models.UserSummary{
			UserID: user.UserID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		},
	}, nil
}

func (s *ProfileService) ApproveProfile(id uint) (*models.Profile, error) {
	profile, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if profile.Status == models.StatusApproved {
		return nil, ErrProfileAlreadyApproved
	}

	if err := s.profileRepo.Updates(id, map[string]interface{}{"status": models.StatusApproved}); err != nil {
		return nil, err
	}

	s.notify(profile.UserID, string(models.StatusApproved), "")

	return s.profileRepo.GetByID(id)
}

func (s *ProfileService) RejectProfile(id uint, reason string) (*models.Profile, error) {
	profile, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if profile.Status == models.StatusRejected {
		return nil, ErrProfileAlreadyRejected
	}

	err = s.profileRepo.Updates(id, map[string]interface{}{
		"status":           models.StatusRejected,
		"rejection_reason": reason,
	})
	if err != nil {
		return nil, err
	}

	s.notify(profile.UserID, string(models.StatusRejected), reason)

	return s.profileRepo.GetByID(id)
}

func (s *ProfileService) getByID(id uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) notify(userID, status, reason string) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return
	}
	go s.mailer.SendProfileStatusEmail(user.Email, user.Name, status, reason)
}
