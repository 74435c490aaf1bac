package repository

import (
	"strings"

	"github.com/mystfest/registration-backend/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepository) GetByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Updates(id uint, values map[string]interface{}) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(values).Error
}

// List returns profiles with their owners, optionally narrowed by status and
// a case-insensitive substring over college name, contact and owner email.
func (r *ProfileRepository) List(status models.Status, search string) ([]models.ProfileWithUser, error) {
	query := r.db.Model(&models.Profile{}).
		Select("profiles.*").
		Joins("JOIN users ON users.user_id = profiles.user_id").
		Order("profiles.created_at DESC")

	if status != "" {
		query = query.Where("profiles.status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(profiles.college_name) LIKE ? OR profiles.contact LIKE ? OR LOWER(users.email) LIKE ?",
			like, "%"+search+"%", like,
		)
	}

	var profiles []models.Profile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return []models.ProfileWithUser{}, nil
	}

	userIDs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		userIDs = append(userIDs, p.UserID)
	}
	var users []models.User
	if err := r.db.Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	owners := make(map[string]models.User, len(users))
	for _, u := range users {
		owners[u.UserID] = u
	}

	results := make([]models.ProfileWithUser, 0, len(profiles))
	for _, p := range profiles {
		u := owners[p.UserID]
		results = append(results, models.ProfileWithUser{
			Profile: p,
			User: models.UserSummary{
				UserID: u.UserID,
				Email:  u.Email,
				Name:   u.Name,
				Role:   u.Role,
			},
		})
	}
	return results, nil
}
