package repository

import (
	"github.com/mystfest/registration-backend/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(userID string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Profile").Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetRegistrationType(userID string, regType models.RegistrationType) error {
	return r.db.Model(&models.User{}).Where("user_id = ?", userID).
		Update("registration_type", regType).Error
}

func (r *UserRepository) SetBlocked(userID string, blocked bool) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).
		Update("is_blocked", blocked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) IsBlocked(email string) (bool, error) {
	var user models.User
	err := r.db.Select("is_blocked").Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsBlocked, nil
}
