package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleCL    Role = "CL"
	RolePRNC  Role = "PRNC"
)

type RegistrationType string

const (
	RegistrationContingent RegistrationType = "CONTINGENT"
	RegistrationPrincipal  RegistrationType = "PRINCIPAL"
)

type User struct {
	UserID           string           `json:"userId" gorm:"primaryKey;type:varchar(36)"`
	Email            string           `json:"email" gorm:"unique;not null"`
	Name             string           `json:"name" gorm:"not null"`
	Role             Role             `json:"role" gorm:"type:varchar(10);not null;default:'CL'"`
	RegistrationType RegistrationType `json:"registration_type,omitempty" gorm:"type:varchar(20)"`
	IsBlocked        bool             `json:"is_blocked" gorm:"not null;default:false"`
	Profile          *Profile         `json:"profile,omitempty" gorm:"foreignKey:UserID;references:UserID"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
