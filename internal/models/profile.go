package models

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Profile struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"userId" gorm:"type:varchar(36);unique;not null"`
	Contact         string    `json:"contact" gorm:"not null"`
	AadhaarFileURL  string    `json:"aadhaar_file_url" gorm:"not null"`
	CollegeIDURL    string    `json:"college_id_url" gorm:"not null"`
	CollegeName     string    `json:"college_name" gorm:"not null"`
	Status          Status    `json:"status" gorm:"type:varchar(10);not null;default:'PENDING'"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateProfileRequest struct {
	Contact        string `json:"contact" validate:"required,len=10,numeric"`
	AadhaarFileURL string `json:"aadhaar_file_url" validate:"required,url"`
	CollegeIDURL   string `json:"college_id_url" validate:"required,url"`
	CollegeName    string `json:"college_name" validate:"required,min=3,max=200"`
}

type UpdateProfileRequest struct {
	Contact        *string `json:"contact" validate:"omitempty,len=10,numeric"`
	AadhaarFileURL *string `json:"aadhaar_file_url" validate:"omitempty,url"`
	CollegeIDURL   *string `json:"college_id_url" validate:"omitempty,url"`
	CollegeName    *string `json:"college_name" validate:"omitempty,min=3,max=200"`
}

type RejectProfileRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

// ProfileWithUser is the admin review view: the submission plus its owner.
type ProfileWithUser struct {
	Profile
	User UserSummary `json:"user"`
}

type UserSummary struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}
