package models

import (
	"time"
)

type Participant struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	EventID         string     `json:"eventId" gorm:"type:varchar(36);not null;uniqueIndex:idx_participant_email_event"`
	CLID            string     `json:"clId" gorm:"column:cl_id;type:varchar(36);not null"`
	Name            string     `json:"name" gorm:"not null"`
	CollegeName     string     `json:"college_name" gorm:"not null"`
	Email           string     `json:"email" gorm:"not null;uniqueIndex:idx_participant_email_event"`
	Contact         string     `json:"contact" gorm:"not null"`
	AadhaarFileURL  string     `json:"aadhaar_file_url" gorm:"not null"`
	IDFileURL       string     `json:"id_file_url" gorm:"not null"`
	Status          Status     `json:"status" gorm:"type:varchar(10);not null;default:'PENDING'"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	SubmittedAt     *time.Time `json:"submitted_at,omitempty"`
	Event           *Event     `json:"event,omitempty" gorm:"foreignKey:EventID;references:EventID"`
	CL              *User      `json:"cl,omitempty" gorm:"foreignKey:CLID;references:UserID"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type CreateParticipantRequest struct {
	Name           string `json:"name" validate:"required"`
	CollegeName    string `json:"college_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Contact        string `json:"contact" validate:"required"`
	AadhaarFileURL string `json:"aadhaar_file_url" validate:"required,url"`
	IDFileURL      string `json:"id_file_url" validate:"required,url"`
	EventID        string `json:"eventId" validate:"required"`
}

type UpdateParticipantRequest struct {
	Name           *string `json:"name"`
	CollegeName    *string `json:"college_name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Contact        *string `json:"contact"`
	AadhaarFileURL *string `json:"aadhaar_file_url" validate:"omitempty,url"`
	IDFileURL      *string `json:"id_file_url" validate:"omitempty,url"`
}

type RejectParticipantRequest struct {
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

// ParticipantFilters narrows the admin listing. Search matches
// name/email/contact as a case-insensitive substring.
type ParticipantFilters struct {
	Status  Status
	EventID string
	Search  string
}
