package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	EventID      string        `json:"eventId" gorm:"type:varchar(36);unique;not null"`
	Name         string        `json:"name" gorm:"not null"`
	Category     string        `json:"category" gorm:"not null"`
	Description  string        `json:"description"`
	MinTeamSize  int           `json:"min_team_size" gorm:"not null;default:1"`
	MaxTeamSize  int           `json:"max_team_size" gorm:"not null;default:1"`
	MaxSlots     int           `json:"max_slots" gorm:"not null"`
	FilledSlots  int           `json:"filled_slots" gorm:"not null;default:0"`
	IsActive     bool          `json:"is_active" gorm:"not null;default:true"`
	IsLocked     bool          `json:"is_locked" gorm:"not null;default:false"`
	Participants []Participant `json:"participants,omitempty" gorm:"foreignKey:EventID;references:EventID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	return nil
}

type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description"`
	MinTeamSize int    `json:"min_team_size" validate:"required,min=1"`
	MaxTeamSize int    `json:"max_team_size" validate:"required,min=1"`
	MaxSlots    int    `json:"max_slots" validate:"required,min=1"`
}

type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	MinTeamSize *int    `json:"min_team_size" validate:"omitempty,min=1"`
	MaxTeamSize *int    `json:"max_team_size" validate:"omitempty,min=1"`
	MaxSlots    *int    `json:"max_slots" validate:"omitempty,min=1"`
	FilledSlots *int    `json:"filled_slots" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
	IsLocked    *bool   `json:"is_locked"`
}

type AdjustSlotsRequest struct {
	MaxSlots    int `json:"max_slots"`
	FilledSlots int `json:"filled_slots"`
}

// EventListItem is the listing view. FilledSlots and PendingCount are
// computed from the participant rows rather than read from the stored
// counter, so stale counters never reach the dashboard.
type EventListItem struct {
	ID           uint      `json:"id"`
	EventID      string    `json:"eventId"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	MinTeamSize  int       `json:"min_team_size"`
	MaxTeamSize  int       `json:"max_team_size"`
	MaxSlots     int       `json:"max_slots"`
	FilledSlots  int       `json:"filled_slots"`
	PendingCount int       `json:"pending_count"`
	IsActive     bool      `json:"is_active"`
	IsLocked     bool      `json:"is_locked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
