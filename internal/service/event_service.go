package service

import (
	"errors"

	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrTeamSizeInvalid      = errors.New("minimum team size cannot be greater than max team size")
	ErrSlotsExceedMax       = errors.New("filled slots cannot exceed max slots")
	ErrNegativeSlots        = errors.New("slots cannot be negative")
	ErrEventHasParticipants = errors.New("cannot delete event with existing participants")
)

type EventService struct {
	eventRepo *repository.EventRepository
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

// ListEvents derives the displayed slot usage from the participant rows so
// the dashboard never shows a stale counter.
func (s *EventService) ListEvents(category string) ([]models.EventListItem, error) {
	events, err := s.eventRepo.List(category)
	if err != nil {
		return nil, err
	}

	items := make([]models.EventListItem, 0, len(events))
	for _, event := range events {
		var approved, pending int
		for _, p := range event.Participants {
			switch p.Status {
			case models.StatusApproved:
				approved++
			case models.StatusPending:
				pending++
			}
		}
		items = append(items, models.EventListItem{
			ID:           event.ID,
			EventID:      event.EventID,
			Name:         event.Name,
			Category:     event.Category,
			Description:  event.Description,
			MinTeamSize:  event.MinTeamSize,
			MaxTeamSize:  event.MaxTeamSize,
			MaxSlots:     event.MaxSlots,
			FilledSlots:  approved,
			PendingCount: pending,
			IsActive:     event.IsActive,
			IsLocked:     event.IsLocked,
			CreatedAt:    event.CreatedAt,
			UpdatedAt:    event.UpdatedAt,
		})
	}
	return items, nil
}

func (s *EventService) GetEvent(eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetWithParticipants(eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *EventService) CreateEvent(req models.CreateEventRequest) (*models.Event, error) {
	if req.MinTeamSize > req.MaxTeamSize {
		return nil, ErrTeamSizeInvalid
	}

	event := &models.Event{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		MinTeamSize: req.MinTeamSize,
		MaxTeamSize: req.MaxTeamSize,
		MaxSlots:    req.MaxSlots,
		IsActive:    true,
	}
	return s.eventRepo.Create(event)
}

func (s *EventService) UpdateEvent(eventID string, req models.UpdateEventRequest) (*models.Event, error) {
	if _, err := s.getByEventID(eventID); err != nil {
		return nil, err
	}

	if req.MinTeamSize != nil && req.MaxTeamSize != nil && *req.MinTeamSize > *req.MaxTeamSize {
		return nil, ErrTeamSizeInvalid
	}
	if req.FilledSlots != nil && req.MaxSlots != nil && *req.FilledSlots > *req.MaxSlots {
		return nil, ErrSlotsExceedMax
	}

	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Category != nil {
		values["category"] = *req.Category
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.MinTeamSize != nil {
		values["min_team_size"] = *req.MinTeamSize
	}
	if req.MaxTeamSize != nil {
		values["max_team_size"] = *req.MaxTeamSize
	}
	if req.MaxSlots != nil {
		values["max_slots"] = *req.MaxSlots
	}
	if req.FilledSlots != nil {
		values["filled_slots"] = *req.FilledSlots
	}
	if req.IsActive != nil {
		values["is_active"] = *req.IsActive
	}
	if req.IsLocked != nil {
		values["is_locked"] = *req.IsLocked
	}

	if len(values) > 0 {
		if err := s.eventRepo.Updates(eventID, values); err != nil {
			return nil, err
		}
	}
	return s.getByEventID(eventID)
}

func (s *EventService) AdjustSlots(eventID string, maxSlots, filledSlots int) (*models.Event, error) {
	if _, err := s.getByEventID(eventID); err != nil {
		return nil, err
	}

	if filledSlots < 0 || maxSlots < 0 {
		return nil, ErrNegativeSlots
	}
	if filledSlots > maxSlots {
		return nil, ErrSlotsExceedMax
	}

	err := s.eventRepo.Updates(eventID, map[string]interface{}{
		"max_slots":    maxSlots,
		"filled_slots": filledSlots,
	})
	if err != nil {
		return nil, err
	}
	return s.getByEventID(eventID)
}

// ToggleActive flips the registration switch. Read-modify-write; a pair of
// concurrent toggles is last-write-wins, which is acceptable for an admin
// switch.
func (s *EventService) ToggleActive(eventID string) (*models.Event, error) {
	event, err := s.getByEventID(eventID)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Updates(eventID, map[string]interface{}{"is_active": !event.IsActive}); err != nil {
		return nil, err
	}
	return s.getByEventID(eventID)
}

func (s *EventService) ToggleLock(eventID string) (*models.Event, error) {
	event, err := s.getByEventID(eventID)
	if err != nil {
		return nil, err
	}

	if err := s.eventRepo.Updates(eventID, map[string]interface{}{"is_locked": !event.IsLocked}); err != nil {
		return nil, err
	}
	return s.getByEventID(eventID)
}

// DeleteEvent refuses while any participant row, whatever its status, still
// references the event.
func (s *EventService) DeleteEvent(eventID string) error {
	if _, err := s.getByEventID(eventID); err != nil {
		return err
	}

	count, err := s.eventRepo.CountParticipants(eventID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEventHasParticipants
	}

	return s.eventRepo.Delete(eventID)
}

func (s *EventService) getByEventID(eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetByEventID(eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}
