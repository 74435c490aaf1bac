package repository

import (
	"github.com/mystfest/registration-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByEventID(eventID string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("event_id = ?", eventID).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetWithParticipants(eventID string) (*models.Event, error) {
	var event models.Event
	err := r.db.Preload("Participants").Preload("Participants.CL").
		Where("event_id = ?", eventID).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) List(category string) ([]models.Event, error) {
	var events []models.Event
	query := r.db.Preload("Participants").Order("created_at DESC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&events).Error
	return events, err
}

func (r *EventRepository) Updates(eventID string, values map[string]interface{}) error {
	return r.db.Model(&models.Event{}).Where("event_id = ?", eventID).Updates(values).Error
}

func (r *EventRepository) Delete(eventID string) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.Event{}).Error
}

func (r *EventRepository) CountParticipants(eventID string) (int64, error) {
	var count int64
	result := r.db.Model(&models.Participant{}).Where("event_id = ?", eventID).Count(&count)
	return count, result.Error
}
