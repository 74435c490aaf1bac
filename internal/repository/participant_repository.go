package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/mystfest/registration-backend/internal/models"
	"gorm.io/gorm"
)

var errSlotsFull = errors.New("no free slots")

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

func (r *ParticipantRepository) Create(participant *models.Participant) (*models.Participant, error) {
	result := r.db.Create(participant)
	if result.Error != nil {
		return nil, result.Error
	}
	return participant, nil
}

func (r *ParticipantRepository) GetByID(id uint) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.Preload("Event").First(&participant, id).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

func (r *ParticipantRepository) ExistsByEmailAndEvent(email, eventID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Participant{}).
		Where("email = ? AND event_id = ?", email, eventID).Count(&count).Error
	return count > 0, err
}

func (r *ParticipantRepository) GetByCL(clID string) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Preload("Event").Where("cl_id = ?", clID).
		Order("created_at DESC").Find(&participants).Error
	return participants, err
}

func (r *ParticipantRepository) GetByEvent(eventID string) ([]models.Participant, error) {
	var participants []models.Participant
	err := r.db.Preload("CL").Where("event_id = ?", eventID).
		Order("created_at DESC").Find(&participants).Error
	return participants, err
}

func (r *ParticipantRepository) List(filters models.ParticipantFilters) ([]models.Participant, error) {
	query := r.db.Preload("Event").Preload("CL").Order("created_at DESC")

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.EventID != "" {
		query = query.Where("event_id = ?", filters.EventID)
	}
	if filters.Search != "" {
		like := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(contact) LIKE ?",
			like, like, like,
		)
	}

	var participants []models.Participant
	err := query.Find(&participants).Error
	return participants, err
}

func (r *ParticipantRepository) Updates(id uint, values map[string]interface{}) error {
	return r.db.Model(&models.Participant{}).Where("id = ?", id).Updates(values).Error
}

func (r *ParticipantRepository) Delete(id uint) error {
	return r.db.Delete(&models.Participant{}, id).Error
}

// Approve marks the participant APPROVED and consumes one slot in the same
// transaction. Both updates are conditional: two approvals racing for the
// last slot cannot both commit (the loser sees ok=false), and a row that was
// concurrently deleted or already approved rolls the increment back.
func (r *ParticipantRepository) Approve(id uint, eventID string) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Event{}).
			Where("event_id = ? AND filled_slots < max_slots", eventID).
			UpdateColumn("filled_slots", gorm.Expr("filled_slots + 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errSlotsFull
		}

		result = tx.Model(&models.Participant{}).
			Where("id = ? AND status <> ?", id, models.StatusApproved).
			Updates(map[string]interface{}{
				"status":       models.StatusApproved,
				"submitted_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, errSlotsFull) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RejectApproved releases the participant's slot and rejects it atomically.
// The status predicate makes a repeated reject of the same row a no-op
// instead of a second decrement.
func (r *ParticipantRepository) RejectApproved(id uint, eventID, reason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Participant{}).
			Where("id = ? AND status = ?", id, models.StatusApproved).
			Updates(map[string]interface{}{
				"status":           models.StatusRejected,
				"rejection_reason": reason,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return releaseSlot(tx, eventID)
	})
}

// UpdateApproved applies the owner's edits, resets the row to PENDING and
// releases its slot atomically. An edited registration has to be reviewed
// again. The slot is released only when the row really was APPROVED.
func (r *ParticipantRepository) UpdateApproved(id uint, eventID string, values map[string]interface{}) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		values["status"] = models.StatusPending
		result := tx.Model(&models.Participant{}).
			Where("id = ? AND status = ?", id, models.StatusApproved).
			Updates(values)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return releaseSlot(tx, eventID)
	})
}

// The guard keeps a crash-and-replay or double reject from driving the
// counter below zero.
func releaseSlot(tx *gorm.DB, eventID string) error {
	return tx.Model(&models.Event{}).
		Where("event_id = ? AND filled_slots > 0", eventID).
		UpdateColumn("filled_slots", gorm.Expr("filled_slots - 1")).Error
}
