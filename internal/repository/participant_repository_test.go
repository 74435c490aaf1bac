package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mystfest/registration-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Event{}, &models.Participant{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedSlotEvent(t *testing.T, db *gorm.DB, maxSlots int) *models.Event {
	event := models.Event{
		Name:        "Robotics",
		Category:    "tech",
		MinTeamSize: 1,
		MaxTeamSize: 4,
		MaxSlots:    maxSlots,
		IsActive:    true,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return &event
}

func seedPendingParticipant(t *testing.T, db *gorm.DB, event *models.Event, email string) *models.Participant {
	participant := models.Participant{
		EventID: event.EventID, CLID: "cl-1",
		Name: "P", CollegeName: "C", Email: email, Contact: "1",
		AadhaarFileURL: "https://x/a", IDFileURL: "https://x/b",
		Status: models.StatusPending,
	}
	if err := db.Create(&participant).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return &participant
}

func filledSlots(t *testing.T, db *gorm.DB, eventID string) int {
	t.Helper()
	var event models.Event
	if err := db.Where("event_id = ?", eventID).First(&event).Error; err != nil {
		t.Fatalf("load event: %v", err)
	}
	return event.FilledSlots
}

// A row deleted between the admin's read and the approval must roll the
// slot increment back with it.
func TestApproveRollsBackWhenParticipantMissing(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewParticipantRepository(db)
	event := seedSlotEvent(t, db, 2)

	ok, err := repo.Approve(999, event.EventID)
	if ok {
		t.Fatalf("approve of a missing row must not report success")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if got := filledSlots(t, db, event.EventID); got != 0 {
		t.Fatalf("increment should be rolled back, filled_slots=%d", got)
	}
}

func TestApproveRefusesAlreadyApprovedRow(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewParticipantRepository(db)
	event := seedSlotEvent(t, db, 3)
	p := seedPendingParticipant(t, db, event, "p@example.com")

	if ok, err := repo.Approve(p.ID, event.EventID); err != nil || !ok {
		t.Fatalf("first approve: ok=%v err=%v", ok, err)
	}

	ok, err := repo.Approve(p.ID, event.EventID)
	if ok {
		t.Fatalf("second approve of the same row must not report success")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if got := filledSlots(t, db, event.EventID); got != 1 {
		t.Fatalf("expected one slot consumed, filled_slots=%d", got)
	}
}

// Two admins rejecting the same approved row must release the slot once.
func TestRejectApprovedReleasesSlotExactlyOnce(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewParticipantRepository(db)
	event := seedSlotEvent(t, db, 2)
	p1 := seedPendingParticipant(t, db, event, "p1@example.com")
	p2 := seedPendingParticipant(t, db, event, "p2@example.com")

	for _, p := range []*models.Participant{p1, p2} {
		if ok, err := repo.Approve(p.ID, event.EventID); err != nil || !ok {
			t.Fatalf("approve %d: ok=%v err=%v", p.ID, ok, err)
		}
	}

	if err := repo.RejectApproved(p1.ID, event.EventID, "first"); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if !errors.Is(repo.RejectApproved(p1.ID, event.EventID, "second"), gorm.ErrRecordNotFound) {
		t.Fatalf("repeated reject must not run a second decrement")
	}

	if got := filledSlots(t, db, event.EventID); got != 1 {
		t.Fatalf("p2 still holds a slot, filled_slots=%d", got)
	}

	var got models.Participant
	if err := db.First(&got, p1.ID).Error; err != nil {
		t.Fatalf("load p1: %v", err)
	}
	if got.RejectionReason != "first" {
		t.Fatalf("repeated reject must not overwrite the committed reason, got %q", got.RejectionReason)
	}
}

func TestUpdateApprovedRequiresApprovedRow(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewParticipantRepository(db)
	event := seedSlotEvent(t, db, 2)
	p := seedPendingParticipant(t, db, event, "p@example.com")

	err := repo.UpdateApproved(p.ID, event.EventID, map[string]interface{}{"name": "Edited"})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for pending row, got %v", err)
	}
	if got := filledSlots(t, db, event.EventID); got != 0 {
		t.Fatalf("no slot to release, filled_slots=%d", got)
	}
}
