package service

import (
	"testing"

	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	"gorm.io/gorm"
)

func newEventService(t *testing.T) (*EventService, *gorm.DB) {
	db := setupTestDB(t, t.Name())
	return NewEventService(repository.NewEventRepository(db)), db
}

func TestCreateEventValidatesTeamSize(t *testing.T) {
	svc, _ := newEventService(t)

	_, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Dance", Category: "cultural", MinTeamSize: 5, MaxTeamSize: 2, MaxSlots: 10,
	})
	if err != ErrTeamSizeInvalid {
		t.Fatalf("expected ErrTeamSizeInvalid, got %v", err)
	}

	event, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Dance", Category: "cultural", MinTeamSize: 2, MaxTeamSize: 5, MaxSlots: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if event.EventID == "" {
		t.Fatalf("expected generated eventId")
	}
	if !event.IsActive {
		t.Fatalf("new events should start active")
	}
}

func TestUpdateEventValidation(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Quiz", Category: "tech", MinTeamSize: 1, MaxTeamSize: 2, MaxSlots: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateEvent("no-such-event", models.UpdateEventRequest{}); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}

	minSize, maxSize := 4, 2
	_, err = svc.UpdateEvent(event.EventID, models.UpdateEventRequest{MinTeamSize: &minSize, MaxTeamSize: &maxSize})
	if err != ErrTeamSizeInvalid {
		t.Fatalf("expected ErrTeamSizeInvalid, got %v", err)
	}

	filled, max := 11, 10
	_, err = svc.UpdateEvent(event.EventID, models.UpdateEventRequest{FilledSlots: &filled, MaxSlots: &max})
	if err != ErrSlotsExceedMax {
		t.Fatalf("expected ErrSlotsExceedMax, got %v", err)
	}

	name := "Tech Quiz"
	updated, err := svc.UpdateEvent(event.EventID, models.UpdateEventRequest{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Tech Quiz" {
		t.Fatalf("expected name updated, got %q", updated.Name)
	}
}

func TestAdjustSlots(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Hackathon", Category: "tech", MinTeamSize: 1, MaxTeamSize: 4, MaxSlots: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.AdjustSlots(event.EventID, 10, 12); err != ErrSlotsExceedMax {
		t.Fatalf("expected ErrSlotsExceedMax, got %v", err)
	}
	if _, err := svc.AdjustSlots(event.EventID, -1, 0); err != ErrNegativeSlots {
		t.Fatalf("expected ErrNegativeSlots, got %v", err)
	}
	if _, err := svc.AdjustSlots(event.EventID, 10, -1); err != ErrNegativeSlots {
		t.Fatalf("expected ErrNegativeSlots, got %v", err)
	}

	updated, err := svc.AdjustSlots(event.EventID, 20, 5)
	if err != nil {
		t.Fatalf("adjust: %v", err)
	}
	if updated.MaxSlots != 20 || updated.FilledSlots != 5 {
		t.Fatalf("expected 20/5, got %d/%d", updated.MaxSlots, updated.FilledSlots)
	}
}

func TestToggles(t *testing.T) {
	svc, _ := newEventService(t)

	event, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Debate", Category: "literary", MinTeamSize: 1, MaxTeamSize: 1, MaxSlots: 5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	toggled, err := svc.ToggleActive(event.EventID)
	if err != nil {
		t.Fatalf("toggle active: %v", err)
	}
	if toggled.IsActive {
		t.Fatalf("expected inactive after toggle")
	}

	toggled, err = svc.ToggleLock(event.EventID)
	if err != nil {
		t.Fatalf("toggle lock: %v", err)
	}
	if !toggled.IsLocked {
		t.Fatalf("expected locked after toggle")
	}
}

func TestDeleteEventWithParticipants(t *testing.T) {
	svc, db := newEventService(t)
	cl := seedCL(t, db, "cl@example.com")

	event, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Gaming", Category: "esports", MinTeamSize: 1, MaxTeamSize: 5, MaxSlots: 16,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	participant := models.Participant{
		EventID: event.EventID, CLID: cl.UserID,
		Name: "P", CollegeName: "C", Email: "p@example.com", Contact: "1",
		AadhaarFileURL: "https://x/a", IDFileURL: "https://x/b",
		Status: models.StatusRejected,
	}
	if err := db.Create(&participant).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}

	// Any participant row blocks deletion, whatever its status.
	if err := svc.DeleteEvent(event.EventID); err != ErrEventHasParticipants {
		t.Fatalf("expected ErrEventHasParticipants, got %v", err)
	}
	if _, err := svc.GetEvent(event.EventID); err != nil {
		t.Fatalf("event should still exist: %v", err)
	}

	if err := db.Delete(&participant).Error; err != nil {
		t.Fatalf("remove participant: %v", err)
	}
	if err := svc.DeleteEvent(event.EventID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetEvent(event.EventID); err != ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound after delete, got %v", err)
	}
}

func TestListEventsComputesCounts(t *testing.T) {
	svc, db := newEventService(t)
	cl := seedCL(t, db, "cl@example.com")

	event, err := svc.CreateEvent(models.CreateEventRequest{
		Name: "Chess", Category: "boardgame", MinTeamSize: 1, MaxTeamSize: 1, MaxSlots: 10,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	statuses := []models.Status{models.StatusApproved, models.StatusApproved, models.StatusPending, models.StatusRejected}
	for i, status := range statuses {
		p := models.Participant{
			EventID: event.EventID, CLID: cl.UserID,
			Name: "P", CollegeName: "C", Email: string(rune('a'+i)) + "@example.com", Contact: "1",
			AadhaarFileURL: "https://x/a", IDFileURL: "https://x/b",
			Status: status,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed participant %d: %v", i, err)
		}
	}

	// The stored counter is deliberately stale; the listing ignores it.
	if err := db.Model(&models.Event{}).Where("event_id = ?", event.EventID).
		Update("filled_slots", 9).Error; err != nil {
		t.Fatalf("stale counter: %v", err)
	}

	items, err := svc.ListEvents("")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 event, got %d", len(items))
	}
	if items[0].FilledSlots != 2 {
		t.Fatalf("expected computed filledSlots=2, got %d", items[0].FilledSlots)
	}
	if items[0].PendingCount != 1 {
		t.Fatalf("expected pendingCount=1, got %d", items[0].PendingCount)
	}

	filtered, err := svc.ListEvents("nope")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 0 {
		t.Fatalf("expected no events for unknown category, got %d", len(filtered))
	}
}
