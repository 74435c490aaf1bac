package service

import (
	"errors"

	"github.com/mystfest/registration-backend/internal/models"
	"github.com/mystfest/registration-backend/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound   = errors.New("participant not found")
	ErrEventClosed           = errors.New("event is not accepting registrations")
	ErrDuplicateRegistration = errors.New("this email is already registered for this event")
	ErrParticipantApproved   = errors.New("participant already approved")
	ErrEventFull             = errors.New("event is full")
	ErrNotParticipantOwner   = errors.New("you can only manage your own participants")
	ErrParticipantNotPending = errors.New("cannot delete reviewed participants")
)

type ParticipantService struct {
	participantRepo *repository.ParticipantRepository
	eventRepo       *repository.EventRepository
	mailer          Mailer
	logger          *zap.Logger
}

func NewParticipantService(participantRepo *repository.ParticipantRepository, eventRepo *repository.EventRepository, mailer Mailer, logger *zap.Logger) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		eventRepo:       eventRepo,
		mailer:          mailer,
		logger:          logger,
	}
}

func (s *ParticipantService) CreateParticipant(clID string, req models.CreateParticipantRequest) (*models.Participant, error) {
	event, err := s.eventRepo.GetByEventID(req.EventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if !event.IsActive || event.IsLocked {
		return nil, ErrEventClosed
	}

	exists, err := s.participantRepo.ExistsByEmailAndEvent(req.Email, req.EventID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateRegistration
	}

	participant := &models.Participant{
		EventID:        req.EventID,
		CLID:           clID,
		Name:           req.Name,
		CollegeName:    req.CollegeName,
		Email:          req.Email,
		Contact:        req.Contact,
		AadhaarFileURL: req.AadhaarFileURL,
		IDFileURL:      req.IDFileURL,
		Status:         models.StatusPending,
	}
	return s.participantRepo.Create(participant)
}

func (s *ParticipantService) GetMyParticipants(clID string) ([]models.Participant, error) {
	return s.participantRepo.GetByCL(clID)
}

func (s *ParticipantService) GetParticipantsByEvent(eventID string) ([]models.Participant, error) {
	return s.participantRepo.GetByEvent(eventID)
}

func (s *ParticipantService) GetAllParticipants(filters models.ParticipantFilters) ([]models.Participant, error) {
	return s.participantRepo.List(filters)
}

// ApproveParticipant consumes one slot for the participant's event. The
// capacity check against the stored counter happens twice: here, for the
// clean error, and inside the repository transaction, where the conditional
// increment is what actually decides a race for the last slot.
func (s *ParticipantService) ApproveParticipant(id uint) error {
	participant, err := s.getByID(id)
	if err != nil {
		return err
	}

	if participant.Status == models.StatusApproved {
		return ErrParticipantApproved
	}
	if participant.Event.FilledSlots >= participant.Event.MaxSlots {
		return ErrEventFull
	}

	ok, err := s.participantRepo.Approve(id, participant.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}
	if !ok {
		return ErrEventFull
	}

	s.logger.Info("participant approved",
		zap.Uint("participant_id", id),
		zap.String("event_id", participant.EventID))
	go s.mailer.SendParticipantStatusEmail(
		participant.Email, participant.Name, participant.Event.Name,
		string(models.StatusApproved), "")

	return nil
}

// RejectParticipant stores the reason as given, overwriting any previous
// one. Rejecting an approved participant releases its slot atomically.
func (s *ParticipantService) RejectParticipant(id uint, reason string) error {
	participant, err := s.getByID(id)
	if err != nil {
		return err
	}

	if participant.Status == models.StatusApproved {
		err = s.participantRepo.RejectApproved(id, participant.EventID, reason)
	} else {
		err = s.participantRepo.Updates(id, map[string]interface{}{
			"status":           models.StatusRejected,
			"rejection_reason": reason,
		})
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrParticipantNotFound
		}
		return err
	}

	s.logger.Info("participant rejected",
		zap.Uint("participant_id", id),
		zap.String("event_id", participant.EventID))
	go s.mailer.SendParticipantStatusEmail(
		participant.Email, participant.Name, participant.Event.Name,
		string(models.StatusRejected), reason)

	return nil
}

// UpdateParticipant applies an owner's edit. Editing an approved
// registration revokes its slot and sends it back through review.
func (s *ParticipantService) UpdateParticipant(id uint, clID string, req models.UpdateParticipantRequest) (*models.Participant, error) {
	participant, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if participant.CLID != clID {
		return nil, ErrNotParticipantOwner
	}

	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.CollegeName != nil {
		values["college_name"] = *req.CollegeName
	}
	if req.Email != nil {
		values["email"] = *req.Email
	}
	if req.Contact != nil {
		values["contact"] = *req.Contact
	}
	if req.AadhaarFileURL != nil {
		values["aadhaar_file_url"] = *req.AadhaarFileURL
	}
	if req.IDFileURL != nil {
		values["id_file_url"] = *req.IDFileURL
	}

	if participant.Status == models.StatusApproved {
		err = s.participantRepo.UpdateApproved(id, participant.EventID, values)
	} else if len(values) > 0 {
		err = s.participantRepo.Updates(id, values)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	return s.participantRepo.GetByID(id)
}

func (s *ParticipantService) DeleteParticipant(id uint, clID string) error {
	participant, err := s.getByID(id)
	if err != nil {
		return err
	}

	if participant.CLID != clID {
		return ErrNotParticipantOwner
	}
	if participant.Status != models.StatusPending {
		return ErrParticipantNotPending
	}

	return s.participantRepo.Delete(id)
}

func (s *ParticipantService) getByID(id uint) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}
	return participant, nil
}
