package service

// Mailer sends review-outcome notifications. Satisfied by
// pkg/email.EmailService; tests substitute a recorder.
type Mailer interface {
	SendProfileStatusEmail(email, name, status, reason string) error
	SendParticipantStatusEmail(email, name, eventName, status, reason string) error
}
