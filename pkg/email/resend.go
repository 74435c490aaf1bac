package email

import (
	"bytes"
	"html/template"
	"log"
	"os"

	"github.com/resendlabs/resend-go"
)

type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *log.Logger
}

func NewEmailService() *EmailService {
	return &EmailService{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName: os.Getenv("EMAIL_FROM_NAME"),
		logger:   log.New(os.Stdout, "EMAIL: ", log.LstdFlags),
	}
}

var profileStatusTmpl = template.Must(template.New("profile-status").Parse(`
<p>Hi {{.Name}},</p>
<p>Your contingent profile has been <strong>{{.Status}}</strong>.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>— Fest Registration Team</p>
`))

var participantStatusTmpl = template.Must(template.New("participant-status").Parse(`
<p>Hi {{.Name}},</p>
<p>Your registration for <strong>{{.EventName}}</strong> has been <strong>{{.Status}}</strong>.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>— Fest Registration Team</p>
`))

func (s *EmailService) SendProfileStatusEmail(email, name, status, reason string) error {
	html, err := render(profileStatusTmpl, map[string]string{
		"Name":   name,
		"Status": status,
		"Reason": reason,
	})
	if err != nil {
		return err
	}
	return s.send(email, "Profile "+status, html)
}

func (s *EmailService) SendParticipantStatusEmail(email, name, eventName, status, reason string) error {
	html, err := render(participantStatusTmpl, map[string]string{
		"Name":      name,
		"EventName": eventName,
		"Status":    status,
		"Reason":    reason,
	})
	if err != nil {
		return err
	}
	return s.send(email, "Registration "+status+" - "+eventName, html)
}

func (s *EmailService) send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Printf("Failed to send %q to %s: %v", subject, to, err)
		return err
	}

	s.logger.Printf("Sent %q to %s (ID: %s)", subject, to, resp.Id)
	return nil
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}
