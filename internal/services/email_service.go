package services

import (
	"fmt"
	"html"
	"time"

	"gopkg.in/gomail.v2"

	"taskboard/internal/models"
)

type EmailService interface {
	SendAssignmentEmail(to models.User, task *models.Task, loc *time.Location) error
}

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type emailService struct {
	dialer mailDialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendAssignmentEmail(to models.User, task *models.Task, loc *time.Location) error {
	if to.Email == "" {
		return fmt.Errorf("user %d has no email", to.ID)
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to.Email)
	m.SetHeader("Subject", "Task assigned: "+task.Title)

	due := "No due date"
	if t, ok := task.Due(); ok {
		due = t.In(loc).Format("January 2, 2006 3:04 PM")
	}

	body := fmt.Sprintf(`
		<h3>Hi %s,</h3>
		<p>The task <strong>%s</strong> has been assigned to you.</p>
		<p>Priority: %s<br>Due: %s</p>
	`, html.EscapeString(to.Username), html.EscapeString(task.Title), html.EscapeString(string(task.Priority)), due)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send assignment email: %w", err)
	}
	return nil
}
