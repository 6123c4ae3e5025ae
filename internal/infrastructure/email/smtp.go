// Package email delivers complaint notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	// BaseURL is prefixed to links back to the tracking page.
	BaseURL string
}

// Sender sends a notification message to a single recipient.
type Sender interface {
	SendNotification(ctx context.Context, to, subject, message, complaintID string) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendNotification(ctx context.Context, to, subject, message, complaintID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.dialer.DialAndSend(s.buildMessage(to, subject, message, complaintID))
}

func (s *SMTPEmailService) buildMessage(to, subject, message, complaintID string) *gomail.Message {
	trackURL := ""
	if complaintID != "" && s.config.BaseURL != "" {
		trackURL = fmt.Sprintf("%s/track/%s", s.config.BaseURL, complaintID)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s</p>
`, html.EscapeString(subject), html.EscapeString(message))
	plainBody := message + "\n"
	if trackURL != "" {
		htmlBody += fmt.Sprintf(`			<p><a href="%s">Track this complaint</a></p>
`, html.EscapeString(trackURL))
		plainBody += "\nTrack this complaint: " + trackURL + "\n"
	}
	htmlBody += `		</body>
		</html>
	`

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromAddress)
	}
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}
