package google

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService(email, password string) *EmailService {
	d := gomail.NewDialer("smtp.gmail.com", 587, email, password)
	return &EmailService{dialer: d}
}

// SendNotificationEmail mirrors a stored notification to the user's inbox.
func (e *EmailService) SendNotificationEmail(to, title, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.dialer.Username)
	m.SetHeader("To", to)
	m.SetHeader("Subject", title)
	m.SetBody("text/html", fmt.Sprintf("<p>%s</p>", message))
	return e.dialer.DialAndSend(m)
}
