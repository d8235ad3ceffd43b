package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendMail(toEmail string, subject string, body string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	port string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, host: host, port: port}
}

func (s *smtp) SendMail(toEmail string, subject string, body string) error {
	to := []string{toEmail}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", toEmail, subject, body))

	err := smtpPkg.SendMail(fmt.Sprintf("%s:%s", s.host, s.port), s.auth, s.mail, to, message)
	if err != nil {
		return err
	}

	return nil
}
