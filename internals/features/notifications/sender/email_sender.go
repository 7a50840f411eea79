package sender

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"

	missionaryModel "missionmeals_backend/internals/features/congregations/missionaries/model"
)

// EmailSender delivers over implicit-TLS SMTP (port 465 style).
type EmailSender struct {
	smtpHost string
	smtpPort string
	username string
	password string
}

func NewEmailSender(host, port, user, pass string) *EmailSender {
	return &EmailSender{
		smtpHost: host,
		smtpPort: port,
		username: user,
		password: pass,
	}
}

func (e *EmailSender) Method() missionaryModel.NotificationChannel {
	return missionaryModel.ChannelEmail
}

func (e *EmailSender) Send(m *missionaryModel.MissionaryModel, subject, body string) error {
	if m.MissionaryEmailAddress == nil || *m.MissionaryEmailAddress == "" {
		return errors.New("missionary has no email address")
	}
	return e.SendTo(*m.MissionaryEmailAddress, subject, body)
}

// SendTo is also used for verification codes before a missionary record is
// fully active.
func (e *EmailSender) SendTo(to, subject, body string) error {
	from := e.username
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" + // required for HTML
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			"<html><body><p>" + body + "</p></body></html>",
	)

	serverAddr := e.smtpHost + ":" + e.smtpPort

	tlsConfig := &tls.Config{
		ServerName: e.smtpHost,
	}

	conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, e.smtpHost)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", e.username, e.password, e.smtpHost)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
