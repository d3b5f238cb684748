// Package mailer sends plain notification emails over SMTP.
package mailer

import (
	"crypto/tls"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type Mailer interface {
	Send(to []string, subject, body string) error
}

type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New returns an SMTP mailer, or a mailer that only logs when no host is
// configured.
func New(opts Options, log *logrus.Logger) Mailer {
	if opts.Host == "" {
		log.Warn("SMTP_HOST is empty, outgoing mail will only be logged")
		return &logMailer{log: log}
	}
	d := gomail.NewDialer(opts.Host, opts.Port, opts.User, opts.Password)
	d.TLSConfig = &tls.Config{ServerName: opts.Host}
	return &smtpMailer{dialer: d, from: opts.From}
}

func (m *smtpMailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct {
	log *logrus.Logger
}

func (m *logMailer) Send(to []string, subject, body string) error {
	m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("mail skipped, no SMTP host")
	return nil
}
