package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/sirupsen/logrus"

	"propman/server/internal/models"
)

// Config holds the SMTP settings for outbound mail.
type Config struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// Service sends email to contacts.
type Service struct {
	logger *logrus.Logger
	config Config

	// sendMail is swappable in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewService(logger *logrus.Logger, config Config) *Service {
	return &Service{
		logger:   logger,
		config:   config,
		sendMail: smtp.SendMail,
	}
}

// EmailContacts sends the subject and body to each contact individually.
// The "{name}" placeholder in either field is replaced with the contact's
// full name. Contacts without an email address are skipped with a warning.
func (s *Service) EmailContacts(contacts []models.Contact, subject, body string) error {
	if s.config.Host == "" {
		return errors.New("SMTP host is not configured")
	}
	if s.config.FromAddress == "" {
		return errors.New("sender address is not configured")
	}

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	for _, contact := range contacts {
		if contact.Email == "" {
			s.logger.WithField("contact_id", contact.ID).Warn("Contact has no email address, skipping")
			continue
		}

		msg := s.buildMessage(contact, subject, body)
		if err := s.sendMail(addr, auth, s.config.FromAddress, []string{contact.Email}, msg); err != nil {
			return fmt.Errorf("failed to email %s: %w", contact.FullName(), err)
		}
		s.logger.WithFields(logrus.Fields{
			"contact_id": contact.ID,
			"email":      contact.Email,
		}).Info("Email sent to contact")
	}
	return nil
}

func (s *Service) buildMessage(contact models.Contact, subject, body string) []byte {
	personalize := func(text string) string {
		return strings.ReplaceAll(text, "{name}", contact.FullName())
	}

	from := s.config.FromAddress
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromAddress)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s <%s>\r\n", contact.FullName(), contact.Email)
	fmt.Fprintf(&b, "Subject: %s\r\n", personalize(subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(personalize(body))
	return []byte(b.String())
}
