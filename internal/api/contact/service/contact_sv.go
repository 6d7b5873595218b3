package contactService

import (
	"fmt"
	"strings"

	"ZencrowWebsite/internal/api/contact"
	contextPkg "ZencrowWebsite/pkg/context"
	"ZencrowWebsite/pkg/log"
	"ZencrowWebsite/pkg/smtp"
	validatorPkg "ZencrowWebsite/pkg/validator"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// Values shipped in the .env template; seeing them means nobody filled it in.
const (
	placeholderUsername = "your-email@gmail.com"
	placeholderPassword = "your-email-password"

	subjectPrefix = "New Contact Form: "
)

func (s *contactService) Submit(ctx context.Context, form contact.Submission) (outcome contact.Outcome) {
	requestID := contextPkg.GetRequestID(ctx)
	form = form.Trimmed()

	if err := s.validator.Struct(form); err != nil {
		fields := validatorPkg.FieldErrors(err)
		if fields == nil {
			fields = map[string]string{"form": err.Error()}
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"fields":     fields,
		}).Warn("Contact form validation failed")
		return contact.ValidationFailed(fields)
	}

	body := formatBody(composeBlocks(form))

	s.log.WithFields(logrus.Fields{
		"request_id":        requestID,
		"mail_server":       s.config.Host,
		"mail_username_set": s.config.Username != "",
		"mail_password":     log.Mask(s.config.Password),
	}).Debug("Resolved mail configuration")

	if s.config.Host == "" || s.config.Username == "" || s.config.Password == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("Email configuration missing: MAIL_SERVER, MAIL_USERNAME, or MAIL_PASSWORD not set")
		return contact.ConfigMissing()
	}

	if strings.Contains(s.config.Username, placeholderUsername) || strings.Contains(s.config.Password, placeholderPassword) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("Using placeholder email credentials, update the .env file")
		return contact.PlaceholderCredentials()
	}

	sender := s.config.DefaultSender
	if sender == "" {
		sender = s.config.Username
	}

	msg := smtp.Message{
		From:    sender,
		To:      s.config.Recipients,
		ReplyTo: form.Email,
		Subject: subjectPrefix + form.Subject,
		Body:    body,
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"panic":      r,
			}).Error("Email transport panicked")
			outcome = contact.TransportError(fmt.Sprint(r))
		}
	}()

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Email sending failed")
		return contact.TransportError(err.Error())
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"recipients": len(msg.To),
	}).Info("Contact email sent")

	return contact.Sent()
}
