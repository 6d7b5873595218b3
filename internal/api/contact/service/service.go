package contactService

import (
	"context"

	"ZencrowWebsite/internal/api/contact"
	"ZencrowWebsite/pkg/smtp"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type IContactService interface {
	Submit(ctx context.Context, form contact.Submission) contact.Outcome
}

type contactService struct {
	log       *logrus.Logger
	validator *validator.Validate
	mailer    smtp.ItfSmtp
	config    smtp.Config
}

func NewContactService(
	log *logrus.Logger,
	validate *validator.Validate,
	mailer smtp.ItfSmtp,
	config smtp.Config,
) IContactService {
	return &contactService{
		log:       log,
		validator: validate,
		mailer:    mailer,
		config:    config,
	}
}
