package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Hafizirfan96/spu-backend/internal/config"
	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// Mailer dispatches a verification code to an email address. A failed
// dispatch must surface to the caller as a retryable error.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

// NewMailer returns the SendGrid mailer, or a log-only mailer when no API
// key is configured (local development).
func NewMailer(cfg *config.Config) Mailer {
	if cfg.SendGridAPIKey == "" {
		return &devMailer{}
	}
	return &sendgridMailer{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromName:  cfg.OrganizationName,
		fromEmail: cfg.FromEmail,
		ttl:       cfg.VerificationCodeExpiry,
	}
}

type sendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	ttl       time.Duration
}

func (m *sendgridMailer) SendVerificationCode(_ context.Context, email, code string) error {
	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail("", email)
	subject := m.fromName + " - Verification Code"
	intro := fmt.Sprintf("Please use the following code to verify your email address. It expires in %d minutes.", int(m.ttl.Minutes()))
	plainTextContent := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(m.ttl.Minutes()))
	htmlContent := fmt.Sprintf(verificationEmailHTML, "Verification Code", intro, code, time.Now().Year())
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	resp, err := m.client.Send(message)
	if err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification email to %s via SendGrid", email)
		return fmt.Errorf("%w: failed to send email via sendgrid: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.StatusCode >= 400 {
		utils.Logger.Errorf("SendGrid rejected verification email to %s with status %d", email, resp.StatusCode)
		return fmt.Errorf("%w: sendgrid status %d", utils.ErrExternalServiceFailure, resp.StatusCode)
	}
	return nil
}

// devMailer logs the code instead of emailing it.
type devMailer struct{}

func (m *devMailer) SendVerificationCode(_ context.Context, email, code string) error {
	utils.Logger.Infof("DEV MAILER: verification code for %s is %s", email, code)
	return nil
}
