package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"docpoint-service/internal/app/contracts"
	"docpoint-service/internal/app/drivers/mailer"
	"docpoint-service/internal/pkg/constvars"
	"docpoint-service/internal/pkg/exceptions"
)

type mailerService struct {
	Client *mailer.SMTPClient
}

func NewMailerService(client *mailer.SMTPClient) contracts.MailerService {
	return &mailerService{
		Client: client,
	}
}

func (svc *mailerService) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return exceptions.ErrServerDeadlineExceeded(err)
	}

	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
