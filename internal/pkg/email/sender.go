package email

import (
	"fmt"
	"net/url"

	"gopkg.in/gomail.v2"
)

// SMTPSender реализация Sender поверх gomail
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

// Send отправляет email
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	} else {
		m.SetHeader("From", s.config.FromEmail)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	return s.dialer.DialAndSend(m)
}

// SendVerification отправляет письмо для подтверждения email
func (s *SMTPSender) SendVerification(to, name, token string) error {
	data := TemplateData{
		UserName:   name,
		ActionURL:  fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.config.BaseURL, url.QueryEscape(token)),
		ActionText: "Подтвердить Email",
	}

	body, err := s.templates.Render("verification", data)
	if err != nil {
		return err
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  "Подтверждение Email",
		HTMLBody: body,
	})
}

// SendTempPassword отправляет письмо с временным паролем
func (s *SMTPSender) SendTempPassword(to, name, tempPassword string) error {
	data := TemplateData{
		UserName:     name,
		TempPassword: tempPassword,
		SupportEmail: s.config.FromEmail,
	}

	body, err := s.templates.Render("temp_password", data)
	if err != nil {
		return err
	}

	return s.Send(&Email{
		To:       []string{to},
		Subject:  "Сброс пароля",
		HTMLBody: body,
	})
}
