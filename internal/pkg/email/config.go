package email

import (
	"fmt"

	appconfig "fittrack_backend/internal/config"
)

// Config конфигурация email сервиса
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	BaseURL   string
}

// Validate проверяет обязательные поля
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// FromAppConfig собирает Config из конфигурации приложения
func FromAppConfig(cfg *appconfig.Config) Config {
	return Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
		UseTLS:    cfg.Email.UseTLS,
		BaseURL:   cfg.Email.BaseURL,
	}
}
