package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
		BaseURL      string `yaml:"base_url"` // основа для ссылок в письмах
	} `yaml:"email"`

	JWT struct {
		Secret           string `yaml:"secret"`
		SessionTTLHours  int    `yaml:"session_ttl_hours"`      // токен сессии, по умолчанию 24
		RegisterTTLHours int    `yaml:"registration_ttl_hours"` // токен после регистрации, по умолчанию 1
	} `yaml:"jwt"`

	Auth struct {
		BcryptCost           int `yaml:"bcrypt_cost"`            // по умолчанию 10
		VerificationTTLHours int `yaml:"verification_ttl_hours"` // по умолчанию 24
		TempPasswordTTLHours int `yaml:"temp_password_ttl_hours"`
		BlacklistRetainDays  int `yaml:"blacklist_retain_days"` // должно быть >= TTL сессии
		PurgeIntervalHours   int `yaml:"purge_interval_hours"`
	} `yaml:"auth"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		// Режим теста: конфигурация из переменных окружения
		log.Println("Загрузка конфигурации из переменных окружения")

		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")

		cfg.Email.SMTPHost = "smtp.test.com"
		cfg.Email.SMTPPort = 587
		cfg.Email.FromEmail = "test@fittrack.app"
		cfg.Email.BaseURL = "http://localhost:8080"
	}

	applyDefaults(&cfg)

	// Подпись токенов без секрета невозможна, стартовать нельзя
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not configured")
	}

	// Отозванный токен обязан оставаться в черном списке дольше, чем живет сам
	if cfg.Auth.BlacklistRetainDays*24 < cfg.JWT.SessionTTLHours {
		log.Fatalf("blacklist retention (%dd) is shorter than the session TTL (%dh)",
			cfg.Auth.BlacklistRetainDays, cfg.JWT.SessionTTLHours)
	}

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.JWT.SessionTTLHours == 0 {
		cfg.JWT.SessionTTLHours = 24
	}
	if cfg.JWT.RegisterTTLHours == 0 {
		cfg.JWT.RegisterTTLHours = 1
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Auth.VerificationTTLHours == 0 {
		cfg.Auth.VerificationTTLHours = 24
	}
	if cfg.Auth.TempPasswordTTLHours == 0 {
		cfg.Auth.TempPasswordTTLHours = 24
	}
	if cfg.Auth.BlacklistRetainDays == 0 {
		cfg.Auth.BlacklistRetainDays = 7
	}
	if cfg.Auth.PurgeIntervalHours == 0 {
		cfg.Auth.PurgeIntervalHours = 12
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
