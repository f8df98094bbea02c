package config

import "os"

// Config carries every environment setting the server reads. A missing
// value disables the feature that needs it instead of crashing the process.
type Config struct {
	Port                string
	PublicBaseURL       string
	DatabaseURL         string
	StripeSecretKey     string
	StripeWebhookSecret string
	EmailUser           string
	EmailPassword       string
	ManufacturingEmail  string
	SMTPHost            string
	SMTPPort            string
}

// Load reads the environment once, at process start.
func Load() Config {
	cfg := Config{
		Port:                os.Getenv("PORT"),
		PublicBaseURL:       os.Getenv("PUBLIC_BASE_URL"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		EmailUser:           os.Getenv("EMAIL_USER"),
		EmailPassword:       os.Getenv("EMAIL_PASSWORD"),
		ManufacturingEmail:  os.Getenv("MANUFACTURING_EMAIL"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            os.Getenv("SMTP_PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	if cfg.SMTPPort == "" {
		cfg.SMTPPort = "587"
	}
	return cfg
}
