package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database   pg.Options
	LogQueries bool

	App struct {
		Host string
		Port int
	}

	Auth  Auth
	Mail  Mail
	Media Media

	Site struct {
		Name        string
		FrontendURL string
	}
}

// Auth holds token signing settings. Zero TTLs fall back to defaults in internal/auth.
type Auth struct {
	Secret         string
	AccessTokenTTL Duration
	ResetTokenTTL  Duration
}

// Mail configures outbound SMTP. An empty Host switches the app to the log mailer.
type Mail struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Media struct {
	Dir     string
	BaseURL string
}

// Duration decodes TOML strings like "30m" or "24h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}
