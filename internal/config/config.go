// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sandovabarbora/articles-checker/internal/filter"
	"github.com/sandovabarbora/articles-checker/internal/model"
)

// Defaults for the optional settings.
const (
	DefaultSMTPHost  = "smtp.gmail.com"
	DefaultSMTPPort  = 587
	DefaultStatePath = "seen_articles.json"
	DefaultLogFile   = "journal_monitor.log"
)

// Config holds the application configuration.
type Config struct {
	EmailSender   string
	EmailPassword string
	EmailReceiver string
	SMTPHost      string
	SMTPPort      int
	StatePath     string
	LogFile       string
	LogLevel      string
	TitleFilters  []model.Filter
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present. All required values are validated
// here; nothing re-reads the environment after construction.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailPassword: os.Getenv("EMAIL_PASSWORD"),
		EmailReceiver: os.Getenv("EMAIL_RECEIVER"),
		SMTPHost:      DefaultSMTPHost,
		SMTPPort:      DefaultSMTPPort,
		StatePath:     DefaultStatePath,
		LogFile:       DefaultLogFile,
		LogLevel:      "info",
	}

	if cfg.EmailSender == "" {
		return nil, fmt.Errorf("EMAIL_SENDER is required")
	}
	if cfg.EmailPassword == "" {
		return nil, fmt.Errorf("EMAIL_PASSWORD is required")
	}
	if cfg.EmailReceiver == "" {
		return nil, fmt.Errorf("EMAIL_RECEIVER is required")
	}

	if v := os.Getenv("SMTP_SERVER"); v != "" {
		cfg.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid SMTP_PORT %q", v)
		}
		cfg.SMTPPort = port
	}
	if v := os.Getenv("STATE_PATH"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	filters, err := ParseTitleFilters(os.Getenv("TITLE_FILTERS"))
	if err != nil {
		return nil, fmt.Errorf("invalid TITLE_FILTERS: %w", err)
	}
	cfg.TitleFilters = filters

	return cfg, nil
}

// ParseTitleFilters parses a semicolon-separated list of filter specs of the
// form "kind:value", e.g. "include:learning;exclude_re:editorial".
// An empty input yields no filters (everything passes).
func ParseTitleFilters(raw string) ([]model.Filter, error) {
	var filters []model.Filter
	for _, spec := range strings.Split(raw, ";") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		kind, value, ok := strings.Cut(spec, ":")
		if !ok || strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("malformed filter spec %q, want kind:value", spec)
		}
		value = strings.TrimSpace(value)

		switch k := model.FilterKind(strings.TrimSpace(kind)); k {
		case model.FilterInclude, model.FilterExclude:
			filters = append(filters, model.Filter{Kind: k, Value: value})
		case model.FilterIncludeRe, model.FilterExcludeRe:
			if err := filter.ValidateRegex(value); err != nil {
				return nil, fmt.Errorf("filter spec %q: %w", spec, err)
			}
			filters = append(filters, model.Filter{Kind: k, Value: value})
		default:
			return nil, fmt.Errorf("unknown filter kind %q, use: include, exclude, include_re, exclude_re", kind)
		}
	}
	return filters, nil
}
