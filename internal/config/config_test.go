package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandovabarbora/articles-checker/internal/model"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("EMAIL_SENDER", "monitor@example.com")
	t.Setenv("EMAIL_PASSWORD", "app-password")
	t.Setenv("EMAIL_RECEIVER", "me@example.com")
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("STATE_PATH", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("TITLE_FILTERS", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		EmailSender:   "monitor@example.com",
		EmailPassword: "app-password",
		EmailReceiver: "me@example.com",
		SMTPHost:      "smtp.gmail.com",
		SMTPPort:      587,
		StatePath:     "seen_articles.json",
		LogFile:       "journal_monitor.log",
		LogLevel:      "info",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{name: "missing sender", unset: "EMAIL_SENDER"},
		{name: "missing password", unset: "EMAIL_PASSWORD"},
		{name: "missing receiver", unset: "EMAIL_RECEIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil {
				t.Fatalf("expected error when %s is unset", tt.unset)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_SERVER", "mail.example.com")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("STATE_PATH", "/var/lib/monitor/seen.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff("mail.example.com", cfg.SMTPHost); diff != "" {
		t.Errorf("host mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2525, cfg.SMTPPort); diff != "" {
		t.Errorf("port mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("/var/lib/monitor/seen.json", cfg.StatePath); diff != "" {
		t.Errorf("state path mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SMTP_PORT")
	}
}

func TestParseTitleFilters(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []model.Filter
		wantErr bool
	}{
		{
			name: "empty input yields no filters",
			raw:  "",
		},
		{
			name: "single include",
			raw:  "include:learning",
			want: []model.Filter{{Kind: model.FilterInclude, Value: "learning"}},
		},
		{
			name: "multiple specs with spaces",
			raw:  "include:deep learning; exclude_re:editorial|corrigendum",
			want: []model.Filter{
				{Kind: model.FilterInclude, Value: "deep learning"},
				{Kind: model.FilterExcludeRe, Value: "editorial|corrigendum"},
			},
		},
		{
			name:    "unknown kind",
			raw:     "banish:editorial",
			wantErr: true,
		},
		{
			name:    "missing value",
			raw:     "include:",
			wantErr: true,
		},
		{
			name:    "invalid regex",
			raw:     "include_re:(unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTitleFilters(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("filters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadInvalidTitleFilters(t *testing.T) {
	setRequired(t)
	t.Setenv("TITLE_FILTERS", "include_re:(unclosed")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid TITLE_FILTERS")
	}
}
