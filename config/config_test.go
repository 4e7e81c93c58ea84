package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.ServerPort)
	}
	if cfg.Summarizer.ChunkSize != 2000 {
		t.Errorf("expected default chunk size 2000, got %d", cfg.Summarizer.ChunkSize)
	}
	if cfg.Database.RunTTL != time.Hour {
		t.Errorf("expected default run TTL 1h, got %v", cfg.Database.RunTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SUMMARY_CHUNK_SIZE", "1500")
	t.Setenv("PIPELINE_TIMEOUT", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.ServerPort)
	}
	if cfg.Summarizer.ChunkSize != 1500 {
		t.Errorf("expected chunk size 1500, got %d", cfg.Summarizer.ChunkSize)
	}
	if cfg.PipelineTimeout != 90*time.Second {
		t.Errorf("expected pipeline timeout 90s, got %v", cfg.PipelineTimeout)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT", "not-an-int")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.ReadTimeout != 30*time.Second {
		t.Errorf("expected fallback read timeout 30s, got %v", cfg.ReadTimeout)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("expected fallback rate limit 5, got %d", cfg.RateLimit)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing port", func(c *Config) { c.ServerPort = "" }, true},
		{"missing db path", func(c *Config) { c.Database.Path = "" }, true},
		{"zero pipeline timeout", func(c *Config) { c.PipelineTimeout = 0 }, true},
		{"zero chunk size", func(c *Config) { c.Summarizer.ChunkSize = 0 }, true},
		{"missing yt-dlp path", func(c *Config) { c.YouTube.YtDlpPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() returned error: %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
