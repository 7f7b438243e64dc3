// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.BaseURL != "http://localhost:3000" {
		t.Errorf("expected base_url=http://localhost:3000, got %s", cfg.Server.BaseURL)
	}
	if cfg.Server.RequestTimeout != 15*time.Second {
		t.Errorf("expected request_timeout=15s, got %s", cfg.Server.RequestTimeout)
	}
	if cfg.Mentors.PollInterval != 30*time.Second {
		t.Errorf("expected poll_interval=30s, got %s", cfg.Mentors.PollInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_WithoutEnvReturnsDefaults(t *testing.T) {
	t.Setenv("SKILLSHARE_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.BaseURL != Default().Server.BaseURL {
		t.Errorf("expected default base_url, got %s", cfg.Server.BaseURL)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillshare.yaml")
	content := `
server:
  base_url: https://academy.example.com
  request_timeout: 5s
mentors:
  poll_interval: 10s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Server.BaseURL != "https://academy.example.com" {
		t.Errorf("base_url not applied: %s", cfg.Server.BaseURL)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("request_timeout not applied: %s", cfg.Server.RequestTimeout)
	}
	if cfg.Mentors.PollInterval != 10*time.Second {
		t.Errorf("poll_interval not applied: %s", cfg.Mentors.PollInterval)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skillshare.yaml")
	content := "server:\n  base_url: https://academy.example.com\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Server.RequestTimeout != 15*time.Second {
		t.Errorf("unset request_timeout lost its default: %s", cfg.Server.RequestTimeout)
	}
	if cfg.Mentors.PollInterval != 30*time.Second {
		t.Errorf("unset poll_interval lost its default: %s", cfg.Mentors.PollInterval)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"bad scheme", "server:\n  base_url: ftp://example.com\n", "must use http or https"},
		{"zero timeout", "server:\n  request_timeout: 0s\n", "request_timeout must be positive"},
		{"negative poll", "mentors:\n  poll_interval: -1s\n", "poll_interval must be positive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "skillshare.yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatalf("writing config: %v", err)
			}
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
