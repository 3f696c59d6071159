package config

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	for _, key := range []string{"PROJECTID", "REGION", "PORT", "VERTEXMODEL", "TIMEZONE", "SAMPLEDAYS", "SAMPLEREVIEWSPERDAY", "SAMPLESEED", "AUTHDISABLED", "LOCALUID"} {
		t.Setenv(key, "")
	}

	cfg := New()

	if cfg.Port != "8080" || cfg.Timezone != "Asia/Shanghai" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SampleDays != 30 || cfg.SampleReviewsPerDay != 1000 || cfg.SampleSeed != 0 {
		t.Fatalf("unexpected sample defaults: %+v", cfg)
	}
	if !cfg.Local() || cfg.AuthDisabled {
		t.Fatalf("expected local mode with auth on: %+v", cfg)
	}
	if cfg.LocalUID != "local-user" {
		t.Fatalf("unexpected local uid %q", cfg.LocalUID)
	}
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("PROJECTID", "demo-project")
	t.Setenv("PORT", "9090")
	t.Setenv("SAMPLEDAYS", "14")
	t.Setenv("SAMPLEREVIEWSPERDAY", "-3")
	t.Setenv("SAMPLESEED", "42")
	t.Setenv("AUTHDISABLED", "true")

	cfg := New()

	if cfg.Local() || cfg.ProjectID != "demo-project" || cfg.Port != "9090" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SampleDays != 14 || cfg.SampleSeed != 42 {
		t.Fatalf("numeric overrides not applied: %+v", cfg)
	}
	if cfg.SampleReviewsPerDay != 1000 {
		t.Fatalf("invalid value should fall back, got %d", cfg.SampleReviewsPerDay)
	}
	if !cfg.AuthDisabled {
		t.Fatal("AUTHDISABLED not applied")
	}
}

func TestLocation(t *testing.T) {
	cfg := &Config{Timezone: "Asia/Shanghai"}
	if _, offset := time.Date(2024, 1, 1, 0, 0, 0, 0, cfg.Location()).Zone(); offset != 8*3600 {
		t.Fatalf("unexpected offset %d", offset)
	}

	cfg.Timezone = "Not/AZone"
	if cfg.Location() != time.UTC {
		t.Fatal("unknown timezone should fall back to UTC")
	}
}
