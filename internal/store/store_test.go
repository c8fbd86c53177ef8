package store

import (
	"context"
	"testing"

	"nutriplan-cli/internal/model"
)

func TestStore_GetMissingKey(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	v, ok, err := s.Get(context.Background(), "nutriplan_log_v3")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatalf("expected missing key, got %q", v)
	}
}

func TestStore_SetGetRoundtrip(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	ctx := context.Background()

	if err := s.Set(ctx, "k", `{"date":"2026-08-31","items":[]}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != `{"date":"2026-08-31","items":[]}` {
		t.Fatalf("unexpected value: ok=%v v=%q", ok, v)
	}

	// Set replaces.
	if err := s.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	v, ok, err = s.Get(ctx, "k")
	if err != nil || !ok || v != "second" {
		t.Fatalf("expected replaced value, got ok=%v v=%q err=%v", ok, v, err)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if err := (Store{Dir: dir}).Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := (Store{Dir: dir}).Get(ctx, "k")
	if err != nil || !ok || v != "v" {
		t.Fatalf("expected persisted value, got ok=%v v=%q err=%v", ok, v, err)
	}
}

func TestStore_EmptyDirRejected(t *testing.T) {
	s := Store{}
	if err := s.Set(context.Background(), "k", "v"); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestConfig_DailyLimitsDefaults(t *testing.T) {
	var cfg *GlobalConfig
	if got := cfg.DailyLimits(); got != model.DefaultLimits() {
		t.Fatalf("nil config limits = %+v", got)
	}

	cfg = &GlobalConfig{Limits: &model.Limits{Calories: 1800, Protein: 60, Carbs: 200, Fat: 70}}
	if got := cfg.DailyLimits(); got.Calories != 1800 || got.Fat != 70 {
		t.Fatalf("override limits = %+v", got)
	}
}

func TestConfig_LoadMissingAndCorrupt(t *testing.T) {
	t.Setenv("NUTRIPLAN_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if cfg == nil || cfg.Limits != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}

	cfg.Limits = &model.Limits{Calories: 2200, Protein: 55, Carbs: 260, Fat: 60}
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	cfg2, err := LoadConfig()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cfg2.Limits == nil || cfg2.Limits.Calories != 2200 {
		t.Fatalf("reloaded config = %+v", cfg2)
	}
}
