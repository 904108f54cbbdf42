package config_test

import (
	"testing"
	"time"

	"github.com/km-arc/go-injector/framework/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load("testdata/nonexistent.env")

	if cfg.App.Name != "GoInjector" {
		t.Errorf("App.Name: got %q, want 'GoInjector'", cfg.App.Name)
	}
	if cfg.App.Env != "local" {
		t.Errorf("App.Env: got %q, want 'local'", cfg.App.Env)
	}
	if cfg.App.Port != "8000" {
		t.Errorf("App.Port: got %q, want '8000'", cfg.App.Port)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL: got %v, want 5m", cfg.Cache.TTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_NAME", "TestApp")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("CACHE_TTL", "90s")

	cfg := config.Load("testdata/nonexistent.env")

	if cfg.App.Name != "TestApp" {
		t.Errorf("App.Name: got %q, want 'TestApp'", cfg.App.Name)
	}
	if cfg.App.Env != "testing" {
		t.Errorf("App.Env: got %q, want 'testing'", cfg.App.Env)
	}
	if cfg.App.Debug {
		t.Error("App.Debug should be false")
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL: got %v, want 90s", cfg.Cache.TTL)
	}
}

func TestGet_Fallback(t *testing.T) {
	if got := config.Get("UNSET_KEY_123", "fallback"); got != "fallback" {
		t.Errorf("Get: got %q, want 'fallback'", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("SOME_INT", "17")
	if got := config.GetInt("SOME_INT", 3); got != 17 {
		t.Errorf("GetInt: got %d, want 17", got)
	}
	if got := config.GetInt("UNSET_INT", 3); got != 3 {
		t.Errorf("GetInt fallback: got %d, want 3", got)
	}
	t.Setenv("BAD_INT", "abc")
	if got := config.GetInt("BAD_INT", 3); got != 3 {
		t.Errorf("GetInt invalid: got %d, want 3", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("SOME_DUR", "2m30s")
	if got := config.GetDuration("SOME_DUR", time.Minute); got != 2*time.Minute+30*time.Second {
		t.Errorf("GetDuration: got %v, want 2m30s", got)
	}
	t.Setenv("BAD_DUR", "soon")
	if got := config.GetDuration("BAD_DUR", time.Minute); got != time.Minute {
		t.Errorf("GetDuration invalid: got %v, want 1m", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("SOME_BOOL", "true")
	if !config.GetBool("SOME_BOOL", false) {
		t.Error("GetBool: got false, want true")
	}
	if config.GetBool("UNSET_BOOL", false) {
		t.Error("GetBool fallback: got true, want false")
	}
}
