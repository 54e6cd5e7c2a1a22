package config

import (
	"errors"
	"testing"

	"github.com/rook-computer/pixelplanet/internal/planet"
	"github.com/rook-computer/pixelplanet/internal/render"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvVariant, "")
	t.Setenv(EnvHUD, "")
	t.Setenv(EnvStdioLog, "")

	cfg, err := FromEnv(BackendWindow)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Backend: BackendWindow, Variant: planet.Lit}
	if cfg != want {
		t.Errorf("FromEnv = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv(EnvBackend, "term")
	t.Setenv(EnvVariant, "classic")
	t.Setenv(EnvHUD, "true")
	t.Setenv(EnvStdioLog, "/tmp/planet.log")

	cfg, err := FromEnv(BackendWindow)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Backend: "term", Variant: planet.Classic, HUD: true, StdioLog: "/tmp/planet.log"}
	if cfg != want {
		t.Errorf("FromEnv = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv(EnvHUD, "sometimes")
	if _, err := FromEnv(BackendWindow); err == nil {
		t.Error("expected error for bad boolean")
	}

	t.Setenv(EnvHUD, "")
	t.Setenv(EnvVariant, "neon")
	if _, err := FromEnv(BackendWindow); err == nil {
		t.Error("expected error for bad variant")
	}
}

func TestNormalizeBackend(t *testing.T) {
	for in, want := range map[string]string{
		"window":   BackendWindow,
		" FB ":     BackendFB,
		"Term":     BackendTerm,
		"headless": BackendHeadless,
	} {
		got, err := NormalizeBackend(in)
		if err != nil || got != want {
			t.Errorf("NormalizeBackend(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := NormalizeBackend("sdl"); !errors.Is(err, render.ErrUnknownBackend) {
		t.Errorf("NormalizeBackend(sdl) error = %v, want ErrUnknownBackend", err)
	}
}
