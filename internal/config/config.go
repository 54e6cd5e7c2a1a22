package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rook-computer/pixelplanet/internal/planet"
	"github.com/rook-computer/pixelplanet/internal/render"
)

const (
	EnvBackend  = "PIXELPLANET_BACKEND"
	EnvVariant  = "PIXELPLANET_VARIANT"
	EnvHUD      = "PIXELPLANET_HUD"
	EnvStdioLog = "PIXELPLANET_STDIO_LOG"
)

// Backends understood by the binary.
const (
	BackendWindow   = "window"
	BackendFB       = "fb"
	BackendTerm     = "term"
	BackendHeadless = "headless"
)

// Config holds the host settings; the planet itself is not configurable
// beyond the variant.
type Config struct {
	Backend  string
	Variant  planet.Variant
	HUD      bool
	StdioLog string
}

// FromEnv returns defaults overridden by PIXELPLANET_* variables.
// Flags parsed afterwards take precedence over both.
func FromEnv(defaultBackend string) (Config, error) {
	cfg := Config{Backend: defaultBackend, Variant: planet.Lit}

	if raw := os.Getenv(EnvBackend); raw != "" {
		cfg.Backend = raw
	}
	if raw := os.Getenv(EnvVariant); raw != "" {
		variant, err := planet.ParseVariant(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVariant, err)
		}
		cfg.Variant = variant
	}
	if raw := os.Getenv(EnvHUD); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvHUD, raw, err)
		}
		cfg.HUD = parsed
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)

	return cfg, nil
}

// NormalizeBackend lowercases and checks a backend name.
func NormalizeBackend(name string) (string, error) {
	switch b := strings.ToLower(strings.TrimSpace(name)); b {
	case BackendWindow, BackendFB, BackendTerm, BackendHeadless:
		return b, nil
	default:
		return "", fmt.Errorf("%w %q (want %s, %s, %s or %s)", render.ErrUnknownBackend, name, BackendWindow, BackendFB, BackendTerm, BackendHeadless)
	}
}
