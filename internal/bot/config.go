package bot

import (
	"os"
	"strconv"

	"github.com/example/vocabu/internal/session"
	"github.com/example/vocabu/internal/srs"
)

// BotConfig represents the tunables of the bot surface
type BotConfig struct {
	// Maximum cards per review session
	SessionLimit int
	// How many upcoming words to surface when nothing is due
	FallbackSize int
}

// DefaultConfig returns the default bot configuration, with env overrides.
func DefaultConfig() *BotConfig {
	return &BotConfig{
		SessionLimit: intFromEnv("SESSION_LIMIT", session.DefaultSessionLimit),
		FallbackSize: intFromEnv("FALLBACK_SIZE", srs.DefaultFallbackSize),
	}
}

func intFromEnv(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
