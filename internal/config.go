package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=3000"`
	HistoryLimit         int           `env:"HISTORY_LIMIT,default=100"`
	BufferSize           int           `env:"BUFFER_SIZE,default=256"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	MaxMessageSize       int64         `env:"MAX_MESSAGE_SIZE,default=10485760"`
	RateLimitBurst       int           `env:"RATE_LIMIT_BURST,default=10"`
	RateLimitInterval    time.Duration `env:"RATE_LIMIT_INTERVAL,default=1s"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	TelemetryInterval    time.Duration `env:"TELEMETRY_INTERVAL,default=30s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Addr is the listen address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CensoredWordList splits the comma-separated dictionary. An unset
// variable yields an empty list, which disables the censor.
func (c Config) CensoredWordList() []string {
	if strings.TrimSpace(c.CensoredWords) == "" {
		return nil
	}
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if trimmed := strings.TrimSpace(w); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

// CharacterRune validates that the replacement is a single character.
func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
