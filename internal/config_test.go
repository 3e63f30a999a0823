package internal

import (
	"testing"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_DefaultsFromEnvironment(t *testing.T) {
	req := require.New(t)

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("0.0.0.0:3000", config.Addr())
	req.Equal(100, config.HistoryLimit)
	req.Equal(256, config.BufferSize)
	req.Equal("INFO", config.LogLevel)
}

func TestConfig_OverridesFromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT_BURST", "5")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)

	req.Equal("127.0.0.1:8080", config.Addr())
	req.Equal(5, config.RateLimitBurst)
}

func TestConfig_CensoredWordList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name:     "Unset variable disables the censor",
			raw:      "",
			expected: nil,
		},
		{
			name:     "Whitespace only disables the censor",
			raw:      "   ",
			expected: nil,
		},
		{
			name:     "Words are trimmed and empties dropped",
			raw:      " badger , snake ,, mushroom ",
			expected: []string{"badger", "snake", "mushroom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{CensoredWords: tt.raw}
			require.Equal(t, tt.expected, config.CensoredWordList())
		})
	}
}

func TestConfig_CharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := Config{CharReplacement: "*"}.CharacterRune()
	req.NoError(err)
	req.Equal('*', r)

	// Multi-byte UTF-8 is still one character
	r, err = Config{CharReplacement: "█"}.CharacterRune()
	req.NoError(err)
	req.Equal('█', r)

	_, err = Config{CharReplacement: "**"}.CharacterRune()
	req.Error(err)

	_, err = Config{CharReplacement: ""}.CharacterRune()
	req.Error(err)
}
