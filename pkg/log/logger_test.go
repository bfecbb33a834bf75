package log

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_ParsesLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("local", "debug").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("production", "warn").GetLevel())
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New("local", "nonsense").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("local", "").GetLevel())
}
