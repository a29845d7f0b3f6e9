package logging

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range []struct {
		name string
		want zapcore.Level
	}{
		{"trace", zapcore.Level(-2)},
		{"debug", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lvl, err := ParseLevel(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.want, lvl)
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	_, err := ParseLevel("verbose")
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestNew(t *testing.T) {
	logger, err := New("debug")
	require.NoError(t, err)
	assert.True(t, logger.V(DEBUG).Enabled())
	assert.False(t, logger.V(TRACE).Enabled())

	logger, err = New("warn")
	require.NoError(t, err)
	assert.False(t, logger.Enabled())

	_, err = New("loud")
	assert.Error(t, err)
}
