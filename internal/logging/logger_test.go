package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func TestNew_BuildsLogger(t *testing.T) {
	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			log, err := New(json, debug)
			require.NoError(t, err)
			require.NotNil(t, log)
			_ = log.Sync()
		}
	}
}

func TestNew_DebugLevel(t *testing.T) {
	log, err := New(false, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(false, false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, LevelFor(types.KindValidation))
	assert.Equal(t, zapcore.WarnLevel, LevelFor(types.KindConfiguration))
	assert.Equal(t, zapcore.ErrorLevel, LevelFor(types.KindDocumentParsing))
	assert.Equal(t, zapcore.ErrorLevel, LevelFor(types.KindExternalService))
	assert.Equal(t, zapcore.ErrorLevel, LevelFor(types.ErrorKind("unknown")))
}
