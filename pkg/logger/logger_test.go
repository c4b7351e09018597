package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	prev := zap.L()
	defer zap.ReplaceGlobals(prev)

	t.Run("json格式按配置级别过滤", func(t *testing.T) {
		l, err := New(Config{Level: "warn", Format: "json", Output: "stderr"})
		require.NoError(t, err)

		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
		assert.Same(t, l, L())
	})

	t.Run("非法级别回退到info", func(t *testing.T) {
		l, err := New(Config{Level: "verbose", Format: "console"})
		require.NoError(t, err)

		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}
