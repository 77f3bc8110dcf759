package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Run(
		"1. production",
		func(t *testing.T) {
			l, errCr := NewLogger(
				&ParamsNewLogger{
					Level:        "warn",
					IsProduction: true,
				},
			)
			require.NoError(t, errCr)
			require.NotNil(t, l)

			require.False(t, l.Core().Enabled(zap.InfoLevel))
			require.True(t, l.Core().Enabled(zap.WarnLevel))
		},
	)

	t.Run(
		"2. development default level",
		func(t *testing.T) {
			l, errCr := NewLogger(&ParamsNewLogger{})
			require.NoError(t, errCr)

			require.True(t, l.Core().Enabled(zap.DebugLevel))
		},
	)

	t.Run(
		"3. invalid level",
		func(t *testing.T) {
			l, errCr := NewLogger(
				&ParamsNewLogger{
					Level: "loud",
				},
			)
			require.Error(t, errCr)
			require.Nil(t, l)
		},
	)
}
