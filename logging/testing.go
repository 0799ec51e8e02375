package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogger(t *testing.T) *zap.Logger {
	err := SetGlobalLogger("debug", "capital", "console", nil)
	require.NoError(t, err)
	return zap.L().Named(t.Name())
}
