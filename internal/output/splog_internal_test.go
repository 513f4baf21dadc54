package output

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateLumberjackLogger(t *testing.T) {
	t.Run("zero never rotates", func(t *testing.T) {
		logger := createLumberjackLogger("/tmp/work/internet_connection_log.txt", 0)
		require.Equal(t, math.MaxInt32, logger.MaxSize)
		require.Zero(t, logger.MaxBackups)
		require.Zero(t, logger.MaxAge)
	})

	t.Run("a positive size opts into rotation", func(t *testing.T) {
		logger := createLumberjackLogger("/tmp/work/internet_connection_log.txt", 5)
		require.Equal(t, 5, logger.MaxSize)
	})
}
