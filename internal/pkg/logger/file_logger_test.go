//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hrms-lite/hrms-backend/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "backend.log")

	log := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, log)

	log.Info("info message")
	log.Warn("warn message")
	log.With("employee_id", 7).Error("error message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	output := string(content)
	assert.Contains(t, output, `"msg":"info message"`)
	assert.Contains(t, output, `"msg":"warn message"`)
	assert.Contains(t, output, `"employee_id":7`)
	assert.Contains(t, output, `"level":"ERROR"`)
}
