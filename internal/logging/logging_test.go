package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mazerunner/internal/config"
)

func TestSetupLevelAndFormat(t *testing.T) {
	log := logrus.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	require.NoError(t, Setup(log, config.Config{LogLevel: "warn", LogFormat: "json"}))
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Setup(logrus.New(), config.Config{LogLevel: "loud"}))
}

func TestSetupLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.log")
	log := logrus.New()

	require.NoError(t, Setup(log, config.Config{LogLevel: "info", LogFormat: "text", LogFile: path}))
	log.WithField("seed", 7).Info("maze generated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "maze generated")
	assert.Contains(t, string(data), "seed=7")
}

func TestRunID(t *testing.T) {
	log := logrus.New()
	a, b := Run(log), Run(log)

	id, ok := a.Data["run_id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.NotEqual(t, a.Data["run_id"], b.Data["run_id"])
}
