package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempLogDir(t *testing.T) string {
	t.Helper()
	prev := logDir
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() { logDir = prev })
	return logDir
}

func TestSetupLoggingDisabled(t *testing.T) {
	dir := useTempLogDir(t)

	logger, f, err := setupLogging(false, "debug")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, io.Discard, logger.Out)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "no directory without debug")
}

func TestSetupLoggingWritesFile(t *testing.T) {
	dir := useTempLogDir(t)

	logger, f, err := setupLogging(true, "info")
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	assert.NotEqual(t, os.Stdout, logger.Out)
	assert.NotEqual(t, os.Stderr, logger.Out)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.WithField("kills", 20).Info("milestone")
	logger.Debug("filtered")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=milestone")
	assert.Contains(t, string(data), "kills=20")
	assert.NotContains(t, string(data), "filtered")
}

func TestSetupLoggingRotation(t *testing.T) {
	dir := useTempLogDir(t)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	prevMax := maxLogSize
	maxLogSize = 64
	t.Cleanup(func() { maxLogSize = prevMax })

	path := filepath.Join(dir, logFileName)
	big := bytes.Repeat([]byte("x"), int(maxLogSize)+1)
	require.NoError(t, os.WriteFile(path, big, 0o644))

	_, f, err := setupLogging(true, "info")
	require.NoError(t, err)
	defer f.Close()

	old, err := os.Stat(path + ".old")
	require.NoError(t, err)
	assert.Equal(t, int64(len(big)), old.Size())

	cur, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, cur.Size(), maxLogSize)
}

func TestSetupLoggingBadLevel(t *testing.T) {
	useTempLogDir(t)
	_, _, err := setupLogging(true, "loud")
	assert.Error(t, err)
}
