package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.info)
	assert.NotNil(t, logger.warn)
	assert.NotNil(t, logger.error)
}

func TestLogger_Levels(t *testing.T) {
	logger := New()

	logger.Info("video %s published by %s", "vid-1", "alice")
	logger.Warn("failed to delete asset %s", "thumbnails/x.png")
	logger.Error("failed to rotate refresh token: %v", assert.AnError)
}
