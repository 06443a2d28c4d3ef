package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile2048/internal/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDefaultConfig(&buf))

	cfg, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	_, err = cfg.Theme()
	require.NoError(t, err, "printed config should be valid")

	assert.Equal(t, 600, cfg.Window.Width)
	assert.Len(t, cfg.Colors.Tiles, 11)
}
