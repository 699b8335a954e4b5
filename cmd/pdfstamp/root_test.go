package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/tluettje/pdfstamp/pkg/types"
)

// point the config lookup at an empty location so a developer's real
// pdfstamp.toml cannot leak into the test
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("PDFSTAMP_CONFIG", filepath.Join(t.TempDir(), "pdfstamp.toml"))
}

func TestRootCommandVersion(t *testing.T) {
	isolateConfig(t)
	logger := zerolog.Nop()
	cmd := newRootCommand(&logger)
	cmd.SetArgs([]string{"--version"})
	err := cmd.ExecuteContext(context.Background())
	assert.NoError(t, err)
}

func TestRootCommandDumpDefaultConfig(t *testing.T) {
	isolateConfig(t)
	logger := zerolog.Nop()
	cmd := newRootCommand(&logger)
	cmd.SetArgs([]string{"--dump-default-config"})
	err := cmd.ExecuteContext(context.Background())
	assert.NoError(t, err)
}

func TestRootCommandNoInput(t *testing.T) {
	isolateConfig(t)
	logger := zerolog.Nop()
	cmd := newRootCommand(&logger)
	cmd.SetArgs([]string{})
	err := cmd.ExecuteContext(context.Background())
	var noInput *types.NoInputError
	assert.ErrorAs(t, err, &noInput)
}

func TestOverridesFromFlags(t *testing.T) {
	isolateConfig(t)
	logger := zerolog.Nop()
	cmd := newRootCommand(&logger)
	assert.NoError(t, cmd.ParseFlags([]string{"-w", "/tmp/wm.pdf", "-g"}))

	flagValues := &types.Settings{Watermark: "/tmp/wm.pdf", GUI: true}
	overrides := overridesFromFlags(cmd.Flags(), flagValues)
	if assert.NotNil(t, overrides.Watermark) {
		assert.Equal(t, "/tmp/wm.pdf", *overrides.Watermark)
	}
	if assert.NotNil(t, overrides.GUI) {
		assert.True(t, *overrides.GUI)
	}
	assert.Nil(t, overrides.OutputFolder)
	assert.Nil(t, overrides.Engine)
}
