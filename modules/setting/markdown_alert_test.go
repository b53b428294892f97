// Copyright 2024 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/forgejo/mdalert/modules/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMarkdownAlertDefaults(t *testing.T) {
	defer func() { MarkdownAlert = defaultMarkdownAlert() }()

	cfg, err := NewConfigProviderFromData(``)
	require.NoError(t, err)
	require.NoError(t, LoadMarkdownAlertFrom(cfg))

	assert.True(t, MarkdownAlert.Enabled)
	assert.Empty(t, MarkdownAlert.Preset)
	assert.False(t, MarkdownAlert.LegacyTitle)
	assert.Empty(t, MarkdownAlert.Filter)
	assert.Empty(t, MarkdownAlert.BlockClass)
}

func TestLoadMarkdownAlert(t *testing.T) {
	defer func() { MarkdownAlert = defaultMarkdownAlert() }()

	cfg, err := NewConfigProviderFromData(`
[markdown.alert]
ENABLED = false
PRESET = Markdown-Alert
LEGACY_TITLE = true
KEEP_TRAILING_WHITESPACE = true
FILTER = [!NOTE], [!TIP]
FILTER_PATTERN = ^\[!WARN
FILTER_GLOB = [[]!CAUTION*
BLOCK_CLASS = callout, callout-block
TITLE_CLASS = callout-title
BLOCK_TAG = aside
`)
	require.NoError(t, err)
	require.NoError(t, LoadMarkdownAlertFrom(cfg))

	assert.Equal(t, MarkdownAlertSettings{
		Enabled:                false,
		Preset:                 "markdown-alert",
		LegacyTitle:            true,
		KeepTrailingWhitespace: true,
		Filter:                 []string{"[!NOTE]", "[!TIP]"},
		FilterPattern:          `^\[!WARN`,
		FilterGlob:             `[[]!CAUTION*`,
		BlockClass:             []string{"callout", "callout-block"},
		TitleClass:             []string{"callout-title"},
		BlockTag:               "aside",
	}, MarkdownAlert)
}

func TestLoadMarkdownAlertUnknownPreset(t *testing.T) {
	defer func() { MarkdownAlert = defaultMarkdownAlert() }()

	cfg, err := NewConfigProviderFromData(`
[markdown.alert]
PRESET = docusaurus
`)
	require.NoError(t, err)
	require.NoError(t, LoadMarkdownAlertFrom(cfg))
	assert.Empty(t, MarkdownAlert.Preset)
}

func TestLoadSettingsFromFile(t *testing.T) {
	defer func() {
		MarkdownAlert = defaultMarkdownAlert()
		log.SetLevel(log.INFO)
	}()

	file := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(file, []byte("[log]\nLEVEL = debug\n\n[markdown.alert]\nBLOCK_TAG = section\n"), 0o644))

	cfg, err := NewConfigProviderFromFile(file)
	require.NoError(t, err)
	require.NoError(t, LoadSettingsFrom(cfg))

	assert.Equal(t, log.DEBUG, Log.Level)
	assert.Equal(t, log.DEBUG, log.GetLevel())
	assert.Equal(t, "section", MarkdownAlert.BlockTag)
	assert.True(t, cfg.HasSection("markdown.alert"))
}

func TestNewConfigProviderFromMissingFile(t *testing.T) {
	cfg, err := NewConfigProviderFromFile(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	assert.False(t, cfg.HasSection("markdown.alert"))
}
