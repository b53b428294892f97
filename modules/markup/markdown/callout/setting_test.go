// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"testing"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
	"codeberg.org/forgejo/mdalert/modules/setting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromSettingDefaults(t *testing.T) {
	fragments, err := OptionsFromSetting(setting.MarkdownAlertSettings{Enabled: true})
	require.NoError(t, err)
	require.Len(t, fragments, 1)

	cfg := NewConfig(fragments...)
	assert.False(t, cfg.LegacyTitle)
	assert.True(t, cfg.TitleFilter("anything"))
	assert.Equal(t, []string{"attention-title"}, cfg.ClassNameMaps.Title("NOTE"))
}

func TestOptionsFromSetting(t *testing.T) {
	fragments, err := OptionsFromSetting(setting.MarkdownAlertSettings{
		Preset:                 MarkdownAlertPresetName,
		KeepTrailingWhitespace: true,
		Filter:                 []string{"[!NOTE]"},
		FilterPattern:          `^\[!WARN`,
		FilterGlob:             `*!CAUTION]`,
		TitleClass:             []string{"callout-title"},
		BlockTag:               "aside",
	})
	require.NoError(t, err)
	require.Len(t, fragments, 2)

	cfg := NewConfig(fragments...)
	assert.True(t, cfg.TitleKeepTrailingWhitespace)
	assert.True(t, cfg.TitleFilter("[!NOTE]"))
	assert.True(t, cfg.TitleFilter("[!WARNING]"))
	assert.True(t, cfg.TitleFilter("[!CAUTION]"))
	assert.False(t, cfg.TitleFilter("[!TIP]"))
	assert.Equal(t, []string{"callout-title"}, cfg.ClassNameMaps.Title("!NOTE"))
	// preset block classes survive since BLOCK_CLASS is unset
	assert.Equal(t, []string{"markdown-alert", "note"}, cfg.ClassNameMaps.Block("!NOTE"))

	root := mdast.NewRoot(mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!NOTE]\nbody"))))
	New(fragments...).Transform(root)
	assert.Equal(t, "aside", root.Children[0].Data.HName)
	assert.Equal(t, "Note", root.Children[0].Children[0].TextContent())
}

func TestOptionsFromSettingLegacy(t *testing.T) {
	fragments, err := OptionsFromSetting(setting.MarkdownAlertSettings{
		LegacyTitle: true,
		BlockClass:  []string{"callout"},
	})
	require.NoError(t, err)

	cfg := NewConfig(fragments...)
	assert.True(t, cfg.LegacyTitle)
	assert.True(t, cfg.TitleFilter("Note"))
	assert.Equal(t, []string{"callout"}, cfg.ClassNameMaps.Block("Note"))
}

func TestOptionsFromSettingErrors(t *testing.T) {
	_, err := OptionsFromSetting(setting.MarkdownAlertSettings{Preset: "unknown"})
	assert.ErrorContains(t, err, `unknown markdown alert preset "unknown"`)

	_, err = OptionsFromSetting(setting.MarkdownAlertSettings{FilterPattern: "("})
	assert.ErrorContains(t, err, "invalid title pattern")

	_, err = OptionsFromSetting(setting.MarkdownAlertSettings{FilterGlob: "[!"})
	assert.ErrorContains(t, err, "invalid title glob")
}
