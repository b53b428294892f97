// Copyright 2024 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"slices"
	"strings"

	"codeberg.org/forgejo/mdalert/modules/log"
)

// KnownMarkdownAlertPresets lists the accepted values of PRESET.
var KnownMarkdownAlertPresets = []string{"", "markdown-alert"}

type MarkdownAlertSettings struct {
	Enabled                bool     `ini:"ENABLED"`
	Preset                 string   `ini:"PRESET"`
	LegacyTitle            bool     `ini:"LEGACY_TITLE"`
	KeepTrailingWhitespace bool     `ini:"KEEP_TRAILING_WHITESPACE"`
	Filter                 []string `ini:"FILTER"`
	FilterPattern          string   `ini:"FILTER_PATTERN"`
	FilterGlob             string   `ini:"FILTER_GLOB"`
	BlockClass             []string `ini:"BLOCK_CLASS"`
	TitleClass             []string `ini:"TITLE_CLASS"`
	BlockTag               string   `ini:"BLOCK_TAG"`
}

// MarkdownAlert settings
var MarkdownAlert = defaultMarkdownAlert()

func defaultMarkdownAlert() MarkdownAlertSettings {
	return MarkdownAlertSettings{
		Enabled: true,
	}
}

// LoadMarkdownAlertFrom reads the [markdown.alert] section.
func LoadMarkdownAlertFrom(rootCfg ConfigProvider) error {
	s := defaultMarkdownAlert()
	if err := mapSetting(rootCfg, "markdown.alert", &s); err != nil {
		return err
	}

	s.Preset = strings.ToLower(strings.TrimSpace(s.Preset))
	if !slices.Contains(KnownMarkdownAlertPresets, s.Preset) {
		log.Warn("Unknown [markdown.alert] PRESET %q, using none", s.Preset)
		s.Preset = ""
	}
	s.Filter = slices.DeleteFunc(s.Filter, func(v string) bool { return v == "" })
	s.BlockClass = strings.Fields(strings.Join(s.BlockClass, " "))
	s.TitleClass = strings.Fields(strings.Join(s.TitleClass, " "))
	s.BlockTag = strings.TrimSpace(s.BlockTag)

	MarkdownAlert = s
	return nil
}
