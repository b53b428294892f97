// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"fmt"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
	"codeberg.org/forgejo/mdalert/modules/optional"
	"codeberg.org/forgejo/mdalert/modules/setting"
)

// OptionsFromSetting converts [markdown.alert] settings into option
// fragments, preset first so that explicit settings override it.
func OptionsFromSetting(s setting.MarkdownAlertSettings) ([]Options, error) {
	var fragments []Options
	switch s.Preset {
	case "":
	case MarkdownAlertPresetName:
		fragments = append(fragments, MarkdownAlertPreset())
	default:
		return nil, fmt.Errorf("unknown markdown alert preset %q", s.Preset)
	}

	opts := Options{
		LegacyTitle:                 optional.FromNonDefault(s.LegacyTitle),
		TitleKeepTrailingWhitespace: optional.FromNonDefault(s.KeepTrailingWhitespace),
	}

	var filters []NameFilter
	if len(s.Filter) > 0 {
		filters = append(filters, ExactName(s.Filter...))
	}
	if s.FilterPattern != "" {
		f, err := PatternName(s.FilterPattern)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if s.FilterGlob != "" {
		f, err := GlobName(s.FilterGlob)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if len(filters) > 0 {
		opts.TitleFilter = AnyOf(filters...)
	}

	if len(s.BlockClass) > 0 {
		opts.ClassNameMaps.Block = ClassNames(s.BlockClass...)
	}
	if len(s.TitleClass) > 0 {
		opts.ClassNameMaps.Title = ClassNames(s.TitleClass...)
	}
	if tag := s.BlockTag; tag != "" {
		opts.DataMaps.Block = func(data *mdast.Data) *mdast.Data {
			data.HName = tag
			return data
		}
	}

	return append(fragments, opts), nil
}
