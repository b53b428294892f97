// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"strings"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
	"codeberg.org/forgejo/mdalert/modules/optional"
)

// TitleText is a raw title split into the label shown to readers and the
// key used to look up class names.
type TitleText struct {
	DisplayTitle string
	CheckedTitle string
}

// TitleTextMap splits a raw title into its TitleText.
type TitleTextMap func(title string) TitleText

// DataMap is the last hook applied to render data before it is attached.
type DataMap func(data *mdast.Data) *mdast.Data

type ClassNameMaps struct {
	Block ClassNameMap
	Title ClassNameMap
}

type DataMaps struct {
	Block DataMap
	Title DataMap
}

// Options is one partial configuration fragment. Zero fields are unset.
type Options struct {
	LegacyTitle                 optional.Option[bool]
	TitleFilter                 NameFilter
	TitleKeepTrailingWhitespace optional.Option[bool]
	TitleTextMap                TitleTextMap
	ClassNameMaps               ClassNameMaps
	DataMaps                    DataMaps
}

// Config is a fully populated configuration. Build it with NewConfig; a
// Transformer keeps its own copy and never changes it.
type Config struct {
	LegacyTitle                 bool
	TitleFilter                 NameFilter
	TitleKeepTrailingWhitespace bool
	TitleTextMap                TitleTextMap
	ClassNameMaps               ClassNameMaps
	DataMaps                    DataMaps
}

func identityDataMap(data *mdast.Data) *mdast.Data {
	return data
}

func attentionBlockClassNames(key string) []string {
	return []string{"attention-header", "attention-" + strings.ToLower(key)}
}

// defaultTitleTextMap strips a "[!" ... "]" marker wrapper and passes any
// other title through unchanged.
func defaultTitleTextMap(title string) TitleText {
	text := title
	if len(title) > 3 && strings.HasPrefix(title, "[!") && strings.HasSuffix(title, "]") {
		text = title[2 : len(title)-1]
	}
	return TitleText{DisplayTitle: text, CheckedTitle: text}
}

func passthroughTitleTextMap(title string) TitleText {
	return TitleText{DisplayTitle: title, CheckedTitle: title}
}

// DefaultConfig is the configuration used when LegacyTitle is not set.
func DefaultConfig() Config {
	return Config{
		LegacyTitle:                 false,
		TitleFilter:                 AnyName(),
		TitleKeepTrailingWhitespace: false,
		TitleTextMap:                defaultTitleTextMap,
		ClassNameMaps: ClassNameMaps{
			Block: attentionBlockClassNames,
			Title: ClassName("attention-title"),
		},
		DataMaps: DataMaps{
			Block: identityDataMap,
			Title: identityDataMap,
		},
	}
}

// DefaultLegacyConfig is the configuration used when LegacyTitle is set. It
// accepts the two titles of GitHub's retired "> **Note**" syntax.
func DefaultLegacyConfig() Config {
	cfg := DefaultConfig()
	cfg.LegacyTitle = true
	cfg.TitleFilter = ExactName("Note", "Warning")
	cfg.TitleTextMap = passthroughTitleTextMap
	return cfg
}

// Merge returns o overridden by every set field of other.
func (o Options) Merge(other Options) Options {
	o.LegacyTitle = other.LegacyTitle.Or(o.LegacyTitle)
	o.TitleKeepTrailingWhitespace = other.TitleKeepTrailingWhitespace.Or(o.TitleKeepTrailingWhitespace)
	if other.TitleFilter != nil {
		o.TitleFilter = other.TitleFilter
	}
	if other.TitleTextMap != nil {
		o.TitleTextMap = other.TitleTextMap
	}
	if other.ClassNameMaps.Block != nil {
		o.ClassNameMaps.Block = other.ClassNameMaps.Block
	}
	if other.ClassNameMaps.Title != nil {
		o.ClassNameMaps.Title = other.ClassNameMaps.Title
	}
	if other.DataMaps.Block != nil {
		o.DataMaps.Block = other.DataMaps.Block
	}
	if other.DataMaps.Title != nil {
		o.DataMaps.Title = other.DataMaps.Title
	}
	return o
}

// NewConfig folds fragments in order, later fragments winning, and lays the
// result over DefaultConfig or DefaultLegacyConfig depending on the merged
// LegacyTitle.
func NewConfig(fragments ...Options) Config {
	var merged Options
	for _, fragment := range fragments {
		merged = merged.Merge(fragment)
	}

	cfg := DefaultConfig()
	if merged.LegacyTitle.Value() {
		cfg = DefaultLegacyConfig()
	}
	defaults := Options{
		LegacyTitle:                 optional.Some(cfg.LegacyTitle),
		TitleFilter:                 cfg.TitleFilter,
		TitleKeepTrailingWhitespace: optional.Some(cfg.TitleKeepTrailingWhitespace),
		TitleTextMap:                cfg.TitleTextMap,
		ClassNameMaps:               cfg.ClassNameMaps,
		DataMaps:                    cfg.DataMaps,
	}
	final := defaults.Merge(merged)

	return Config{
		LegacyTitle:                 final.LegacyTitle.Value(),
		TitleFilter:                 final.TitleFilter,
		TitleKeepTrailingWhitespace: final.TitleKeepTrailingWhitespace.Value(),
		TitleTextMap:                final.TitleTextMap,
		ClassNameMaps:               final.ClassNameMaps,
		DataMaps:                    final.DataMaps,
	}
}
