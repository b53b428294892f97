// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"regexp"
	"strings"
)

// MarkdownAlertPresetName is the settings name of MarkdownAlertPreset.
const MarkdownAlertPresetName = "markdown-alert"

const markdownAlertKindPrefix = "!"

// markdownAlertTitle matches a whole title made of one marker, optionally
// carrying a quoted label: [!NOTE] or [!NOTE "Read this"].
var markdownAlertTitle = regexp.MustCompile(`^\[!(?i:attention|caution|danger|error|hint|important|note|tip|warning)(?: ".*")?\]$`)

func markdownAlertKind(checkedTitle string) string {
	return strings.ToLower(strings.TrimPrefix(checkedTitle, markdownAlertKindPrefix))
}

func markdownAlertTitleTextMap(title string) TitleText {
	text := strings.TrimSuffix(strings.TrimPrefix(title, "["), "]")
	if checked, label, ok := strings.Cut(text, ` "`); ok {
		return TitleText{
			DisplayTitle: strings.TrimSuffix(label, `"`),
			CheckedTitle: checked,
		}
	}
	return TitleText{
		DisplayTitle: strings.TrimPrefix(text, markdownAlertKindPrefix),
		CheckedTitle: text,
	}
}

// MarkdownAlertPreset reproduces the "markdown-alert" styling used by static
// site generators: a block classed "markdown-alert <kind>" with a title
// paragraph classed "markdown-alert-title".
func MarkdownAlertPreset() Options {
	return Options{
		TitleFilter:  markdownAlertTitle.MatchString,
		TitleTextMap: markdownAlertTitleTextMap,
		ClassNameMaps: ClassNameMaps{
			Block: func(key string) []string {
				return []string{"markdown-alert", markdownAlertKind(key)}
			},
			Title: ClassName("markdown-alert-title"),
		},
	}
}
