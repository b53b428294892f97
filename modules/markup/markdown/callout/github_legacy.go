// Copyright 2019 The Gitea Authors. All rights reserved.
// Copyright 2024 The Forgejo Authors c/o Codeberg e.V.. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"strings"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
)

// LegacyTitle finds the title of GitHub's legacy callout markup:
//
//	> **Note**
//	> Useful information.
type LegacyTitle struct{}

// ExtractTitle implements TitleStrategy.
func (LegacyTitle) ExtractTitle(block *mdast.Node, cfg *Config) (string, bool) {
	// The first paragraph contains the callout type.
	paragraph := block.FirstChild()
	if !paragraph.Is(mdast.TypeParagraph) {
		return "", false
	}

	// In the legacy markup, the first node of the first paragraph is a
	// strong emphasis holding nothing but the title text.
	strong := paragraph.FirstChild()
	if !strong.Is(mdast.TypeStrong) || len(strong.Children) != 1 || !strong.Children[0].Is(mdast.TypeText) {
		return "", false
	}
	title := strong.Children[0].Value
	if !cfg.TitleKeepTrailingWhitespace {
		title = strings.TrimRight(title, gfmTrailingWhitespace)
	}

	// The title has to end its line.
	next := paragraph.ChildAt(1)
	var rest string
	switch {
	case next == nil, next.Is(mdast.TypeBreak):
	case next.Is(mdast.TypeText):
		trimmed := strings.TrimLeft(next.Value, gfmTrailingWhitespace)
		if !strings.HasPrefix(trimmed, "\n") {
			return "", false
		}
		rest = trimmed[1:]
	default:
		return "", false
	}

	if !cfg.TitleFilter.Match(title) {
		return "", false
	}

	paragraph.RemoveChildAt(0)
	switch {
	case next == nil:
	case next.Is(mdast.TypeBreak):
		paragraph.RemoveChildAt(0)
	case rest == "":
		paragraph.RemoveChildAt(0)
	default:
		next.Value = rest
	}
	return title, true
}
