// Copyright 2019 The Gitea Authors. All rights reserved.
// Copyright 2024 The Forgejo Authors c/o Codeberg e.V.. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"strings"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
)

// gfmTrailingWhitespace is the whitespace GFM ignores at the end of a line.
const gfmTrailingWhitespace = " \t\v\f\r"

// GitHubTitle finds the title of GitHub's alert markup:
//
//	> [!NOTE]
//	> Useful information.
//
// The title is the first line of the first text of the first paragraph.
type GitHubTitle struct{}

// ExtractTitle implements TitleStrategy.
func (GitHubTitle) ExtractTitle(block *mdast.Node, cfg *Config) (string, bool) {
	paragraph := block.FirstChild()
	if !paragraph.Is(mdast.TypeParagraph) {
		return "", false
	}
	text := paragraph.FirstChild()
	if !text.Is(mdast.TypeText) {
		return "", false
	}

	if titleEnd := strings.IndexByte(text.Value, '\n'); titleEnd >= 0 {
		title := text.Value[:titleEnd]
		if !cfg.TitleKeepTrailingWhitespace {
			title = strings.TrimRight(title, gfmTrailingWhitespace)
		}
		if !cfg.TitleFilter.Match(title) {
			return "", false
		}
		text.Value = text.Value[titleEnd+1:]
		return title, true
	}

	// Without a newline the title has to be the whole paragraph. GitHub
	// wants a line break after the marker; inside a paragraph that can only
	// be an explicit break node.
	hasBreak := false
	if len(paragraph.Children) > 1 {
		if !paragraph.Children[1].Is(mdast.TypeBreak) {
			return "", false
		}
		hasBreak = true
	}
	title := text.Value
	if !cfg.TitleFilter.Match(title) {
		return "", false
	}
	if hasBreak {
		paragraph.RemoveChildAt(1)
	}
	paragraph.RemoveChildAt(0)
	return title, true
}
