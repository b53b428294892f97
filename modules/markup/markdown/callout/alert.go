// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"strings"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"

	"github.com/huandu/xstrings"
)

// BlockTagName is the output tag given to an alert block instead of blockquote.
const BlockTagName = "div"

// DisplayText upper-cases the first rune of title and lower-cases the rest.
func DisplayText(title string) string {
	return xstrings.FirstRuneToUpper(strings.ToLower(title))
}

// buildAlert turns block, already stripped of its raw title, into an alert.
func buildAlert(title string, block *mdast.Node, cfg *Config) {
	text := cfg.TitleTextMap(title)

	// a paragraph the title was taken from entirely carries nothing anymore
	if first := block.FirstChild(); first.Is(mdast.TypeParagraph) && len(first.Children) == 0 {
		block.RemoveChildAt(0)
	}

	titleParagraph := mdast.NewParagraph(mdast.NewText(DisplayText(text.DisplayTitle)))
	titleData := &mdast.Data{}
	titleData.SetClassName(cfg.ClassNameMaps.Title.Map(text.CheckedTitle))
	titleParagraph.Data = cfg.DataMaps.Title(titleData)
	block.InsertChild(0, titleParagraph)

	blockData := block.EnsureData()
	blockData.SetClassName(cfg.ClassNameMaps.Block.Map(text.CheckedTitle))
	blockData.HName = BlockTagName
	block.Data = cfg.DataMaps.Block(blockData)
}
