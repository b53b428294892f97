// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"codeberg.org/forgejo/mdalert/modules/log"
	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
)

// TitleStrategy locates the raw title of a blockquote and removes it.
// It reports false, without touching the tree, when block is not an alert.
type TitleStrategy interface {
	ExtractTitle(block *mdast.Node, cfg *Config) (title string, ok bool)
}

var (
	_ TitleStrategy = GitHubTitle{}
	_ TitleStrategy = LegacyTitle{}
)

// Transformer rewrites alert blockquotes into titled callout blocks.
type Transformer struct {
	config   Config
	strategy TitleStrategy
}

// New merges fragments into a Config and selects the title strategy once.
func New(fragments ...Options) *Transformer {
	cfg := NewConfig(fragments...)
	var strategy TitleStrategy = GitHubTitle{}
	if cfg.LegacyTitle {
		strategy = LegacyTitle{}
	}
	return &Transformer{config: cfg, strategy: strategy}
}

// Config returns a copy of the configuration in use.
func (t *Transformer) Config() Config {
	return t.config
}

// Transform walks one document and converts every qualifying blockquote in
// place. It returns the number of converted blocks.
func (t *Transformer) Transform(root *mdast.Node) int {
	converted := 0
	mdast.Visit(root, func(n *mdast.Node, _ int, _ *mdast.Node) mdast.VisitStatus {
		if n.Is(mdast.TypeBlockquote) && t.transformBlockquote(n) {
			converted++
		}
		return mdast.VisitContinue
	})
	return converted
}

// Func returns Transform as a plain traversal function for host pipelines.
func (t *Transformer) Func() func(root *mdast.Node) {
	return func(root *mdast.Node) {
		t.Transform(root)
	}
}

func (t *Transformer) transformBlockquote(block *mdast.Node) bool {
	// a block that already renders under another tag has been converted before
	if block.Data != nil && block.Data.HName != "" {
		return false
	}
	title, ok := t.strategy.ExtractTitle(block, &t.config)
	if !ok {
		return false
	}
	buildAlert(title, block, &t.config)
	if log.IsTrace() {
		log.Trace("callout: converted blockquote with title %q into %v", title, block.Data.ClassName())
	}
	return true
}
