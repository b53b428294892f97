// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package callout

import (
	"testing"

	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
	"codeberg.org/forgejo/mdalert/modules/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformMarkdownAlertPreset(t *testing.T) {
	root := mdast.NewRoot(mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!WARNING]\nDo not proceed."))))

	assert.Equal(t, 1, New(MarkdownAlertPreset()).Transform(root))

	expected := mdast.NewRoot(&mdast.Node{
		Type: mdast.TypeBlockquote,
		Data: &mdast.Data{
			HName:       "div",
			HProperties: map[string]any{"className": []string{"markdown-alert", "warning"}},
		},
		Children: []*mdast.Node{
			{
				Type:     mdast.TypeParagraph,
				Data:     &mdast.Data{HProperties: map[string]any{"className": []string{"markdown-alert-title"}}},
				Children: []*mdast.Node{mdast.NewText("Warning")},
			},
			mdast.NewParagraph(mdast.NewText("Do not proceed.")),
		},
	})
	assert.Equal(t, expected, root)
}

func TestTransformSecondPassIsNoop(t *testing.T) {
	for name, opts := range map[string][]Options{
		"default": nil,
		"preset":  {MarkdownAlertPreset()},
		"legacy":  {{LegacyTitle: optional.Some(true)}},
	} {
		t.Run(name, func(t *testing.T) {
			root := mdast.NewRoot(
				mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!NOTE]\nbody"))),
				mdast.NewBlockquote(mdast.NewParagraph(mdast.NewStrong(mdast.NewText("Note")), mdast.NewText("\nbody"))),
			)
			tr := New(opts...)
			assert.Equal(t, 1, tr.Transform(root))

			once := root.Clone()
			assert.Equal(t, 0, tr.Transform(root))
			assert.Equal(t, once, root)
		})
	}
}

func TestTransformLeavesOtherNodesUntouched(t *testing.T) {
	root := mdast.NewRoot(
		mdast.NewParagraph(mdast.NewText("[!NOTE]\nnot in a quote")),
		mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("Just a quote\nacross lines"))),
		mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!TIP]"), mdast.NewText("x"))),
		mdast.NewBlockquote(mdast.NewHeading(2, mdast.NewText("[!NOTE]"))),
		mdast.NewBlockquote(),
	)
	before := root.Clone()

	assert.Equal(t, 0, New(MarkdownAlertPreset()).Transform(root))
	assert.Equal(t, before, root)
}

func TestTransformNestedBlockquotes(t *testing.T) {
	inner := mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!TIP]\ninner")))
	outer := mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!NOTE]\nouter")), inner)
	root := mdast.NewRoot(outer)

	assert.Equal(t, 2, New(MarkdownAlertPreset()).Transform(root))
	assert.Equal(t, []string{"markdown-alert", "note"}, outer.Data.ClassName())
	assert.Equal(t, []string{"markdown-alert", "tip"}, inner.Data.ClassName())
	assert.Equal(t, "Tip", inner.Children[0].TextContent())
	assert.Same(t, inner, outer.Children[2])
}

func TestTransformLegacy(t *testing.T) {
	quote := mdast.NewBlockquote(mdast.NewParagraph(mdast.NewStrong(mdast.NewText("Warning")), mdast.NewText("\nCareful")))
	root := mdast.NewRoot(quote)

	tr := New(Options{LegacyTitle: optional.Some(true)})
	_, isLegacy := tr.strategy.(LegacyTitle)
	assert.True(t, isLegacy)
	assert.True(t, tr.Config().LegacyTitle)

	tr.Func()(root)
	require.Len(t, quote.Children, 2)
	assert.Equal(t, "Warning", quote.Children[0].TextContent())
	assert.Equal(t, "Careful", quote.Children[1].TextContent())
	assert.Equal(t, []string{"attention-header", "attention-warning"}, quote.Data.ClassName())
}

func TestTransformLegacyIgnoresGitHubMarkers(t *testing.T) {
	root := mdast.NewRoot(mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!NOTE]\nbody"))))
	before := root.Clone()
	assert.Equal(t, 0, New(Options{LegacyTitle: optional.Some(true)}).Transform(root))
	assert.Equal(t, before, root)
}

func TestTransformPanickingTextMapPropagates(t *testing.T) {
	tr := New(Options{TitleTextMap: func(string) TitleText { panic("bad title map") }})
	root := mdast.NewRoot(mdast.NewBlockquote(mdast.NewParagraph(mdast.NewText("[!NOTE]\nbody"))))
	assert.PanicsWithValue(t, "bad title map", func() { tr.Transform(root) })
}

func TestTransformParsedMarkdown(t *testing.T) {
	source := "> [!NOTE]\n" +
		"> Useful information.\n" +
		"\n" +
		"> [!TIP]\n" +
		">\n" +
		"> Helpful advice.\n" +
		"\n" +
		"> [!CAUTION]  \n" +
		"> Hard break.\n" +
		"\n" +
		"> Regular quote.\n"
	root := mdast.Parse([]byte(source))

	assert.Equal(t, 3, New(MarkdownAlertPreset()).Transform(root))
	require.Len(t, root.Children, 4)

	note := root.Children[0]
	assert.Equal(t, "div", note.Data.HName)
	require.Len(t, note.Children, 2)
	assert.Equal(t, "Note", note.Children[0].TextContent())
	assert.Equal(t, "Useful information.", note.Children[1].TextContent())

	tip := root.Children[1]
	require.Len(t, tip.Children, 2)
	assert.Equal(t, "Tip", tip.Children[0].TextContent())
	assert.Equal(t, "Helpful advice.", tip.Children[1].TextContent())

	caution := root.Children[2]
	require.Len(t, caution.Children, 2)
	assert.Equal(t, []string{"markdown-alert", "caution"}, caution.Data.ClassName())
	assert.Equal(t, "Hard break.", caution.Children[1].TextContent())

	assert.Nil(t, root.Children[3].Data)
}
