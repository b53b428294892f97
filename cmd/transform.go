// Copyright 2026 The Forgejo Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"codeberg.org/forgejo/mdalert/modules/json"
	"codeberg.org/forgejo/mdalert/modules/log"
	"codeberg.org/forgejo/mdalert/modules/markup/markdown/callout"
	"codeberg.org/forgejo/mdalert/modules/markup/mdast"
	"codeberg.org/forgejo/mdalert/modules/setting"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func CmdTransform(ctx context.Context) *cli.Command {
	return &cli.Command{
		Name:      "transform",
		Usage:     "Convert the alert blockquotes of a Markdown file and print the tree",
		ArgsUsage: "[FILE]",
		Description: `Reads FILE, or standard input when FILE is "-" or missing, and prints
the converted document tree.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "json",
				Usage:   "Output format: json or yaml",
			},
		},
		Action: func(cliCtx *cli.Context) error { return RunTransform(ctx, cliCtx) },
	}
}

func readSource(ctx context.Context, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(ContextGetStdin(ctx))
	}
	return os.ReadFile(name)
}

func writeTree(w io.Writer, format string, root *mdast.Node) error {
	switch format {
	case "json":
		out, err := json.Marshal(root)
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, out, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func RunTransform(ctx context.Context, cliCtx *cli.Context) error {
	if cliCtx.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", cliCtx.NArg())
	}
	format := cliCtx.String("format")
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown output format %q", format)
	}

	source, err := readSource(ctx, cliCtx.Args().First())
	if err != nil {
		return fmt.Errorf("unable to read markdown: %w", err)
	}
	root := mdast.Parse(source)

	if setting.MarkdownAlert.Enabled {
		fragments, err := callout.OptionsFromSetting(setting.MarkdownAlert)
		if err != nil {
			return fmt.Errorf("invalid [markdown.alert] settings: %w", err)
		}
		converted := callout.New(fragments...).Transform(root)
		log.Debug("Converted %d alert blockquote(s)", converted)
	} else {
		log.Debug("[markdown.alert] is disabled, printing the tree unchanged")
	}

	return writeTree(ContextGetStdout(ctx), format, root)
}
