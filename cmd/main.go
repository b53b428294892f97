// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"fmt"

	"codeberg.org/forgejo/mdalert/modules/log"
	"codeberg.org/forgejo/mdalert/modules/setting"

	"github.com/urfave/cli/v2"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "INI file holding [log] and [markdown.alert] settings",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Override the [log] LEVEL setting (trace, debug, info, warn, error, none)",
		},
	}
}

// loadSettings reads the configuration file named by --config, then applies --log-level.
func loadSettings(c *cli.Context) error {
	rootCfg, err := setting.NewConfigProviderFromFile(c.String("config"))
	if err != nil {
		return err
	}
	if err := setting.LoadSettingsFrom(rootCfg); err != nil {
		return err
	}
	if c.IsSet("log-level") {
		log.SetLevel(log.ParseLevel(c.String("log-level"), setting.Log.Level))
	}
	return nil
}

func NewMainApp(ctx context.Context, version, versionExtra string) *cli.App {
	app := cli.NewApp()
	app.Name = "mdalert"
	app.Usage = "Turn GitHub-style alert blockquotes into titled callout blocks"
	app.Description = `mdalert parses Markdown, rewrites "> [!NOTE]" style blockquotes into
alert blocks and prints the resulting document tree.`
	app.Version = version + versionExtra
	app.EnableBashCompletion = true
	app.Reader = ContextGetStdin(ctx)
	app.Writer = ContextGetStdout(ctx)
	app.ErrWriter = ContextGetStderr(ctx)
	app.Flags = globalFlags()
	app.Before = loadSettings
	app.Commands = []*cli.Command{
		CmdTransform(ctx),
	}
	return app
}

func RunMainApp(ctx context.Context, app *cli.App, args ...string) error {
	err := app.RunContext(ctx, args)
	if err == nil {
		return nil
	}
	log.Error("Command error: %v", err)
	_, _ = fmt.Fprintf(app.ErrWriter, "Command error: %v\n", err)
	if ContextGetNoExit(ctx) {
		return err
	}
	cli.OsExiter(1)
	return err
}
