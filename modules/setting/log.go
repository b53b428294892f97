// Copyright 2023 The Gitea Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package setting

import (
	"codeberg.org/forgejo/mdalert/modules/log"
)

// Log settings
var Log = struct {
	Level log.Level
}{
	Level: log.INFO,
}

// LoadLogFrom reads LEVEL from the [log] section and applies it.
func LoadLogFrom(rootCfg ConfigProvider) {
	sec := rootCfg.Section("log")
	Log.Level = log.ParseLevel(sec.Key("LEVEL").MustString("info"), log.INFO)
	log.SetLevel(Log.Level)
}

// LoadSettingsFrom loads every section this program reads.
func LoadSettingsFrom(rootCfg ConfigProvider) error {
	LoadLogFrom(rootCfg)
	return LoadMarkdownAlertFrom(rootCfg)
}
