// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/affinetree/request"
	"github.com/katalvlaran/affinetree/segtree"
)

// fileConfig mirrors the TOML config file. Unset keys keep their defaults.
//
//	index_base = 1
//	precision = 5
//	strategy = "iterative"
//	reject_non_finite = true
//	log_level = "debug"
type fileConfig struct {
	IndexBase       *int   `toml:"index_base"`
	Precision       *int   `toml:"precision"`
	Strategy        string `toml:"strategy"`
	RejectNonFinite *bool  `toml:"reject_non_finite"`
	LogLevel        string `toml:"log_level"`
}

// settings is the resolved configuration for a run.
type settings struct {
	request  request.Config
	strategy segtree.Strategy
	logLevel *log.Level
}

func defaultSettings() settings {
	return settings{request: request.DefaultConfig(), strategy: segtree.DefaultStrategy}
}

// loadConfig reads path (if non-empty) over the defaults.
func loadConfig(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("parse config %s: unknown keys %v", path, undecoded)
	}

	return s.merge(fc)
}

func (s settings) merge(fc fileConfig) (settings, error) {
	if fc.IndexBase != nil {
		s.request.IndexBase = *fc.IndexBase
	}
	if fc.Precision != nil {
		s.request.Precision = *fc.Precision
	}
	if fc.RejectNonFinite != nil {
		s.request.RejectNonFinite = *fc.RejectNonFinite
	}
	if fc.Strategy != "" {
		st, err := segtree.ParseStrategy(strings.ToLower(fc.Strategy))
		if err != nil {
			return s, err
		}
		s.strategy = st
	}
	if fc.LogLevel != "" {
		lvl, err := log.ParseLevel(fc.LogLevel)
		if err != nil {
			return s, fmt.Errorf("log_level: %w", err)
		}
		s.logLevel = &lvl
	}

	return s, s.request.Validate()
}
