// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for marknote.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - StorageConfig: Where and how notes are persisted
//   - UIConfig: Theme, rendering and tag input settings
//   - LogConfig: Log level and file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (MARKNOTE_*)
//   - ~/.marknote/config.toml
//   - ~/.marknote/config.json
//   - Built-in defaults
//
// MARKNOTE_HOME moves the whole ~/.marknote directory.
//
// # Usage
//
//	cfg, err := config.Load()
//	backend := cfg.Storage.Backend
//	_ = cfg.Set("ui.theme", "light")
//	err = config.Save(cfg)
package config
