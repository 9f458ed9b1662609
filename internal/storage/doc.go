// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides note persistence for marknote.
//
// Notes are kept as a single JSON snapshot stored under one key in a small
// key-value store, mirroring how the browser version kept its state in
// localStorage.
//
// # Key Types
//
//   - KV: the key-value interface every backend implements
//   - FileKV: a JSON file holding every key, written atomically
//   - SQLiteKV: a kv table in a SQLite database (modernc.org/sqlite)
//   - MemoryKV: an in-process map for tests and throwaway sessions
//   - Snapshot: loads and saves the note list under the "persist:root" key
//   - Watcher: reports external changes to the backing file
//
// # Usage
//
//	kv, err := storage.Open(storage.BackendFile, "~/.marknote/notes.json")
//	snap := storage.NewSnapshot(kv, storage.DefaultKey)
//	notes, err := snap.Load()
//	err = snap.Save(notes)
//
// # Storage Location
//
// The default file is ~/.marknote/notes.json (or notes.db for sqlite).
package storage
