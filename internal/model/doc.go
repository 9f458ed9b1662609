// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for notes and their tags.
//
// # Key Types
//
//   - Note: a titled Markdown record with an immutable ID and ordered tags
//   - Draft: the editable fields of a note, supplied by the form
//   - NoteList: the ordered collection the store owns
//   - Snapshot: the persisted {"notes": [...]} record
//
// Tags are plain strings with exact, case-sensitive equality. There is no tag
// registry: NoteList.AllTags derives the known tags from the notes each time.
//
// # Usage
//
//	n := model.NewNote(model.Draft{Title: "Groceries", Content: "- milk", Tags: []string{"home"}})
//	list := model.NoteList{n}
//	tags := list.AllTags() // ["home"]
package model
