// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the authoritative, ordered list of notes.
//
// Every successful mutation writes the full list back through the injected
// Persister. Readers get copies, so a caller can never change the list
// behind the store's back.
//
// # Usage
//
//	st, err := store.Open(storage.NewSnapshot(kv, ""), store.WithLogger(log))
//	n, err := st.Create(model.Draft{Title: "Groceries", Content: "- milk"})
//	err = st.Update(n.ID, model.Draft{Title: "Shopping", Content: "- milk"})
//	err = st.Delete(n.ID) // errors.Is(err, store.ErrNoteNotFound) on a second call
package store
