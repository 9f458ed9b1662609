// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markdown supports the note editor and viewer: toolbar insertion
// with caret placement, editor statistics, and terminal rendering through
// glamour.
//
// Offsets are rune offsets into the content, so multi-byte text behaves the
// same as ASCII.
package markdown
