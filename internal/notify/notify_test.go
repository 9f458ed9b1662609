// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Info, TagAdded("work"))
	r.Notify(Warning, TagDuplicate("work"))

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, Entry{Severity: Warning, Message: `"work" is already selected`}, last)
	assert.Len(t, r.Entries(), 2)

	r.Reset()
	assert.Empty(t, r.Entries())
}

func TestMulti(t *testing.T) {
	var a, b Recorder
	Multi{&a, nil, &b}.Notify(Success, NoteCreated)

	assert.Len(t, a.Entries(), 1)
	assert.Len(t, b.Entries(), 1)
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogger(zap.New(core))

	n.Notify(Error, TitleMissing)
	n.Notify(Warning, TagDuplicate("x"))
	n.Notify(Success, NoteDeleted)

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 3) {
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[2].Level)
		assert.Equal(t, "success", entries[2].ContextMap()["severity"])
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "severity(9)", Severity(9).String())
}
