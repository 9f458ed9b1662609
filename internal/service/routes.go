// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package service

import (
	"fmt"
	"strings"
)

// Screen identifies a view.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
	ScreenCreate
	ScreenEdit
)

// Route is a navigation target: a screen plus the note it shows.
type Route struct {
	Screen Screen
	ID     string
}

var (
	ListRoute   = Route{Screen: ScreenList}
	CreateRoute = Route{Screen: ScreenCreate}
)

// DetailRoute shows the note with id.
func DetailRoute(id string) Route { return Route{Screen: ScreenDetail, ID: id} }

// EditRoute edits the note with id.
func EditRoute(id string) Route { return Route{Screen: ScreenEdit, ID: id} }

// String returns the path form: list, create, detail/<id> or edit/<id>.
func (r Route) String() string {
	switch r.Screen {
	case ScreenDetail:
		return "detail/" + r.ID
	case ScreenCreate:
		return "create"
	case ScreenEdit:
		return "edit/" + r.ID
	default:
		return "list"
	}
}

// ParseRoute reads the path form produced by String.
func ParseRoute(s string) (Route, error) {
	s = strings.Trim(s, "/")
	switch {
	case s == "" || s == "list":
		return ListRoute, nil
	case s == "create":
		return CreateRoute, nil
	case strings.HasPrefix(s, "detail/") && len(s) > len("detail/"):
		return DetailRoute(strings.TrimPrefix(s, "detail/")), nil
	case strings.HasPrefix(s, "edit/") && len(s) > len("edit/"):
		return EditRoute(strings.TrimPrefix(s, "edit/")), nil
	default:
		return Route{}, fmt.Errorf("unknown route %q", s)
	}
}
