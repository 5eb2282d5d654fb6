// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/eco-ideas/internal/service"
	"github.com/MKhiriev/eco-ideas/models"
)

// Page paths without a gate requirement.
const (
	WelcomePath = "/"
	SignUpPath  = "/signup"
)

// NavigateTo asks the root model to open Page. Payload, if set, is
// delivered to the page after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// loginFrom tells the login page where to return after signing in.
type loginFrom struct {
	From string
}

// returnAfterProfile opens Page now and retries From once the signed-in
// principal's profile is resolved.
type returnAfterProfile struct {
	From string
	Page string
}

// notice is a status line handed to the next page.
type notice struct {
	Text string
}

type restoreDoneMsg struct {
	err error
}

type sessionChangedMsg struct {
	change service.SessionChange
}

type signInDoneMsg struct {
	err error
}

type signUpDoneMsg struct {
	email string
	err   error
}

type signOutDoneMsg struct{}

type ideasLoadedMsg struct {
	err error
}

type goalsLoadedMsg struct {
	err error
}

type ideaCreatedMsg struct {
	idea models.Idea
	err  error
}

type statusUpdatedMsg struct {
	idea models.Idea
	err  error
}

type goalsSavedMsg struct {
	failures []service.GoalFailure
	total    int
}

type categoryToggledMsg struct {
	category models.Category
	active   bool
	err      error
}

type usersLoadedMsg struct {
	users []models.Profile
	err   error
}

type roleChangedMsg struct {
	profile models.Profile
	err     error
}

type notificationsLoadedMsg struct {
	items []models.Notification
	err   error
}

type chatReplyMsg struct {
	reply string
	err   error
}

type copiedMsg struct {
	err error
}
