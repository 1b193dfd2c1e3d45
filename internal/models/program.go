package models

import (
	"time"
	"unicode/utf8"
)

// ProgramType is the delivery mode offered by the program form
type ProgramType string

// Program types
const (
	ProgramTypeOffline ProgramType = "offline"
	ProgramTypeOnline  ProgramType = "online"
	ProgramTypeHybrid  ProgramType = "hybrid"
)

// ProgramTypes lists every program type in form order
var ProgramTypes = []ProgramType{ProgramTypeOffline, ProgramTypeOnline, ProgramTypeHybrid}

// ProgramStatus is the lifecycle status offered by the program form
type ProgramStatus string

// Program statuses
const (
	ProgramStatusDraft            ProgramStatus = "draft"
	ProgramStatusUpcoming         ProgramStatus = "upcoming"
	ProgramStatusOpenRegistration ProgramStatus = "open_registration"
	ProgramStatusOnGoing          ProgramStatus = "on_going"
	ProgramStatusEnded            ProgramStatus = "ended"
)

// ProgramStatuses lists every program status in form order
var ProgramStatuses = []ProgramStatus{
	ProgramStatusDraft,
	ProgramStatusUpcoming,
	ProgramStatusOpenRegistration,
	ProgramStatusOnGoing,
	ProgramStatusEnded,
}

// PurposeInput is one meeting purpose entry of the matchmaking feature
type PurposeInput struct {
	Name   string
	Remove bool
}

// ProgramInput holds the values typed into the create-program form.
//
// Name, ShortName and Slug are always filled, even when empty. Every other
// field is optional: its zero value leaves the form control untouched.
type ProgramInput struct {
	Name      string
	ShortName string
	Slug      string

	Timezone string

	StartDate    time.Time
	EndDate      time.Time
	RevisionDate time.Time

	Location    string
	Description string

	Type   ProgramType
	Status ProgramStatus

	// nil keeps the form default, otherwise the switch is driven to the value
	Visible      *bool
	Matchmaking  *bool
	Notification *bool

	Logo   bool
	Banner bool

	Color string

	Requirements []RequirementInput
	Purposes     []PurposeInput
	AddAsManager bool
}

// Bool returns a pointer to v, for the optional switches of the program forms
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v, for the sparse fields of the edit forms
func String(v string) *string {
	return &v
}

// HasSlug reports whether a custom slug is typed; an empty slug is generated
// by the application from the name
func (p ProgramInput) HasSlug() bool {
	return p.Slug != ""
}

// ExpectedOutcome predicts the banner the application shows when the form is
// submitted, according to the given slug rule
func (p ProgramInput) ExpectedOutcome(rule SlugRule) Outcome {
	if p.Name == "" {
		return OutcomeNameRequired
	}
	if p.HasSlug() && rule.Rejects(p.Slug) {
		return OutcomeSlugTooShort
	}
	return OutcomeCreated
}

// SlugRule is the application's minimum slug length. It is a versioned
// contract of the application under test: older releases rejected only
// slugs of 1-3 characters, current ones reject 1-5.
type SlugRule struct {
	MinLength int
}

// DefaultSlugRule is the rule observed on the current application
var DefaultSlugRule = SlugRule{MinLength: 6}

// Rejects reports whether a typed slug fails validation. An empty slug is
// never rejected.
func (r SlugRule) Rejects(slug string) bool {
	if slug == "" {
		return false
	}
	return utf8.RuneCountInString(slug) < r.MinLength
}
