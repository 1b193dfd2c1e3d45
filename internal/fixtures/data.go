// Package fixtures supplies the input values shared by every browser suite.
// Dates are relative to process start and computed once.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// ProgramFill is the "input all" value set of the create-program form
type ProgramFill struct {
	Name         string
	ShortName    string
	Slug         string
	Timezone     string
	StartDate    time.Time
	EndDate      time.Time
	RevisionDate time.Time
	Location     string
	Description  string
}

// NewProgramFill builds the valid program values relative to now
func NewProgramFill(now time.Time) ProgramFill {
	return ProgramFill{
		Name:         "Test Program",
		ShortName:    "TP",
		Slug:         "test-program",
		Timezone:     "asia/jakarta",
		StartDate:    now.AddDate(0, 0, 3),
		EndDate:      now.AddDate(0, 0, 6),
		RevisionDate: now.AddDate(0, 0, 5),
		Location:     "Jakarta, Indonesia",
		Description:  "This is a test program",
	}
}

// Program holds the valid values for this process
var Program = NewProgramFill(time.Now())

// ProgramEdit holds the values typed into the edit form
var ProgramEdit = struct {
	Name        string
	ShortName   string
	Slug        string
	Timezone    string
	Location    string
	Description string
}{
	Name:        "Test Program Edited",
	ShortName:   "TPE",
	Slug:        "test-program-edited",
	Timezone:    "asia/bangkok",
	Location:    "Bandung, Indonesia",
	Description: "This is an edited test program",
}

// Empty holds the empty variants of the form fields. The zero Date keeps
// the date picker default.
var Empty = struct {
	Name        string
	ShortName   string
	Slug        string
	Timezone    string
	Location    string
	Description string
	Date        time.Time
}{}

// CharacterSet holds boundary-length strings used to probe validation
type CharacterSet struct {
	One   string
	Two   string
	Three string
	Four  string
	Five  string
}

// OfLength returns a string of n characters drawn from the alphabet
func (CharacterSet) OfLength(n int) string {
	if n <= 0 {
		return ""
	}
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[i%len(alphabet)])
	}
	return b.String()
}

// Characters holds the 1 to 5 character strings
var Characters = CharacterSet{
	One:   "a",
	Two:   "ab",
	Three: "abc",
	Four:  "abcd",
	Five:  "abcde",
}

// Requirement holds the values of the requirement builder
var Requirement = struct {
	Label       string
	RadioValue  string
	PurposeName string
}{
	Label:       "Test Requirement",
	RadioValue:  "Test Value",
	PurposeName: "Test Purpose",
}

// Colors holds the theme colours typed into the colour input
var Colors = struct {
	Primary   string
	Secondary string
}{
	Primary:   "#1D4ED8",
	Secondary: "#DC2626",
}

// Discarded holds values typed into the edit form and then cancelled. No
// scenario ever saves them.
var Discarded = struct {
	Name  string
	Color string
}{
	Name:  "Discarded Program Name",
	Color: "#16A34A",
}

// FormatDate renders a date the way the date picker labels it, e.g. "June 1st, 2025"
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %s, %d", t.Format("January"), humanize.Ordinal(t.Day()), t.Year())
}

// DayButtonName is the accessible name of the day cell in the date picker
func DayButtonName(t time.Time) string {
	return t.Format("Monday") + ", " + FormatDate(t)
}

// ValidProgram returns the "input all" program with mods applied in order
func ValidProgram(mods ...func(*models.ProgramInput)) models.ProgramInput {
	p := models.ProgramInput{
		Name:         Program.Name,
		ShortName:    Program.ShortName,
		Slug:         Program.Slug,
		Timezone:     Program.Timezone,
		StartDate:    Program.StartDate,
		EndDate:      Program.EndDate,
		RevisionDate: Program.RevisionDate,
		Location:     Program.Location,
		Description:  Program.Description,
		Type:         models.ProgramTypeHybrid,
		Status:       models.ProgramStatusOpenRegistration,
		Logo:         true,
		Banner:       true,
	}
	for _, mod := range mods {
		mod(&p)
	}
	return p
}

// MinimalProgram returns a program with only the always-filled text fields
func MinimalProgram(mods ...func(*models.ProgramInput)) models.ProgramInput {
	p := models.ProgramInput{
		Name:      Program.Name,
		ShortName: Program.ShortName,
		Slug:      Program.Slug,
	}
	for _, mod := range mods {
		mod(&p)
	}
	return p
}

// ValidRequirement returns a required, visible File requirement for startups
// with mods applied in order
func ValidRequirement(mods ...func(*models.RequirementInput)) models.RequirementInput {
	r := models.RequirementInput{
		Label:              Requirement.Label,
		FieldType:          models.FieldTypeFile,
		OrganizationTarget: models.OrganizationStartup,
		RequirementType:    models.RequirementRequired,
		Visibility:         models.VisibilityVisible,
	}
	for _, mod := range mods {
		mod(&r)
	}
	if r.FieldType.NeedsValues() && len(r.Values) == 0 {
		r.Values = []string{Requirement.RadioValue}
	}
	return r
}
