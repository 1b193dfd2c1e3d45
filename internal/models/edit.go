package models

import "time"

// EditProgramInput is a sparse update of the General Information section.
// nil pointers, zero dates and empty enums leave the field as it is.
type EditProgramInput struct {
	Name        *string
	ShortName   *string
	Slug        *string
	Timezone    *string
	Location    *string
	Description *string

	StartDate    time.Time
	EndDate      time.Time
	RevisionDate time.Time

	Type   ProgramType
	Status ProgramStatus

	Logo   bool
	Banner bool
}

// IsEmpty reports whether the update touches no field
func (e EditProgramInput) IsEmpty() bool {
	return e.Name == nil && e.ShortName == nil && e.Slug == nil &&
		e.Timezone == nil && e.Location == nil && e.Description == nil &&
		e.StartDate.IsZero() && e.EndDate.IsZero() && e.RevisionDate.IsZero() &&
		e.Type == "" && e.Status == "" && !e.Logo && !e.Banner
}

// ExpectedOutcome predicts the banner shown after saving the update
func (e EditProgramInput) ExpectedOutcome(rule SlugRule) Outcome {
	if e.Name != nil && *e.Name == "" {
		return OutcomeNameRequired
	}
	if e.Slug != nil && rule.Rejects(*e.Slug) {
		return OutcomeSlugTooShort
	}
	return OutcomeSaved
}

// EditRequirementsInput is an update of the Program Requirements section
type EditRequirementsInput struct {
	// Add appends a new requirement when set
	Add *RequirementInput
	// RemoveExisting deletes the first requirement already on the program
	RemoveExisting bool
}

// IsEmpty reports whether the update touches no requirement
func (e EditRequirementsInput) IsEmpty() bool {
	return e.Add == nil && !e.RemoveExisting
}

// EditProgramFeatures is an update of the Program Features section. The
// toggles flip the current switch state.
type EditProgramFeatures struct {
	PurposeName   *string
	AddPurpose    bool
	RemovePurpose bool

	Color *string

	ToggleVisibility   bool
	ToggleMatchmaking  bool
	ToggleNotification bool
	ToggleSponsor      bool
}

// IsEmpty reports whether the update touches no feature
func (e EditProgramFeatures) IsEmpty() bool {
	return e.PurposeName == nil && !e.AddPurpose && !e.RemovePurpose &&
		e.Color == nil && !e.ToggleVisibility && !e.ToggleMatchmaking &&
		!e.ToggleNotification && !e.ToggleSponsor
}
