package models

import (
	"errors"
	"fmt"
)

// FieldType is the input kind of a registration requirement
type FieldType string

// Requirement field types, labelled as the form shows them
const (
	FieldTypeFile        FieldType = "File"
	FieldTypeRadioButton FieldType = "Radio Button"
	FieldTypeSelection   FieldType = "Selection"
	FieldTypeText        FieldType = "Text"
)

// FieldTypes lists every field type in form order
var FieldTypes = []FieldType{FieldTypeFile, FieldTypeRadioButton, FieldTypeSelection, FieldTypeText}

// NeedsValues reports whether the field offers a list of values to pick from
func (f FieldType) NeedsValues() bool {
	return f == FieldTypeRadioButton || f == FieldTypeSelection
}

// AddValueLabel returns the name of the button that appends a value entry,
// or "" when the field has no values
func (f FieldType) AddValueLabel() string {
	switch f {
	case FieldTypeRadioButton:
		return "Add Radio Value"
	case FieldTypeSelection:
		return "Add Selection Value"
	default:
		return ""
	}
}

// OrganizationTarget is the organization kind a requirement applies to
type OrganizationTarget string

// Organization targets
const (
	OrganizationStartup        OrganizationTarget = "Startup"
	OrganizationVentureCapital OrganizationTarget = "Venture Capital"
	OrganizationCorporate      OrganizationTarget = "Corporate"
)

// OrganizationTargets lists every organization target in form order
var OrganizationTargets = []OrganizationTarget{OrganizationStartup, OrganizationVentureCapital, OrganizationCorporate}

// RequirementType tells whether registrants must answer a requirement
type RequirementType string

// Requirement types
const (
	RequirementRequired RequirementType = "Required"
	RequirementOptional RequirementType = "Optional"
)

// RequirementTypes lists every requirement type in form order
var RequirementTypes = []RequirementType{RequirementRequired, RequirementOptional}

// VisibilityType tells whether a requirement is shown on the registration form
type VisibilityType string

// Visibility types
const (
	VisibilityVisible   VisibilityType = "Visible"
	VisibilityInvisible VisibilityType = "Invisible"
)

// VisibilityTypes lists every visibility type in form order
var VisibilityTypes = []VisibilityType{VisibilityVisible, VisibilityInvisible}

// Requirement errors
var (
	ErrEmptyLabel        = errors.New("requirement label cannot be empty")
	ErrValuesRequired    = errors.New("requirement field type needs at least one value")
	ErrUnknownFieldType  = errors.New("unknown requirement field type")
	ErrValuesNotAccepted = errors.New("requirement field type does not accept values")
)

// RequirementInput describes one registration requirement added to a program
type RequirementInput struct {
	Label              string
	FieldType          FieldType
	OrganizationTarget OrganizationTarget
	RequirementType    RequirementType
	Visibility         VisibilityType

	// Values are typed for Radio Button and Selection fields only
	Values []string
	// RemoveValue deletes the last value entry again before preview
	RemoveValue bool
	// Remove deletes the whole requirement after preview
	Remove bool
}

// Validate checks that the requirement can be previewed
func (r RequirementInput) Validate() error {
	if r.Label == "" {
		return ErrEmptyLabel
	}
	switch r.FieldType {
	case FieldTypeFile, FieldTypeText:
		if len(r.Values) > 0 {
			return fmt.Errorf("%w: %s", ErrValuesNotAccepted, r.FieldType)
		}
	case FieldTypeRadioButton, FieldTypeSelection:
		if len(r.Values) == 0 {
			return fmt.Errorf("%w: %s", ErrValuesRequired, r.FieldType)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFieldType, r.FieldType)
	}
	return nil
}
