package models

// Outcome is the terminal state of a form submission, identified by the
// banner the application shows
type Outcome string

// Outcomes
const (
	OutcomeCreated      Outcome = "created"
	OutcomeSaved        Outcome = "saved"
	OutcomeDeleted      Outcome = "deleted"
	OutcomeNameRequired Outcome = "name_required"
	OutcomeSlugTooShort Outcome = "slug_too_short"
	OutcomeError        Outcome = "error"
)

var outcomeBanners = map[Outcome]string{
	OutcomeCreated:      "Program has been successfully",
	OutcomeSaved:        "Success!",
	OutcomeDeleted:      "Program has been successfully deleted.",
	OutcomeNameRequired: "Program name must be at least",
	OutcomeSlugTooShort: "The program slug is optional",
	OutcomeError:        "Uh oh! Something went wrong.",
}

// Banner returns the text the application shows for the outcome
func (o Outcome) Banner() string {
	return outcomeBanners[o]
}

// IsSuccess reports whether the outcome means the application accepted the input
func (o Outcome) IsSuccess() bool {
	return o == OutcomeCreated || o == OutcomeSaved || o == OutcomeDeleted
}

// Label is the scenario-name suffix used by the suites
func (o Outcome) Label() string {
	if o.IsSuccess() {
		return "Success"
	}
	return "Failed"
}
