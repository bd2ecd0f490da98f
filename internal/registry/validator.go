// Package registry validates candidate supervisor submissions and drives
// them through to the record store.
package registry

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iedaejin/capstones-supervisors-form/internal/catalog"
	"github.com/iedaejin/capstones-supervisors-form/internal/models"
)

// Reason identifies a validation rule a submission violated.
type Reason string

const (
	// NameRequired: the supervisor name is empty or whitespace-only.
	NameRequired Reason = "NAME_REQUIRED"
	// NameInvalid: the supervisor name contains a line break or other
	// control character. Records are one line each and the name feeds the
	// duplicate index, so a name with an embedded newline would split into
	// a phantom second record under someone else's name.
	NameInvalid Reason = "NAME_INVALID"
	// DuplicateSupervisor: the trimmed name is already in the store.
	// Each supervisor can only submit once.
	DuplicateSupervisor Reason = "DUPLICATE_SUPERVISOR"
	// ProgramRequired: no program was selected.
	ProgramRequired Reason = "PROGRAM_REQUIRED"
	// CapacityOutOfRange: capacity is outside [1,10]. The form clamps
	// this client-side; the validator re-checks for non-form clients.
	CapacityOutOfRange Reason = "CAPACITY_OUT_OF_RANGE"
	// UnknownProgram: a selected program is not in the catalog.
	UnknownProgram Reason = "UNKNOWN_PROGRAM"
	// UnknownTopic: a selected topic number is not in the catalog for
	// its program.
	UnknownTopic Reason = "UNKNOWN_TOPIC"
	// UnknownExpertise: an expertise level is not one of the four tiers.
	UnknownExpertise Reason = "UNKNOWN_EXPERTISE"
)

// Rejection is a single validation failure, shown to the user verbatim.
type Rejection struct {
	Code    Reason `json:"code"`
	Message string `json:"message"`
}

// Result collects every validation failure of a submission plus any
// non-fatal advisories. Checks are never short-circuited so the user can
// fix all issues in one pass.
type Result struct {
	Rejections []Rejection `json:"rejections,omitempty"`
	Advisories []string    `json:"advisories,omitempty"`
}

// Accepted reports whether the submission passed validation. Advisories do
// not affect acceptance.
func (r Result) Accepted() bool {
	return len(r.Rejections) == 0
}

// Has reports whether the result contains a rejection with the given code.
func (r Result) Has(code Reason) bool {
	for _, rej := range r.Rejections {
		if rej.Code == code {
			return true
		}
	}
	return false
}

func (r *Result) reject(code Reason, message string) {
	r.Rejections = append(r.Rejections, Rejection{Code: code, Message: message})
}

// minRecommendedTopics is advisory only: supervisors are nudged toward
// selecting 3-5 topics but never blocked below that.
const minRecommendedTopics = 3

// Validate checks a candidate submission against the catalog and the set
// of already-recorded supervisor names.
//
// A submission with a selected program but zero topics for it is accepted;
// the form nudges toward topics per program but the pipeline does not
// enforce it.
func Validate(sub models.Submission, cat *catalog.Catalog, existing map[string]struct{}) Result {
	var result Result

	name := sub.TrimmedName()
	if name == "" {
		result.reject(NameRequired, "Supervisor name is required")
	} else if strings.ContainsFunc(name, unicode.IsControl) {
		result.reject(NameInvalid, "Supervisor name must not contain line breaks or control characters")
	} else if _, dup := existing[name]; dup {
		result.reject(DuplicateSupervisor,
			fmt.Sprintf("Supervisor %q has already submitted their information. Each supervisor can only submit once.", name))
	}

	if len(sub.Selections) == 0 {
		result.reject(ProgramRequired, "At least one program must be selected")
	}

	if sub.Capacity < models.CapacityMin || sub.Capacity > models.CapacityMax {
		result.reject(CapacityOutOfRange,
			fmt.Sprintf("Capacity must be between %d and %d, got %d", models.CapacityMin, models.CapacityMax, sub.Capacity))
	}

	for _, sel := range sub.Selections {
		if !cat.HasProgram(sel.Program) {
			result.reject(UnknownProgram,
				fmt.Sprintf("Program %q is not in the topic catalog", sel.Program))
			continue
		}
		for _, topic := range sel.Topics {
			if !cat.HasTopic(sel.Program, topic.Number) {
				result.reject(UnknownTopic,
					fmt.Sprintf("Topic %s is not in the catalog", models.TopicID(sel.Program, topic.Number)))
			}
			if !topic.Expertise.Valid() {
				result.reject(UnknownExpertise,
					fmt.Sprintf("Expertise level %q is not recognized", topic.Expertise))
			}
		}
	}

	if total := sub.TopicCount(); total > 0 && total < minRecommendedTopics {
		result.Advisories = append(result.Advisories,
			fmt.Sprintf("You've selected only %d topic(s). It's recommended to select 3-5 topics.", total))
	}

	return result
}
