package relation

import "errors"

// Reason names why a relationship assertion was rejected.
// Values are stable and safe to show to callers.
type Reason string

const (
	ReasonSameGender            Reason = "same_gender"
	ReasonHusbandAlreadyMarried Reason = "husband_already_married"
	ReasonWifeAlreadyMarried    Reason = "wife_already_married"
	ReasonNotMarried            Reason = "not_married"
	ReasonChildAlreadyParented  Reason = "child_already_parented"
	ReasonDuplicateLink         Reason = "duplicate_link"
	ReasonCombinationNotFound   Reason = "combination_not_found"
	ReasonGenderLocked          Reason = "gender_locked"

	// ReasonNotFound only appears on skipped batch children; single calls
	// report a missing member as a not-found error instead.
	ReasonNotFound Reason = "not_found"
)

var messages = map[Reason]string{
	ReasonSameGender:            "both members have the same gender",
	ReasonHusbandAlreadyMarried: "husband is already married",
	ReasonWifeAlreadyMarried:    "wife is already married",
	ReasonNotMarried:            "member is not married",
	ReasonChildAlreadyParented:  "child already has parents",
	ReasonDuplicateLink:         "parent-child link already exists",
	ReasonCombinationNotFound:   "parent-child combination not found",
	ReasonGenderLocked:          "gender cannot change while married",
	ReasonNotFound:              "member not found",
}

// Message returns the human-readable text for the reason.
func (r Reason) Message() string {
	if msg, ok := messages[r]; ok {
		return msg
	}
	return string(r)
}

// ValidationError reports that a request conflicts with the current
// relationship facts. Retrying the same request fails the same way.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	return e.Reason.Message()
}

func reject(r Reason) error {
	return &ValidationError{Reason: r}
}

// ReasonOf extracts the reason from a validation error.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}

// IsReason reports whether err is a validation error with the given reason.
func IsReason(err error, r Reason) bool {
	got, ok := ReasonOf(err)
	return ok && got == r
}
