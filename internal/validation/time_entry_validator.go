package validation

import (
	"workhours/internal/domain"
)

// EndAfterStartMessage is reported when an entry does not end after it starts.
const EndAfterStartMessage = "end time must be after start time"

// Result is the outcome of checking an entry's times. A failed check is a
// value, not an error.
type Result struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message,omitempty"`
}

// ValidateEntryTimes requires end to be strictly after start on the same
// day. Entries crossing midnight are rejected even though DurationHours can
// measure them. The date is not inspected.
func ValidateEntryTimes(date domain.Date, start, end domain.TimeOfDay) Result {
	if end.Minutes() <= start.Minutes() {
		return Result{IsValid: false, Message: EndAfterStartMessage}
	}
	return Result{IsValid: true}
}

// EntryInput is an unparsed manual entry as typed by a user.
type EntryInput struct {
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

// TimeEntryValidator checks new entries before they reach the store.
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a time entry validator with default limits
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{validator: NewValidator()}
}

// NewTimeEntryValidatorWith uses the given validator's limits.
func NewTimeEntryValidatorWith(v *Validator) *TimeEntryValidator {
	return &TimeEntryValidator{validator: v}
}

// ParseEntryInput parses and validates raw input, reporting every field
// problem at once.
func (tev *TimeEntryValidator) ParseEntryInput(in EntryInput, today domain.Date) (domain.NewEntry, error) {
	ve := NewValidationError()
	var entry domain.NewEntry
	var err error

	if !tev.validator.IsNonEmptyString(in.Date) {
		ve.AddRequiredError("date")
	} else if entry.Date, err = domain.ParseDate(tev.validator.TrimAndValidateString(in.Date)); err != nil {
		ve.AddInvalidFormatError("date", in.Date, "YYYY-MM-DD")
	}

	startOK, endOK := false, false
	if !tev.validator.IsNonEmptyString(in.StartTime) {
		ve.AddRequiredError("start_time")
	} else if entry.StartTime, err = domain.ParseTimeOfDay(in.StartTime); err != nil {
		ve.AddInvalidFormatError("start_time", in.StartTime, "HH:MM")
	} else {
		startOK = true
	}
	if !tev.validator.IsNonEmptyString(in.EndTime) {
		ve.AddRequiredError("end_time")
	} else if entry.EndTime, err = domain.ParseTimeOfDay(in.EndTime); err != nil {
		ve.AddInvalidFormatError("end_time", in.EndTime, "HH:MM")
	} else {
		endOK = true
	}

	entry.Description = tev.validator.TrimAndValidateString(in.Description)

	if !ve.HasErrors() {
		return entry, tev.ValidateNewEntry(entry, today)
	}
	if startOK && endOK {
		if r := ValidateEntryTimes(entry.Date, entry.StartTime, entry.EndTime); !r.IsValid {
			ve.AddInvalidRangeError("end_time", in.EndTime, r.Message)
		}
	}
	tev.validateDescription(ve, entry.Description)
	return domain.NewEntry{}, ve
}

// ValidateNewEntry checks an already parsed entry.
func (tev *TimeEntryValidator) ValidateNewEntry(entry domain.NewEntry, today domain.Date) error {
	ve := NewValidationError()

	if entry.Date.IsZero() {
		ve.AddRequiredError("date")
	} else if !tev.validator.IsReasonableDate(entry.Date, today) {
		ve.AddInvalidValueError("date", entry.Date, "is outside the allowed date range")
	}

	if r := ValidateEntryTimes(entry.Date, entry.StartTime, entry.EndTime); !r.IsValid {
		ve.AddInvalidRangeError("end_time", entry.EndTime, r.Message)
	}

	tev.validateDescription(ve, entry.Description)
	return ve.ErrOrNil()
}

func (tev *TimeEntryValidator) validateDescription(ve *ValidationError, description string) {
	maxLen := tev.validator.DescriptionMaxLength()
	switch {
	case !tev.validator.IsNonEmptyString(description):
		ve.AddRequiredError("description")
	case !tev.validator.IsValidStringLength(description, 1, maxLen):
		ve.AddInvalidLengthError("description", description, 0, maxLen)
	}
}
