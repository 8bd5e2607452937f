// Package validation provides input validation utilities for submitted form
// fields. Every function parses text and returns a typed value or an
// application validation error; nothing here touches the database.
package validation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"carelink/internal/models"
)

// Fixed literal layouts accepted for date and time fields.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// RequiredID parses a required integer identifier. An absent value is a
// missing-field error, distinct from a present but non-numeric value.
func RequiredID(field, value string) (uint, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, models.NewMissingFieldError(field)
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError(fmt.Sprintf("Invalid %s: must be a positive integer", field))
	}
	return uint(id), nil
}

// Gender validates an optional gender field. Absent or empty input stores
// NULL; any other value must be one of M, F, O exactly.
func Gender(value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, g := range models.Genders {
		if value == g {
			return &value, nil
		}
	}
	return nil, models.NewValidationError("Invalid gender. Must be one of: M, F, O")
}

// CaregivingType validates a required caregiving type against the closed
// enumeration. The match is exact and case-sensitive; empty input is
// rejected.
func CaregivingType(value string) (string, error) {
	value = strings.TrimSpace(value)
	for _, t := range models.CaregivingTypes {
		if value == t {
			return value, nil
		}
	}
	return "", models.NewValidationError("Invalid caregiving type. Must be one of: Babysitter, Elderly Care, Playmate")
}

// AppointmentStatus validates an appointment status. Absent input takes the
// pending default; anything outside the enumeration is rejected.
func AppointmentStatus(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return models.AppointmentStatusPending, nil
	}
	for _, s := range models.AppointmentStatuses {
		if value == s {
			return value, nil
		}
	}
	return "", models.NewValidationError("Invalid status. Must be one of: pending, accepted, declined")
}

// OptionalRate parses an optional hourly rate, which must be >= 0.
func OptionalRate(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid hourly rate: %q is not a number", value))
	}
	if rate < 0 {
		return nil, models.NewValidationError("Invalid hourly rate: hourly rate cannot be negative")
	}
	return &rate, nil
}

// OptionalHours parses optional work hours, which must be > 0.
func OptionalHours(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	hours, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, models.NewValidationError(fmt.Sprintf("Invalid work hours: %q is not a number", value))
	}
	if hours <= 0 {
		return nil, models.NewValidationError("Invalid work hours: work hours must be greater than 0")
	}
	return &hours, nil
}

// OptionalDate parses an optional YYYY-MM-DD calendar date. Absent input
// yields nil; malformed input aborts the write with a format error.
func OptionalDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, models.NewValidationError("Invalid date format. Please use YYYY-MM-DD format.")
	}
	return &d, nil
}

// OptionalClock parses an optional HH:MM clock literal.
func OptionalClock(value string) (*string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if _, err := time.Parse(ClockLayout, value); err != nil {
		return nil, models.NewValidationError("Invalid time format. Please use HH:MM format.")
	}
	return &value, nil
}

// RequiredText validates a required free-text field such as email or a name.
func RequiredText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", models.NewMissingFieldError(field)
	}
	return value, nil
}
