package span

import (
	"errors"
	"fmt"
)

// UnitError represents a failed unit, axis, or policy lookup.
//
// Unit errors include:
//   - Unknown unit: a name has no entry in the unit table, even after
//     alias resolution
//   - Invalid axis: Get was called with something other than the two
//     recognized axes
//   - Unknown policy: a normalization policy name is not recognized
//
// All lookups fail fast; nothing is recovered internally.
type UnitError struct {
	// Code identifies the error category.
	Code UnitErrorCode

	// Name is the offending unit, axis, or policy name.
	Name string

	// Message is a human-readable description.
	Message string
}

// UnitErrorCode categorizes unit errors.
type UnitErrorCode string

const (
	// ErrCodeUnknownUnit indicates a unit name has no table entry.
	ErrCodeUnknownUnit UnitErrorCode = "UNKNOWN_UNIT"

	// ErrCodeInvalidAxis indicates an axis other than seconds or months.
	ErrCodeInvalidAxis UnitErrorCode = "INVALID_AXIS"

	// ErrCodeUnknownPolicy indicates a normalization policy name is not recognized.
	ErrCodeUnknownPolicy UnitErrorCode = "UNKNOWN_POLICY"
)

// Error implements the error interface.
func (e *UnitError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s: %q", e.Code, e.Message, e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownUnit returns true if the error is an unknown-unit error.
// Uses errors.As to handle wrapped errors.
func IsUnknownUnit(err error) bool {
	var ue *UnitError
	if errors.As(err, &ue) {
		return ue.Code == ErrCodeUnknownUnit
	}
	return false
}

// IsInvalidAxis returns true if the error is an invalid-axis error.
// Uses errors.As to handle wrapped errors.
func IsInvalidAxis(err error) bool {
	var ue *UnitError
	if errors.As(err, &ue) {
		return ue.Code == ErrCodeInvalidAxis
	}
	return false
}

// NewUnknownUnitError creates a UnitError for an unrecognized unit name.
func NewUnknownUnitError(name string) *UnitError {
	return &UnitError{
		Code:    ErrCodeUnknownUnit,
		Name:    name,
		Message: "no such unit in the unit table",
	}
}

// NewInvalidAxisError creates a UnitError for an unrecognized axis.
func NewInvalidAxisError(name string) *UnitError {
	return &UnitError{
		Code:    ErrCodeInvalidAxis,
		Name:    name,
		Message: "axis must be seconds or months",
	}
}

// NewUnknownPolicyError creates a UnitError for an unrecognized policy name.
func NewUnknownPolicyError(name string) *UnitError {
	return &UnitError{
		Code:    ErrCodeUnknownPolicy,
		Name:    name,
		Message: "no such normalization policy",
	}
}
