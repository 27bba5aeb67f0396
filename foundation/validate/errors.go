package validate

import (
	"encoding/json"
	"errors"
)

// MissingFields is the text reported when any required field is empty. It
// does not name the field.
const MissingFields = "Missing required fields"

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
	Kind  error  `json:"-"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if errors.Is(fe.Kind, ErrMissingField) {
		return MissingFields
	}
	return fe.Err
}

// Unwrap returns the class of the failure.
func (fe FieldError) Unwrap() error {
	return fe.Kind
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface.
func (fe FieldErrors) Error() string {
	d, err := json.Marshal(fe)
	if err != nil {
		return err.Error()
	}
	return string(d)
}

// First returns the failure a caller should be told about. Missing fields
// are reported before range violations, and range violations before
// encoding problems. Within a class the first field in declaration order
// wins.
func (fe FieldErrors) First() FieldError {
	for _, kind := range []error{ErrMissingField, ErrInvalidRange, ErrInvalidEncoding, ErrInvalidField} {
		for _, fld := range fe {
			if errors.Is(fld.Kind, kind) {
				return fld
			}
		}
	}
	return FieldError{Kind: ErrInvalidField, Err: "invalid request"}
}

// GetFieldErrors returns a copy of the FieldErrors pointer.
func GetFieldErrors(err error) FieldErrors {
	var fe FieldErrors
	if !errors.As(err, &fe) {
		return nil
	}
	return fe
}
