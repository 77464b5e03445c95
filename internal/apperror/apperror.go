// Package apperror maps validator errors to stable API messages.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired            = errors.New("is required")
	errMustBePositive      = errors.New("must be a positive number")
	errMustBeNonNegative   = errors.New("must be zero or greater")
	errInvalidEmail        = errors.New("must be a valid email address")
	errPasswordTooShort    = errors.New("must be at least 8 characters long")
	errInvalidExportFormat = errors.New("must be either summary or detailed")
)

var customErrors = map[string]error{
	"RegisterRequest.Email.required":             errRequired,
	"RegisterRequest.Email.email":                errInvalidEmail,
	"RegisterRequest.Password.required":          errRequired,
	"RegisterRequest.Password.min":               errPasswordTooShort,
	"CreateInternshipRequest.Company.required":   errRequired,
	"CreateInternshipRequest.TotalHours.gt":      errMustBePositive,
	"CreateInternshipRequest.StartDate.required": errRequired,
	"CreateInternshipRequest.EndDate.required":   errRequired,
	"UpdateInternshipRequest.TotalHours.gt":      errMustBePositive,
	"SaveWorkLogRequest.Hours.gte":               errMustBeNonNegative,
	"ExportRequest.Format.oneof":                 errInvalidExportFormat,
}

// CustomValidationError converts validator errors into a standardized format.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}
