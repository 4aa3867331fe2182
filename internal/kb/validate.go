package kb

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ErrRequired is wrapped by ValidationError when a required field is empty.
var ErrRequired = errors.New("value is required")

// ValidateQuestion checks that both text and factor are present.
func ValidateQuestion(q Question) error {
	return validateStruct(q)
}

// ValidateSolution checks the description and every rule factor.
func ValidateSolution(s Solution) error {
	return validateStruct(s)
}

func validateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		name := strings.ToLower(fe.Field())
		if fe.Tag() == "required" {
			return &ValidationError{Field: name, Err: ErrRequired}
		}
		return &ValidationError{Field: name, Err: fmt.Errorf("failed %q check", fe.Tag())}
	}
	return err
}
