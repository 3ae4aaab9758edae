// Package commands holds the use cases behind each CLI subcommand.
package commands

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	twerrors "tamilwords/internal/errors"
)

// validationError converts ozzo field errors into a ValidationError naming the
// first offending field.
func validationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return twerrors.NewValidationError("", "", "invalid", err.Error())
	}

	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	field := fields[0]
	return twerrors.NewValidationError(field, "", "invalid", fieldErrs[field].Error())
}

func positive(value any) error {
	n, ok := value.(*int)
	if !ok || n == nil {
		return nil
	}
	if *n < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}

func nonNegative(value any) error {
	n, ok := value.(*int)
	if !ok || n == nil {
		return nil
	}
	if *n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}
